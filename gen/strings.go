package gen

// PrintString emits code that prints s one byte at a time from a single
// scratch cell, reusing SetCell's hinted transitions between successive
// characters instead of clearing and rebuilding the cell from scratch
// for each one. The peephole optimizer runs immediately afterward, since
// back-to-back character transitions are a frequent source of the
// cancelling pairs it removes.
func (g *Generator) PrintString(s string) {
	origin := g.headIndex
	scratch := g.Allocate(1)
	cell := scratch.Start

	g.GoTo(cell)
	prev := 0
	for _, r := range s {
		b := int(byte(r))
		g.SetCell(b, Hint(prev))
		g.PrintCurrent()
		prev = b
	}

	g.Free(scratch, false, []*int{Hint(prev)})
	g.GoTo(origin)
	g.optimizeBuffer()
}

// optimizeBuffer rewrites the generator's in-progress code buffer in
// place by running the peephole optimizer over everything emitted so
// far. Safe to call mid-generation since Optimize never changes the net
// head motion or cell effects of a balanced instruction sequence.
func (g *Generator) optimizeBuffer() {
	current := g.code.String()
	g.code.Reset()
	g.code.WriteString(Optimize(current))
}
