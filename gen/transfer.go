package gen

// Move destructively transfers the value of from into to: from becomes
// 0, and to becomes old(to) + old(from), modulo 256. A no-op if from
// equals to.
func (g *Generator) Move(from, to int) {
	if from == to {
		return
	}
	g.GoTo(from)
	g.emit("[")
	g.GoTo(to)
	g.emit("+")
	g.GoTo(from)
	g.emit("-")
	g.emit("]")
}

// MoveWithOverwrite is Move, but first clears to unless toKnownZero is
// set — equivalent to assignment: to becomes old(from).
func (g *Generator) MoveWithOverwrite(from, to int, toKnownZero bool) {
	if !toKnownZero {
		g.GoTo(to)
		g.ClearCurrent()
	}
	g.Move(from, to)
}

// Copy adds from's value into to, leaving from unchanged: to becomes
// old(to) + old(from). It allocates a one-cell scratch region for the
// duration of the operation and frees it before returning.
func (g *Generator) Copy(from, to int) {
	scratch := g.Allocate(1)
	s := scratch.Start

	g.GoTo(from)
	g.emit("[")
	g.GoTo(to)
	g.emit("+")
	g.GoTo(s)
	g.emit("+")
	g.GoTo(from)
	g.emit("-")
	g.emit("]")

	g.Move(s, from)
	g.Free(scratch, false, []*int{Hint(0)})
}

// CopyWithOverwrite is Copy, but first clears to unless toKnownZero is
// set — to becomes old(from), from is unchanged.
func (g *Generator) CopyWithOverwrite(from, to int, toKnownZero bool) {
	if !toKnownZero {
		g.GoTo(to)
		g.ClearCurrent()
	}
	g.Copy(from, to)
}
