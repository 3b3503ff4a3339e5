package gen

// IfCurrentIsNotZero runs body exactly once if the current cell is
// non-zero, regardless of its magnitude. The current cell's value is
// destructively moved into a one-cell scratch S, which then drives an
// outer loop; inside that single outer pass, an inner drain loop
// restores the current cell from S one step at a time while decrementing
// S, so the outer loop's own termination check always finds S back at
// 0 after the first (and only) pass.
//
// If restoreBeforeCalling is set, the head is returned to the original
// cell before body runs; otherwise body starts wherever S left the head.
// If restoreAfter is set, the head is returned to the original cell once
// the whole construct is done.
func (g *Generator) IfCurrentIsNotZero(body func(*Generator), restoreAfter, restoreBeforeCalling bool) {
	curr := g.headIndex
	scratch := g.Allocate(1)
	s := scratch.Start

	g.Move(curr, s)
	g.GoTo(s)
	g.emit("[")
	if restoreBeforeCalling {
		g.GoTo(curr)
	}
	body(g)
	g.GoTo(s)
	g.emit("[")
	g.GoTo(curr)
	g.emit("+")
	g.GoTo(s)
	g.emit("-")
	g.emit("]")
	g.emit("]")
	g.Free(scratch, false, []*int{Hint(0)})
	if restoreAfter {
		g.GoTo(curr)
	}
}

// IfCurrentIsZero runs body exactly once if the current cell is zero. A
// one-cell flag S is set to 1, then cleared back to 0 via
// IfCurrentIsNotZero if the current cell turns out to be non-zero, so S
// ends up 1 exactly when the current cell was 0; body then runs under
// that single-pass-or-skip condition on S.
func (g *Generator) IfCurrentIsZero(body func(*Generator), restoreAfter, restoreBeforeCalling bool) {
	curr := g.headIndex
	scratch := g.Allocate(1)
	s := scratch.Start

	g.GoTo(s)
	g.emit("+")
	g.GoTo(curr)
	g.IfCurrentIsNotZero(func(inner *Generator) {
		inner.GoTo(s)
		inner.emit("-")
	}, false, false)

	g.GoTo(s)
	g.emit("[")
	if restoreBeforeCalling {
		g.GoTo(curr)
	}
	body(g)
	g.GoTo(s)
	g.emit("-]")
	g.Free(scratch, false, nil)
	if restoreAfter {
		g.GoTo(curr)
	}
}

// IfZeroElse runs ifZero if the current cell is zero, or ifNonZero
// otherwise. The cell is tested again after ifZero has run, so both
// bodies run if ifZero leaves the cell non-zero.
func (g *Generator) IfZeroElse(ifZero, ifNonZero func(*Generator), restoreAfter, restoreBeforeCalling bool) {
	curr := g.headIndex

	g.GoTo(curr)
	g.IfCurrentIsZero(func(inner *Generator) {
		if restoreBeforeCalling {
			inner.GoTo(curr)
		}
		ifZero(inner)
	}, false, false)

	g.GoTo(curr)
	g.IfCurrentIsNotZero(func(inner *Generator) {
		if restoreBeforeCalling {
			inner.GoTo(curr)
		}
		ifNonZero(inner)
	}, false, false)

	if restoreAfter {
		g.GoTo(curr)
	}
}

// IfEqualsElse runs ifEqual if the current cell equals value, or
// ifOther otherwise. The comparison is made on a disposable copy of the
// current cell, so the cell itself is left untouched by the test.
func (g *Generator) IfEqualsElse(value int, ifEqual, ifOther func(*Generator), restoreAfter bool) {
	curr := g.headIndex
	scratch := g.Allocate(1)
	s := scratch.Start

	g.Copy(curr, s)
	g.GoTo(s)
	g.Sub(value, nil)

	g.GoTo(s)
	g.IfZeroElse(func(inner *Generator) {
		inner.GoTo(curr)
		ifEqual(inner)
	}, func(inner *Generator) {
		inner.GoTo(curr)
		ifOther(inner)
	}, false, false)

	g.Free(scratch, false, nil)
	if restoreAfter {
		g.GoTo(curr)
	}
}

// Case pairs a value with the body to run when the current cell equals
// it, for use with IfElifElse.
type Case struct {
	Value int
	Body  func(*Generator)
}

// IfElifElse runs the body of the first case whose value matches the
// current cell, in order, or def if none match. It recurses one case at
// a time so each comparison only has to test against the remaining
// cases once the earlier ones are ruled out.
func (g *Generator) IfElifElse(cases []Case, def func(*Generator), restoreAfter, restoreBeforeCalling bool) {
	if len(cases) == 0 {
		curr := g.headIndex
		if restoreBeforeCalling {
			g.GoTo(curr)
		}
		def(g)
		if restoreAfter {
			g.GoTo(curr)
		}
		return
	}

	first := cases[0]
	rest := cases[1:]
	g.IfEqualsElse(first.Value, first.Body, func(inner *Generator) {
		inner.IfElifElse(rest, def, false, restoreBeforeCalling)
	}, restoreAfter)
}
