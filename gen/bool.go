package gen

// BoolNot writes the logical negation of the cell at src into dst: dst
// becomes 1 if src is 0, or 0 otherwise. src is left unchanged; dst is
// cleared first.
func (g *Generator) BoolNot(src, dst int) {
	g.GoTo(dst)
	g.ClearCurrent()
	g.GoTo(src)
	g.IfCurrentIsZero(func(inner *Generator) {
		inner.GoTo(dst)
		inner.emit("+")
	}, false, false)
	g.GoTo(dst)
}
