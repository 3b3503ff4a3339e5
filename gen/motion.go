package gen

import "strings"

// GoTo moves the head to targetIndex, emitting the necessary run of '>'
// or '<'. It is the only path by which headIndex changes while emitting
// head-motion instructions; every other primitive routes through it to
// keep the head-tracking invariant intact.
func (g *Generator) GoTo(targetIndex int) {
	if targetIndex == g.headIndex {
		return
	}
	if targetIndex > g.headIndex {
		g.emit(strings.Repeat(">", targetIndex-g.headIndex))
	} else {
		g.emit(strings.Repeat("<", g.headIndex-targetIndex))
	}
	g.headIndex = targetIndex
}

// ClearCurrent zeroes the current cell.
func (g *Generator) ClearCurrent() { g.emit("[-]") }

// ReadByte reads one byte of input into the current cell.
func (g *Generator) ReadByte() { g.emit(",") }

// PrintCurrent writes the current cell's byte to output.
func (g *Generator) PrintCurrent() { g.emit(".") }
