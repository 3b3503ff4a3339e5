package gen

// PrintDecimal prints the current cell's value as its base-10 ASCII
// representation, with no leading zeros (0 itself still prints as a
// single "0"). The current cell is left unchanged. Digit extraction uses
// two runtime divisions by 10 on a disposable copy, since the cell's
// value is not known at compile time; the which-digits-to-print decision
// is therefore itself a runtime branch over the extracted hundreds and
// tens digits.
func (g *Generator) PrintDecimal() {
	target := g.headIndex
	scratch := g.Allocate(5)
	work, hundreds, tens, ones := scratch.At(0), scratch.At(1), scratch.At(2), scratch.At(3)
	tensFlag := scratch.At(4)

	g.GoTo(target)
	g.Copy(target, work)

	g.GoTo(work)
	if err := g.Divide(10, nil, &ones, nil); err != nil {
		panic(err) // divisor 10 is a compile-time constant.
	}

	g.GoTo(work)
	if err := g.Divide(10, nil, &tens, nil); err != nil {
		panic(err)
	}

	// The branches test copies (work, tensFlag) rather than the digit
	// cells themselves: IfCurrentIsNotZero moves the tested cell out while
	// its body runs, so a body printing that same cell would print 0.
	g.Copy(work, hundreds)

	g.GoTo(work)
	g.IfZeroElse(func(inner *Generator) {
		inner.Copy(tens, tensFlag)
		inner.GoTo(tensFlag)
		inner.IfZeroElse(func(inner2 *Generator) {
			inner2.printDigit(ones)
		}, func(inner2 *Generator) {
			inner2.printDigit(tens)
			inner2.printDigit(ones)
		}, false, true)
	}, func(inner *Generator) {
		inner.printDigit(hundreds)
		inner.printDigit(tens)
		inner.printDigit(ones)
	}, false, true)

	g.Free(scratch, true, nil)
	g.GoTo(target)
}

// printDigit adds the ASCII digit offset to the value held at addr and
// prints it. addr's original value is not needed afterward by any
// caller in this file, so the add is done in place rather than on a
// further copy.
func (g *Generator) printDigit(addr int) {
	g.GoTo(addr)
	g.Add('0')
	g.PrintCurrent()
}
