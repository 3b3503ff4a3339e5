package gen

import "strings"

// wrapMod reduces v into the modular 8-bit cell range [0, 255].
func wrapMod(v int) int {
	v %= 256
	if v < 0 {
		v += 256
	}
	return v
}

// smallestPrimeFactor returns the smallest prime factor of n. n must be
// at least 2.
func smallestPrimeFactor(n int) int {
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return d
		}
	}
	return n
}

// Add adds v (mod 256) to the current cell. For v at or below the
// generator's threshold it emits v copies of '+' directly; otherwise it
// builds v in a scratch region and moves it in, to keep code size
// bounded for large deltas.
func (g *Generator) Add(v int) {
	v = wrapMod(v)
	if v == 0 {
		return
	}
	target := g.headIndex
	if v <= g.threshold {
		g.emit(strings.Repeat("+", v))
		return
	}
	scratch := g.Allocate(1)
	s := scratch.Start
	g.GoTo(s)
	g.SetCell(v, Hint(0))
	g.Move(s, target)
	g.Free(scratch, false, []*int{Hint(0)})
	g.GoTo(target)
}

// Sub subtracts v (mod 256) from the current cell. If hint is known and
// equals v, it short-circuits to a clear. For v at or below the
// threshold it emits v copies of '-' directly; otherwise it drains a
// scratch region built to hold v, decrementing the current cell once
// per drain step.
func (g *Generator) Sub(v int, hint *int) {
	v = wrapMod(v)
	if v == 0 {
		return
	}
	if hint != nil && wrapMod(*hint) == v {
		g.ClearCurrent()
		return
	}
	target := g.headIndex
	if v <= g.threshold {
		g.emit(strings.Repeat("-", v))
		return
	}
	scratch := g.Allocate(1)
	s := scratch.Start
	g.GoTo(s)
	g.SetCell(v, Hint(0))
	g.emit("[")
	g.GoTo(target)
	g.emit("-")
	g.GoTo(s)
	g.emit("-")
	g.emit("]")
	g.Free(scratch, false, []*int{Hint(0)})
	g.GoTo(target)
}

// CheckedSub performs a saturating subtraction: the current cell becomes
// max(0, current - v). A scratch counter is set to v and drained one
// step at a time; each step decrements the current cell only if it is
// still non-zero, so the loop always runs exactly v times even once the
// current cell has bottomed out at 0.
func (g *Generator) CheckedSub(v int, hint *int) {
	v = wrapMod(v)
	if v == 0 {
		return
	}
	target := g.headIndex
	scratch := g.Allocate(1)
	s := scratch.Start
	g.GoTo(s)
	g.SetCell(v, Hint(0))
	g.emit("[")
	g.GoTo(target)
	g.IfCurrentIsNotZero(func(inner *Generator) {
		inner.Sub(1, nil)
	}, false, true)
	g.GoTo(s)
	g.emit("-")
	g.emit("]")
	g.Free(scratch, false, []*int{Hint(0)})
	g.GoTo(target)
}

// Multiply multiplies the current cell by m (mod 256). m == 0 always
// clears the current cell regardless of hint. m == 1, or a hint known to
// already be 0, is a no-op. Otherwise m is factored one smallest-prime
// factor at a time; the running product is threaded through as a hint to
// each successive factor's multiplyByFactor call, so a factor large
// enough to need the recursive build (see multiplyByFactor) can still
// short-circuit on a known current value.
func (g *Generator) Multiply(m int, hint *int) {
	m = wrapMod(m)
	if m == 0 {
		g.ClearCurrent()
		return
	}
	if m == 1 {
		return
	}
	if hint != nil && wrapMod(*hint) == 0 {
		return
	}

	var prev *int
	if hint != nil {
		prev = Hint(wrapMod(*hint))
	}
	remaining := m
	for remaining > 1 {
		f := smallestPrimeFactor(remaining)
		g.multiplyByFactor(f, prev)
		if prev != nil {
			prev = Hint(wrapMod(*prev * f))
		}
		remaining /= f
	}
}

// multiplyByFactor multiplies the current cell by a single prime factor
// f, given an optional hint about the cell's current value. Small
// factors (<= max(threshold, 2)) use an in-place multiply-by-constant
// loop that adds f literal '+' characters per pass, mirroring the fixed
// small-factor cost the original generator charges regardless of
// threshold. Large factors are built by saving the current value,
// recursively multiplying by f-1, and adding the saved value back once,
// which keeps code size from scaling linearly in f.
func (g *Generator) multiplyByFactor(f int, hint *int) {
	target := g.headIndex
	maxSmall := g.threshold
	if maxSmall < 2 {
		maxSmall = 2
	}

	if f <= maxSmall {
		scratch := g.Allocate(1)
		s := scratch.Start
		g.GoTo(target)
		g.emit("[")
		g.GoTo(s)
		g.emit(strings.Repeat("+", f))
		g.GoTo(target)
		g.emit("-")
		g.emit("]")
		g.Move(s, target)
		g.Free(scratch, false, []*int{Hint(0)})
		g.GoTo(target)
		return
	}

	scratch := g.Allocate(1)
	s := scratch.Start
	g.GoTo(target)
	g.Copy(target, s)
	g.GoTo(target)
	g.Multiply(f-1, hint)
	g.GoTo(target)
	g.Move(s, target)
	g.Free(scratch, false, []*int{Hint(0)})
	g.GoTo(target)
}

// Divide computes quotient = current / divisor, replacing the current
// cell with the quotient. If remainderAddr is non-nil, the remainder is
// written there; otherwise it is discarded. dividendHint, if known,
// lets the whole operation be resolved at compile time via SetCell
// instead of the runtime six-cell divmod kernel.
func (g *Generator) Divide(divisor int, dividendHint *int, remainderAddr *int, remainderHint *int) error {
	if divisor == 0 {
		return ErrDivideByZero
	}
	target := g.headIndex

	if divisor == 1 {
		if remainderAddr != nil {
			g.GoTo(*remainderAddr)
			g.SetCell(0, remainderHint)
			g.GoTo(target)
		}
		return nil
	}

	if dividendHint != nil {
		dividend := wrapMod(*dividendHint)
		q := dividend / divisor
		r := dividend % divisor
		g.GoTo(target)
		g.SetCell(q, dividendHint)
		if remainderAddr != nil {
			g.GoTo(*remainderAddr)
			g.SetCell(r, remainderHint)
			g.GoTo(target)
		}
		return nil
	}

	// Runtime divmod via the classic divmod kernel over a seven-cell
	// scratch. Layout relative to the scratch base: [0]=dividend
	// (consumed), [1]=copy of the dividend, [2]=divisor (left as divisor
	// minus remainder), [3]=remainder, [4]=quotient, [5] and [6] are
	// zero cells the kernel only tests.
	scratch := g.Allocate(7)
	base := scratch.Start

	g.GoTo(base + 2)
	g.SetCell(divisor, Hint(0))
	g.Move(target, base)
	g.GoTo(base)
	g.emit("[->+>-[>+>>]>[+[-<+>]>+>>]<<<<<<]")

	g.Move(base+4, target)
	if remainderAddr != nil {
		g.Move(base+3, *remainderAddr)
	}
	g.Free(scratch, false, nil)
	g.GoTo(target)
	return nil
}

// ReverseDigits replaces the current cell with its base-b digit reversal
// (e.g. the decimal reversal of 123 is 321, which the 8-bit cell holds
// as 321 mod 256 = 65), using a two-cell scratch:
// an accumulator and a per-digit work cell. base must be at least 2.
func (g *Generator) ReverseDigits(base int) {
	if base < 2 {
		panic("gen: ReverseDigits requires base >= 2")
	}

	target := g.headIndex
	scratch := g.Allocate(2)
	acc, rem := scratch.Start, scratch.Start+1

	g.GoTo(target)
	g.emit("[")
	if err := g.Divide(base, nil, &rem, nil); err != nil {
		panic(err) // base is a compile-time constant; divisor 0 is a caller bug.
	}
	g.GoTo(acc)
	g.Multiply(base, nil)
	g.Move(rem, acc)
	g.GoTo(target)
	g.emit("]")

	g.Move(acc, target)
	g.Free(scratch, false, []*int{Hint(0), Hint(0)})
	g.GoTo(target)
}
