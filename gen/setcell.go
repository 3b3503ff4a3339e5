package gen

import "strings"

// isPrime reports whether n is prime. n is assumed to already be in the
// cell range [0, 255].
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// SetCell sets the current cell to v, given an optional hint about its
// prior value. It follows the decision tree of spec.md §4.6 in order:
//
//  1. primes above the threshold are built as (v-1) + 1, since v-1 is
//     reachable by multiplication from small factors even though v itself
//     may not be;
//  2. a hint equal to v is a no-op;
//  3. a hint with v == 0 is a clear;
//  4. a hint known to be 0 goes straight to the set-from-zero path;
//  5. a hint whose ratio to v exceeds 1, and whose direct difference from
//     v exceeds the threshold, is reached by a multiplicative leap
//     followed by a recursive call with the tightened hint — the
//     threshold check keeps this branch from firing when the cheap
//     direct path already wins (e.g. Hint(7) -> 21 at the default
//     threshold: ratio 3 but diff 14 is within T, so step 6 must run
//     instead);
//  6. otherwise, with a hint still in hand, the difference is reached by
//     a direct Add/Sub — Add and Sub each fall back to their own
//     scratch-based construction once the difference exceeds the
//     threshold, so no separate large-difference case is needed here;
//  7. with no hint at all, the cell is built fresh: cleared, then given
//     v as a literal run of '+' within the threshold, or otherwise set
//     to 1 and multiplied up to v.
func (g *Generator) SetCell(v int, hint *int) {
	v = wrapMod(v)

	if isPrime(v) && v > g.threshold {
		g.SetCell(v-1, hint)
		g.Add(1)
		return
	}

	if hint != nil {
		h := wrapMod(*hint)
		switch {
		case h == v:
			return
		case v == 0:
			g.ClearCurrent()
			return
		case h == 0:
			g.setFromZero(v, true)
			return
		}

		diff := v - h
		absDiff := diff
		if absDiff < 0 {
			absDiff = -absDiff
		}

		if ratio := v / h; ratio > 1 && absDiff > g.threshold {
			g.Multiply(ratio, hint)
			tightened := wrapMod(h * ratio)
			g.SetCell(v, Hint(tightened))
			return
		}

		// Either h doesn't divide v usefully, or it does but the direct
		// difference is already cheap enough that the multiplicative leap
		// buys nothing: reach v by direct Add/Sub of the difference. Add
		// and Sub handle arbitrarily large deltas themselves, so there is
		// no separate large-difference case here.
		if diff > 0 {
			g.Add(diff)
		} else {
			g.Sub(-diff, hint)
		}
		return
	}

	g.setFromZero(v, false)
}

// setFromZero builds v by clearing (unless knownZero already guarantees
// the cell is 0), then reaching v either by a direct literal Add, for v
// within the threshold, or by setting the cell to 1 and multiplying up
// to v otherwise. It must not route back through Add for the large case:
// Add's own scratch construction calls SetCell(v, Hint(0)), which lands
// right back here, so a second indirection through Add would recurse
// forever.
func (g *Generator) setFromZero(v int, knownZero bool) {
	if !knownZero {
		g.ClearCurrent()
	}
	if v == 0 {
		return
	}
	if v <= g.threshold {
		g.emit(strings.Repeat("+", v))
		return
	}
	g.emit("+")
	g.Multiply(v, Hint(1))
}
