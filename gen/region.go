package gen

// Region is a contiguous, half-open span [Start, End) of cell addresses
// reserved for exclusive use by the code generator. Regions are a bump
// allocator: space freed below a still-live region is never reused, which
// keeps every region's lifetime analyzable without fragmentation
// tracking; space past the end of every live region is handed out again.
type Region struct {
	Start int
	End   int
}

// Len returns the region's length in cells.
func (r Region) Len() int { return r.End - r.Start }

// At returns the absolute address of the i'th cell in the region.
func (r Region) At(i int) int { return r.Start + i }

// Hint returns a pointer to v, for use as an optional prior-cell-value
// argument. A nil Hint means "value unknown".
func Hint(v int) *int { return &v }

// Allocate reserves a fresh region of the given length, starting just
// past the end of every currently live region (or at 0, if none are
// live), and records it as live. No tape instructions are emitted.
func (g *Generator) Allocate(length int) Region {
	start := 0
	for _, r := range g.regions {
		if r.End > start {
			start = r.End
		}
	}
	r := Region{Start: start, End: start + length}
	g.regions = append(g.regions, r)
	return r
}

// Free removes region from the live list. For every cell in region whose
// entry in expected is missing (nil) or non-zero, Free emits code to
// move the head there and clear it; a known-zero entry suppresses the
// redundant clear. If restoreHead is set, the head is returned to its
// position from before this call.
//
// expected may be shorter than region.Len() or nil entirely; missing
// entries are treated as unknown.
func (g *Generator) Free(region Region, restoreHead bool, expected []*int) {
	g.removeRegion(region)

	origin := g.headIndex
	for i := 0; i < region.Len(); i++ {
		var known *int
		if i < len(expected) {
			known = expected[i]
		}
		if known != nil && *known == 0 {
			continue
		}
		addr := region.At(i)
		g.GoTo(addr)
		g.ClearCurrent()
	}
	if restoreHead {
		g.GoTo(origin)
	}
}

// removeRegion drops region from the live list by identity of its
// (Start, End) pair.
func (g *Generator) removeRegion(region Region) {
	out := g.regions[:0]
	for _, r := range g.regions {
		if r != region {
			out = append(out, r)
		}
	}
	g.regions = out
}

// liveRegionCount reports how many regions are currently live.
func (g *Generator) liveRegionCount() int { return len(g.regions) }
