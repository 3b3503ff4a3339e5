package gen_test

import (
	"strings"
	"testing"

	"github.com/hollowtape/tapegen/gen"
	"github.com/hollowtape/tapegen/tape"
)

// runCell generates code via build and returns the final byte value of
// the cell at addr. build's generator starts with its head at 0; callers
// that need it elsewhere issue their own GoTo first.
func runCell(t *testing.T, build func(g *gen.Generator), addr int) int {
	t.Helper()
	return runCellWithConfig(t, gen.DefaultConfig(), build, addr)
}

// runCellWithConfig is runCell with an explicit generator configuration,
// for tests that sweep the value-changer threshold.
func runCellWithConfig(t *testing.T, cfg gen.Config, build func(g *gen.Generator), addr int) int {
	t.Helper()
	g := gen.New(cfg)
	build(g)
	head := g.HeadIndex()
	code, err := g.Code()
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	return cellValueAt(t, code, head, addr)
}

// cellValueAt runs code to completion, then moves from the head position
// the generator promises code leaves the tape at (from) to addr and
// prints it, reporting the resulting byte.
func cellValueAt(t *testing.T, code string, from, addr int) int {
	t.Helper()
	probe := code
	switch {
	case addr > from:
		probe += strings.Repeat(">", addr-from)
	case addr < from:
		probe += strings.Repeat("<", from-addr)
	}
	probe += "."
	ip := tape.New()
	if err := ip.Run(probe); err != nil {
		t.Fatalf("run failed: %v\ncode: %s", err, probe)
	}
	out := ip.Output()
	if len(out) == 0 {
		t.Fatalf("no output captured")
	}
	return int(out[len(out)-1])
}
