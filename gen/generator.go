// Package gen implements the code generator: a cell allocator, head
// tracking, and the arithmetic/control-flow primitives that compile each
// high-level operation into a correct, self-contained sequence of
// tape-machine instructions for package tape to execute.
package gen

import "strings"

// Generator holds all compile-time state for one compilation. It is
// created with one initial region of client-chosen length anchored at
// address 0; its head begins at 0 and its code buffer is empty.
//
// A Generator is not safe for concurrent use; see spec.md §5.
type Generator struct {
	headIndex int
	regions   []Region
	code      strings.Builder
	threshold int

	// root is the initial region handed out by New; callers are expected
	// to free every region they allocate themselves, leaving root as the
	// sole survivor by the time Code is called.
	root Region
}

// New creates a Generator per cfg, with its initial region (region 0)
// already live.
func New(cfg Config) *Generator {
	g := &Generator{threshold: cfg.resolvedThreshold()}
	g.root = g.Allocate(cfg.resolvedInitialRegionLength())
	return g
}

// Root returns the generator's initial region (region 0).
func (g *Generator) Root() Region { return g.root }

// HeadIndex returns the generator's current belief about the head
// position. The emitted code is guaranteed to leave the actual head
// here once it runs.
func (g *Generator) HeadIndex() int { return g.headIndex }

// emit appends raw tape instructions to the output buffer. It is the
// only function that appends to the buffer (optimizeBuffer is the only
// one that rewrites it); every primitive above it is built out of emit,
// GoTo, and recursive calls to other primitives.
func (g *Generator) emit(s string) { g.code.WriteString(s) }

// Code runs the peephole optimizer and returns the final instruction
// string. It fails with ErrDanglingRegions if more than one region is
// still live — exactly one (region 0) must remain, per spec.md §3's
// generator lifecycle invariant.
func (g *Generator) Code() (string, error) {
	if g.liveRegionCount() != 1 {
		return "", ErrDanglingRegions
	}
	return Optimize(g.code.String()), nil
}

// RawCode returns the unoptimized buffer contents as emitted so far,
// without checking the dangling-regions invariant. Intended for tests
// and for inspecting in-progress output.
func (g *Generator) RawCode() string { return g.code.String() }
