package gen_test

import (
	"testing"

	"github.com/hollowtape/tapegen/gen"
)

func TestIfCurrentIsNotZeroRunsExactlyOnce(t *testing.T) {
	for _, v := range []int{0, 1, 5, 200} {
		count := runCell(t, func(g *gen.Generator) {
			counter := g.Root().Start + 20
			g.GoTo(g.Root().Start)
			g.SetCell(v, nil)
			g.IfCurrentIsNotZero(func(inner *gen.Generator) {
				inner.GoTo(counter)
				inner.Add(1)
			}, true, true)
		}, 20)
		want := 0
		if v != 0 {
			want = 1
		}
		if count != want {
			t.Fatalf("v=%d: body ran %d times, want %d", v, count, want)
		}
	}
}

func TestIfCurrentIsNotZeroPreservesCell(t *testing.T) {
	for _, v := range []int{0, 1, 5, 200} {
		got := runCell(t, func(g *gen.Generator) {
			g.GoTo(g.Root().Start)
			g.SetCell(v, nil)
			g.IfCurrentIsNotZero(func(*gen.Generator) {}, true, false)
		}, 0)
		if got != v {
			t.Fatalf("cell value after IfCurrentIsNotZero = %d, want %d unchanged", got, v)
		}
	}
}

func TestIfCurrentIsZero(t *testing.T) {
	for _, v := range []int{0, 1, 9} {
		count := runCell(t, func(g *gen.Generator) {
			counter := g.Root().Start + 20
			g.GoTo(g.Root().Start)
			g.SetCell(v, nil)
			g.IfCurrentIsZero(func(inner *gen.Generator) {
				inner.GoTo(counter)
				inner.Add(1)
			}, true, true)
		}, 20)
		want := 1
		if v != 0 {
			want = 0
		}
		if count != want {
			t.Fatalf("v=%d: body ran %d times, want %d", v, count, want)
		}
	}
}

func TestIfZeroElse(t *testing.T) {
	for _, v := range []int{0, 1, 7} {
		got := runCell(t, func(g *gen.Generator) {
			flag := g.Root().Start + 20
			g.GoTo(g.Root().Start)
			g.SetCell(v, nil)
			g.IfZeroElse(func(inner *gen.Generator) {
				inner.GoTo(flag)
				inner.SetCell(1, nil)
			}, func(inner *gen.Generator) {
				inner.GoTo(flag)
				inner.SetCell(2, nil)
			}, true, true)
		}, 20)
		want := 2
		if v == 0 {
			want = 1
		}
		if got != want {
			t.Fatalf("v=%d: flag = %d, want %d", v, got, want)
		}
	}
}

func TestIfEqualsElse(t *testing.T) {
	for _, v := range []int{5, 6, 200} {
		got := runCell(t, func(g *gen.Generator) {
			flag := g.Root().Start + 20
			g.GoTo(g.Root().Start)
			g.SetCell(v, nil)
			g.IfEqualsElse(5, func(inner *gen.Generator) {
				inner.GoTo(flag)
				inner.SetCell(1, nil)
			}, func(inner *gen.Generator) {
				inner.GoTo(flag)
				inner.SetCell(2, nil)
			}, true)
		}, 20)
		want := 2
		if v == 5 {
			want = 1
		}
		if got != want {
			t.Fatalf("v=%d: flag = %d, want %d", v, got, want)
		}
	}
}

func TestIfEqualsElseLeavesOriginalCellUnchanged(t *testing.T) {
	got := runCell(t, func(g *gen.Generator) {
		g.GoTo(g.Root().Start)
		g.SetCell(17, nil)
		g.IfEqualsElse(17, func(*gen.Generator) {}, func(*gen.Generator) {}, true)
	}, 0)
	if got != 17 {
		t.Fatalf("cell changed to %d, want 17 unchanged", got)
	}
}

func TestIfElifElse(t *testing.T) {
	for _, v := range []int{0, 1, 2, 9} {
		got := runCell(t, func(g *gen.Generator) {
			result := g.Root().Start + 20
			g.GoTo(g.Root().Start)
			g.SetCell(v, nil)
			g.IfElifElse([]gen.Case{
				{Value: 0, Body: func(inner *gen.Generator) {
					inner.GoTo(result)
					inner.SetCell(100, nil)
				}},
				{Value: 1, Body: func(inner *gen.Generator) {
					inner.GoTo(result)
					inner.SetCell(101, nil)
				}},
			}, func(inner *gen.Generator) {
				inner.GoTo(result)
				inner.SetCell(255, nil)
			}, true, true)
		}, 20)
		want := 255
		switch v {
		case 0:
			want = 100
		case 1:
			want = 101
		}
		if got != want {
			t.Fatalf("v=%d: result = %d, want %d", v, got, want)
		}
	}
}

func TestIfElifElseWithNoCasesRunsDefault(t *testing.T) {
	got := runCell(t, func(g *gen.Generator) {
		result := g.Root().Start + 20
		g.GoTo(g.Root().Start)
		g.SetCell(7, nil)
		g.IfElifElse(nil, func(inner *gen.Generator) {
			inner.GoTo(result)
			inner.SetCell(9, nil)
		}, true, true)
	}, 20)
	if got != 9 {
		t.Fatalf("default result = %d, want 9", got)
	}
}

func TestBoolNot(t *testing.T) {
	cases := []struct{ src, want int }{{0, 1}, {1, 0}, {42, 0}}
	for _, c := range cases {
		got := runCell(t, func(g *gen.Generator) {
			src, dst := g.Root().Start, g.Root().Start+1
			g.GoTo(src)
			g.SetCell(c.src, nil)
			g.BoolNot(src, dst)
		}, 1)
		if got != c.want {
			t.Fatalf("BoolNot(%d) = %d, want %d", c.src, got, c.want)
		}
	}
}
