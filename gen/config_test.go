package gen_test

import (
	"testing"

	"github.com/hollowtape/tapegen/gen"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := gen.DefaultConfig()
	if cfg.ValueChangerThreshold != gen.DefaultThreshold {
		t.Fatalf("DefaultConfig threshold = %d, want %d", cfg.ValueChangerThreshold, gen.DefaultThreshold)
	}
	if cfg.InitialRegionLength != gen.DefaultInitialRegionLength {
		t.Fatalf("DefaultConfig region length = %d, want %d", cfg.InitialRegionLength, gen.DefaultInitialRegionLength)
	}
	if cfg.DisableOptimize {
		t.Fatal("DefaultConfig should not disable optimization")
	}
}

func TestNewUsesDefaultRegionLengthWhenUnset(t *testing.T) {
	g := gen.New(gen.Config{})
	root := g.Root()
	if root.Len() != gen.DefaultInitialRegionLength {
		t.Fatalf("root region length = %d, want %d", root.Len(), gen.DefaultInitialRegionLength)
	}
}

func TestNewHonorsExplicitRegionLength(t *testing.T) {
	g := gen.New(gen.Config{InitialRegionLength: 10})
	if root := g.Root(); root.Len() != 10 {
		t.Fatalf("root region length = %d, want 10", root.Len())
	}
}
