package gen

// MaxThreshold disables scratch-based construction in favour of long
// inline runs of '+'/'-'. Forced when Config.DisableOptimize is set.
const MaxThreshold = 255

// DefaultThreshold is the reference value_changer_threshold (spec.md §3).
const DefaultThreshold = 15

// DefaultInitialRegionLength is used by DefaultConfig.
const DefaultInitialRegionLength = 64

// Config configures a Generator. Mirrors the teacher's plain
// constructor-arguments style (cpu.New(memsize, cachesize int)) rather
// than a builder: a generator's knobs are few and fixed for its lifetime.
//
// The zero Config is the reference configuration: DisableOptimize false
// (so the zero value doesn't silently invert the spec's "optimize by
// default" behaviour), InitialRegionLength and ValueChangerThreshold
// falling back to their documented defaults when left at 0.
type Config struct {
	// InitialRegionLength is the length of region 0, anchored at address 0.
	// 0 means DefaultInitialRegionLength.
	InitialRegionLength int

	// ValueChangerThreshold is the largest literal delta emitted inline
	// as repeated '+'/'-' rather than via a scratch region. 0 means
	// DefaultThreshold. Ignored (forced to MaxThreshold) when
	// DisableOptimize is set.
	ValueChangerThreshold int

	// DisableOptimize forces ValueChangerThreshold to MaxThreshold,
	// a debug-time toggle per spec.md §6 ("optimize_code: bool"), not
	// the normal mode.
	DisableOptimize bool
}

// DefaultConfig returns the reference configuration explicitly.
func DefaultConfig() Config {
	return Config{
		InitialRegionLength:   DefaultInitialRegionLength,
		ValueChangerThreshold: DefaultThreshold,
	}
}

// resolvedThreshold returns the effective threshold, applying the
// DisableOptimize override.
func (c Config) resolvedThreshold() int {
	if c.DisableOptimize {
		return MaxThreshold
	}
	if c.ValueChangerThreshold <= 0 {
		return DefaultThreshold
	}
	return c.ValueChangerThreshold
}

func (c Config) resolvedInitialRegionLength() int {
	if c.InitialRegionLength <= 0 {
		return DefaultInitialRegionLength
	}
	return c.InitialRegionLength
}
