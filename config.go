package glide

// Config holds every tunable the core consumes directly. Fields outside this set (key bindings, status icon,
// CLI socket path, ...) belong to non-core modules and never reach this
// package.
type Config struct {
	InnerGap, OuterGap float64
	MinWindowW, MinWindowH float64

	AnimationResponse, AnimationDamping float64
	AnimationDurationMs int

	MouseFollowsFocus, FocusFollowsMouse bool
	MouseHidesOnFocus bool

	ScrollCenteringMode CenteringMode

	GroupBarsEnabled bool
	GroupBarThickness float64

	// UntrackedFailureThreshold is how many consecutive dispatch
	// failures a window tolerates before the reactor gives up on it and
	// removes it from the layout, rather than retrying forever. Zero or
	// negative disables removal (retry forever).
	UntrackedFailureThreshold int
}

// DefaultConfig returns the embedded defaults used when a key is missing
// from the user's configuration file.
func DefaultConfig() Config {
	return Config{
		InnerGap: 8,
		OuterGap: 8,
		MinWindowW: 100,
		MinWindowH: 100,
		AnimationResponse: 0.25,
		AnimationDamping: 1.0,
		AnimationDurationMs: 200,
		MouseFollowsFocus: false,
		FocusFollowsMouse: false,
		MouseHidesOnFocus: false,
		ScrollCenteringMode: CenteringAlways,
		GroupBarsEnabled: true,
		GroupBarThickness: 20,
		UntrackedFailureThreshold: 5,
	}
}

// Validate clamps every field to its documented range rather than
// rejecting the whole configuration. screenMin
// is the smallest screen dimension currently known, used to bound the
// gaps; pass 0 if no screen is known yet.
func (c *Config) Validate(screenMin float64) {
	c.InnerGap = clamp(c.InnerGap, 0, maxGap(screenMin))
	c.OuterGap = clamp(c.OuterGap, 0, maxGap(screenMin))
	if c.MinWindowW < 1 {
		c.MinWindowW = 1
	}
	if c.MinWindowH < 1 {
		c.MinWindowH = 1
	}
	if c.AnimationResponse <= 0 {
		c.AnimationResponse = 0.25
	}
	if c.AnimationDamping <= 0 {
		c.AnimationDamping = 1.0
	}
	if c.AnimationDurationMs < 0 {
		c.AnimationDurationMs = 0
	}
	if c.MouseHidesOnFocus && !c.MouseFollowsFocus {
		// requires MouseFollowsFocus; otherwise forced false.
		c.MouseHidesOnFocus = false
	}
	if c.GroupBarThickness < 0 {
		c.GroupBarThickness = 0
	}
	if c.UntrackedFailureThreshold < 0 {
		c.UntrackedFailureThreshold = 0
	}
}

func maxGap(screenMin float64) float64 {
	if screenMin <= 0 {
		return 1 << 20 // no known screen yet: don't clamp
	}
	return screenMin / 4
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CalcConfigFrom projects the layout-calculator-relevant subset of Config
// into a CalcConfig.
func CalcConfigFrom(c Config) CalcConfig {
	thickness := 0.0
	if c.GroupBarsEnabled {
		thickness = c.GroupBarThickness
	}
	return CalcConfig{
		InnerGap: c.InnerGap,
		OuterGap: c.OuterGap,
		GroupBarThickness: thickness,
		MinWindowW: c.MinWindowW,
		MinWindowH: c.MinWindowH,
	}
}
