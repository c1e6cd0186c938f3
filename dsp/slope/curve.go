package slope

import "math"

// Timing limits in seconds.
const (
	MinTime = 0.001
	MaxTime = 20.0
)

// KnobToSeconds maps a normalized time knob onto seconds. The lower half of
// the travel is linear over 0..1s, the upper half accelerates quadratically
// from 1s to 5s.
func KnobToSeconds(knob float64) float64 {
	if knob <= 0.5 {
		return knob * 2
	}
	x := (knob - 0.5) * 2
	return 1 + x*x*4
}

// Shape bends a phase in [0, 1] by curve in [-1, 1]. Negative curves start
// slow and end steep, positive curves start steep and settle slowly, zero is
// linear. The map is monotone and fixes 0 and 1.
func Shape(phase, curve float64) float64 {
	switch {
	case curve < 0:
		return math.Pow(phase, 1-2*curve)
	case curve > 0:
		return 1 - math.Pow(1-phase, 1+8*curve)
	default:
		return phase
	}
}
