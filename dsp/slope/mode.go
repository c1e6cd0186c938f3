package slope

import "math"

// TriggerMode decides whether a trigger edge restarts the envelope.
type TriggerMode uint8

const (
	// TriggerAlways accepts every trigger.
	TriggerAlways TriggerMode = iota
	// TriggerRiseOnly accepts triggers while the envelope is rising.
	TriggerRiseOnly
	// TriggerFallOnly accepts triggers while the envelope is falling.
	TriggerFallOnly
	// TriggerCompleteOnly accepts triggers once the fall has completed.
	TriggerCompleteOnly

	numTriggerModes
)

// Accepts reports whether a trigger arriving in the given envelope state
// restarts the cycle.
func (m TriggerMode) Accepts(rising bool, phase float64) bool {
	switch m {
	case TriggerRiseOnly:
		return rising && phase < 1
	case TriggerFallOnly:
		return !rising && phase < 1
	case TriggerCompleteOnly:
		return !rising && phase >= 1
	default:
		return true
	}
}

// Valid reports whether m is one of the four defined modes.
func (m TriggerMode) Valid() bool { return m < numTriggerModes }

// String returns the panel label of the mode.
func (m TriggerMode) String() string {
	switch m {
	case TriggerAlways:
		return "always"
	case TriggerRiseOnly:
		return "rise-only"
	case TriggerFallOnly:
		return "fall-only"
	case TriggerCompleteOnly:
		return "complete-only"
	default:
		return "unknown"
	}
}

// TriggerModeFromSwitch maps a four-position switch value (0..3) onto a
// mode, rounding and clamping out-of-range positions.
func TriggerModeFromSwitch(v float64) TriggerMode {
	if math.IsNaN(v) || v <= 0 {
		return TriggerAlways
	}
	pos := math.Round(v)
	if pos >= float64(numTriggerModes-1) {
		return TriggerCompleteOnly
	}
	return TriggerMode(pos)
}

// ParseTriggerMode returns the mode with the given label.
func ParseTriggerMode(s string) (TriggerMode, bool) {
	for m := TriggerAlways; m < numTriggerModes; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return TriggerAlways, false
}
