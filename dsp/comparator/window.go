package comparator

import "math"

const (
	// DefaultHysteresis is the margin in volts that guards both window edges.
	DefaultHysteresis = 0.1

	// MinWindowSize keeps the window from collapsing to zero width.
	MinWindowSize = 0.0001
)

// Window is the voltage band [Lo, Hi] a channel compares against.
type Window struct {
	Center float64
	Size   float64
	Hi     float64
	Lo     float64
}

// NewWindow derives the window geometry from a center and a width. Widths
// below MinWindowSize (including NaN) are floored.
func NewWindow(center, size float64) Window {
	if !(size >= MinWindowSize) {
		size = MinWindowSize
	}
	if math.IsInf(size, 1) {
		size = math.MaxFloat64
	}
	half := 0.5 * size
	return Window{
		Center: center,
		Size:   size,
		Hi:     center + half,
		Lo:     center - half,
	}
}

// Zone is the comparator state of a channel relative to its window.
type Zone uint8

const (
	// ZoneNone means the channel has not been evaluated yet.
	ZoneNone Zone = iota
	// ZoneHi means the input is above the window.
	ZoneHi
	// ZoneWin means the input is inside the window.
	ZoneWin
	// ZoneLo means the input is below the window.
	ZoneLo
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneHi:
		return "hi"
	case ZoneWin:
		return "win"
	case ZoneLo:
		return "lo"
	default:
		return "none"
	}
}
