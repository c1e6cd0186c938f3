package core

// GateHigh is the voltage of an asserted gate output.
const GateHigh = 10.0

// Input is one host jack as seen during a single sample: the voltage present
// on it and whether a cable is plugged in.
type Input struct {
	V         float64
	Connected bool
}

// Patched returns a connected input carrying v volts.
func Patched(v float64) Input {
	return Input{V: v, Connected: true}
}

// Voltage returns the jack voltage, or 0 when nothing is plugged in.
func (in Input) Voltage() float64 {
	if !in.Connected {
		return 0
	}
	return in.V
}

// High reports whether the jack is above threshold volts. Unpatched jacks are
// never high.
func (in Input) High(threshold float64) bool {
	return in.Connected && in.V > threshold
}

// Gate maps a boolean onto the 10V/0V gate convention.
func Gate(on bool) float64 {
	if on {
		return GateHigh
	}
	return 0
}

// Normalize returns in when it is patched and fallback otherwise. This is the
// jack normalling used to chain one input onto the next.
func Normalize(in, fallback Input) Input {
	if in.Connected {
		return in
	}
	return fallback
}
