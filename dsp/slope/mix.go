package slope

// Output scale factors from normalized values to volts.
const (
	ValueScale      = 10.0
	DerivativeScale = 5.0
	IntegralScale   = 2.0
)

// MathOutputs are the combined voltages of two slopes.
type MathOutputs struct {
	Mix float64
	Min float64
	Max float64
	Sum float64
}

// MixAndMath combines two slope values in [0, 1]. mix crossfades from a
// (0) to b (1) and is clamped to that range. All results are in volts.
func MixAndMath(a, b, mix float64) MathOutputs {
	mix = clampInput(mix, 0, 1)
	return MathOutputs{
		Mix: (a*(1-mix) + b*mix) * ValueScale,
		Min: min(a, b) * ValueScale,
		Max: max(a, b) * ValueScale,
		Sum: (a + b) * ValueScale,
	}
}
