package slope

import (
	"math"
	"testing"
)

func TestMixAndMath(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		mix  float64
		want MathOutputs
	}{
		{"all A", 0.2, 0.8, 0, MathOutputs{Mix: 2, Min: 2, Max: 8, Sum: 10}},
		{"all B", 0.2, 0.8, 1, MathOutputs{Mix: 8, Min: 2, Max: 8, Sum: 10}},
		{"even", 0.5, 0, 0.5, MathOutputs{Mix: 2.5, Min: 0, Max: 5, Sum: 5}},
		{"mix clamps high", 0.25, 0.75, 3, MathOutputs{Mix: 7.5, Min: 2.5, Max: 7.5, Sum: 10}},
		{"mix clamps low", 0.25, 0.75, -1, MathOutputs{Mix: 2.5, Min: 2.5, Max: 7.5, Sum: 10}},
		{"NaN mix selects A", 1, 0, math.NaN(), MathOutputs{Mix: 10, Min: 0, Max: 10, Sum: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MixAndMath(tt.a, tt.b, tt.mix)
			if !near(got.Mix, tt.want.Mix) || !near(got.Min, tt.want.Min) ||
				!near(got.Max, tt.want.Max) || !near(got.Sum, tt.want.Sum) {
				t.Fatalf("MixAndMath(%v, %v, %v) = %+v, want %+v", tt.a, tt.b, tt.mix, got, tt.want)
			}
		})
	}
}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-12 }
