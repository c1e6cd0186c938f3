package cycle

import "math"

// Levels summarizes the voltage excursion of a rendered signal.
type Levels struct {
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Mean   float64
	RMS    float64
	Range  float64 // Max - Min
}

// MeasureLevels scans signal once and returns its extremes, mean and RMS.
// The first occurrence wins for MinPos and MaxPos.
func MeasureLevels(signal []float64) (Levels, error) {
	if len(signal) == 0 {
		return Levels{}, ErrEmptySignal
	}

	l := Levels{Min: signal[0], Max: signal[0]}
	sum, sumSq := 0.0, 0.0
	for i, v := range signal {
		if v < l.Min {
			l.Min, l.MinPos = v, i
		}
		if v > l.Max {
			l.Max, l.MaxPos = v, i
		}
		sum += v
		sumSq += v * v
	}

	n := float64(len(signal))
	l.Mean = sum / n
	l.RMS = math.Sqrt(sumSq / n)
	l.Range = l.Max - l.Min
	return l, nil
}
