package cycle

import "sort"

// Edges holds the sample indices at which a signal crossed its threshold.
type Edges struct {
	Rising  []int
	Falling []int
}

// DetectEdges returns the indices where signal rises above
// threshold+hysteresis or falls below threshold-hysteresis. The state at
// index 0 is taken from the signal itself, so a signal that starts high
// does not report a rising edge there.
func DetectEdges(signal []float64, threshold, hysteresis float64) Edges {
	var e Edges
	if len(signal) == 0 {
		return e
	}
	if hysteresis < 0 {
		hysteresis = -hysteresis
	}
	hi, lo := threshold+hysteresis, threshold-hysteresis

	high := signal[0] > threshold
	for i := 1; i < len(signal); i++ {
		switch v := signal[i]; {
		case !high && v > hi:
			high = true
			e.Rising = append(e.Rising, i)
		case high && v < lo:
			high = false
			e.Falling = append(e.Falling, i)
		}
	}
	return e
}

// highSamples returns how many samples of the cycle starting at rising
// edge k were high.
func (e Edges) highSamples(k int) int {
	start, end := e.Rising[k], e.Rising[k+1]
	f := sort.SearchInts(e.Falling, start)
	if f < len(e.Falling) && e.Falling[f] < end {
		return e.Falling[f] - start
	}
	return end - start
}
