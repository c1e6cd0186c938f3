// Package cycle measures rendered control voltages: threshold edges, period
// and duty cycle from the time domain, and the fundamental frequency from a
// windowed spectrum.
package cycle

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cv/dsp/core"
)

var (
	// ErrEmptySignal reports a measurement on an empty signal.
	ErrEmptySignal = errors.New("cycle: empty signal")
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("cycle: sample rate must be > 0 and finite")
	// ErrNoCycle reports a signal without a measurable repetition.
	ErrNoCycle = errors.New("cycle: no complete cycle found")
)

// DefaultThreshold is the gate threshold of Eurorack-style trigger inputs.
const DefaultThreshold = 0.5

// Config holds time-domain measurement parameters.
type Config struct {
	SampleRate float64
	// Threshold separates low from high samples.
	Threshold float64
	// Hysteresis widens the threshold into a band of ±Hysteresis volts.
	Hysteresis float64
}

// Result is a time-domain cycle measurement.
type Result struct {
	Period    float64 // seconds, mean interval between rising edges
	Frequency float64 // Hz
	Duty      float64 // fraction of each cycle spent high, [0, 1]
	Cycles    int     // complete rising-to-rising intervals
	Edges     Edges
}

// Measure finds rising and falling edges in signal and derives the mean
// period and duty cycle from every complete cycle.
func Measure(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if err := validateSampleRate(cfg.SampleRate); err != nil {
		return Result{}, err
	}

	edges := DetectEdges(signal, cfg.Threshold, cfg.Hysteresis)
	if len(edges.Rising) < 2 {
		return Result{Edges: edges}, ErrNoCycle
	}

	first := edges.Rising[0]
	last := edges.Rising[len(edges.Rising)-1]
	cycles := len(edges.Rising) - 1
	periodSamples := float64(last-first) / float64(cycles)

	high := 0
	for k := 0; k < cycles; k++ {
		high += edges.highSamples(k)
	}

	res := Result{
		Period: periodSamples / cfg.SampleRate,
		Duty:   float64(high) / float64(last-first),
		Cycles: cycles,
		Edges:  edges,
	}
	res.Frequency = 1 / res.Period
	return res, nil
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}
