package slope

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cv/dsp/core"
)

var (
	// ErrNilSource reports a nil random source option.
	ErrNilSource = errors.New("slope random source must not be nil")
	// ErrInvalidThreshold reports a gate threshold that is not finite.
	ErrInvalidThreshold = errors.New("slope gate threshold must be finite")
)

func validateSource(src Source) error {
	if src == nil {
		return ErrNilSource
	}
	return nil
}

func validateThreshold(volts float64) error {
	if !core.IsFinite(volts) {
		return fmt.Errorf("%w: %f", ErrInvalidThreshold, volts)
	}
	return nil
}
