package comparator

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cv/dsp/core"
)

var (
	// ErrInvalidHysteresis reports a hysteresis margin that is negative or not finite.
	ErrInvalidHysteresis = errors.New("comparator hysteresis must be >= 0 and finite")
	// ErrInvalidLightLambda reports a light smoothing rate that is not positive and finite.
	ErrInvalidLightLambda = errors.New("comparator light lambda must be > 0 and finite")
)

func validateHysteresis(h float64) error {
	if h < 0 || !core.IsFinite(h) {
		return fmt.Errorf("%w: %f", ErrInvalidHysteresis, h)
	}
	return nil
}

func validateLightLambda(lambda float64) error {
	if lambda <= 0 || !core.IsFinite(lambda) {
		return fmt.Errorf("%w: %f", ErrInvalidLightLambda, lambda)
	}
	return nil
}
