package slope

import "github.com/cwbudde/algo-cv/dsp/core"

// FreezeThreshold is the CV level separating frozen from running.
const FreezeThreshold = 2.0

// Freeze tracks whether a generator is held. The button toggles on its
// rising edge; a patched CV overrides it, freezing above FreezeThreshold and
// releasing below it. A CV sitting exactly on the threshold keeps the state.
type Freeze struct {
	on         bool
	prevButton bool
}

// Process updates the freeze state from the button value and CV jack.
func (f *Freeze) Process(button float64, cv core.Input) bool {
	pressed := button > 0.5
	if pressed && !f.prevButton {
		f.on = !f.on
	}
	f.prevButton = pressed

	if cv.Connected {
		switch {
		case cv.V > FreezeThreshold:
			f.on = true
		case cv.V < FreezeThreshold:
			f.on = false
		}
	}
	return f.on
}

// Frozen reports the current state.
func (f *Freeze) Frozen() bool { return f.on }

// Reset releases the freeze.
func (f *Freeze) Reset() { *f = Freeze{} }
