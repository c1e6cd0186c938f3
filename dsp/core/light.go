package core

// DefaultLightLambda is the smoothing rate of indicator lights in 1/s.
const DefaultLightLambda = 30.0

// Light is the brightness of one panel indicator in [0, 1].
type Light struct {
	brightness float64
}

// Set assigns the brightness immediately.
func (l *Light) Set(brightness float64) {
	l.brightness = Clamp(brightness, 0, 1)
}

// SetSmooth moves the brightness toward target like a capacitor charging
// through a one-pole filter with rate lambda (1/s) over deltaTime seconds.
func (l *Light) SetSmooth(target, deltaTime, lambda float64) {
	k := lambda * deltaTime
	if k <= 0 {
		return
	}
	if k >= 1 {
		l.brightness = Clamp(target, 0, 1)
		return
	}
	l.brightness += (Clamp(target, 0, 1) - l.brightness) * k
	l.brightness = FlushDenormals(l.brightness)
}

// Brightness returns the current brightness.
func (l *Light) Brightness() float64 { return l.brightness }
