package cycle

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-cv/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is the one-sided magnitude spectrum of a windowed signal.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Magnitude  []float64 // peak amplitude per bin, 0..FFTSize/2
}

// BinHz returns the bin spacing in Hz.
func (s Spectrum) BinHz() float64 { return s.SampleRate / float64(s.FFTSize) }

// Analyzer computes magnitude spectra at a fixed sample rate. It keeps its
// FFT plan and scratch buffers between calls, so analysing many signals of
// the same length allocates only the returned magnitudes.
type Analyzer struct {
	sampleRate float64

	plan    *algofft.Plan[complex128]
	fftSize int
	in, out []complex128

	window []float64
	gain   float64
	buf    []float64
	re, im []float64
}

// NewAnalyzer creates an analyzer for signals sampled at sampleRate.
func NewAnalyzer(sampleRate float64) (*Analyzer, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return &Analyzer{sampleRate: sampleRate}, nil
}

// Analyze removes the mean of signal, applies a Hann window, zero-pads to
// the next power of two and returns the magnitude spectrum.
func (a *Analyzer) Analyze(signal []float64) (Spectrum, error) {
	n := len(signal)
	if n == 0 {
		return Spectrum{}, ErrEmptySignal
	}
	if err := a.prepare(n); err != nil {
		return Spectrum{}, err
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(n)

	a.buf = core.EnsureLen(a.buf, n)
	for i, v := range signal {
		a.buf[i] = v - mean
	}
	vecmath.MulBlockInPlace(a.buf, a.window)

	for i := range a.in {
		a.in[i] = 0
	}
	for i, v := range a.buf {
		a.in[i] = complex(v, 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Spectrum{}, fmt.Errorf("cycle: fft: %w", err)
	}

	bins := a.fftSize/2 + 1
	a.re = core.EnsureLen(a.re, bins)
	a.im = core.EnsureLen(a.im, bins)
	for i := 0; i < bins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, a.re, a.im)

	// Scale so a bin-centred sinusoid reads its peak amplitude.
	if a.gain > 0 {
		vecmath.ScaleBlock(mag, mag, 2/a.gain)
	}

	return Spectrum{SampleRate: a.sampleRate, FFTSize: a.fftSize, Magnitude: mag}, nil
}

// prepare sizes the window and FFT plan for signals of length n.
func (a *Analyzer) prepare(n int) error {
	if len(a.window) != n {
		a.window = hann(n)
		a.gain = 0
		for _, v := range a.window {
			a.gain += v
		}
	}

	fftSize := nextPowerOf2(n)
	if a.plan != nil && a.fftSize == fftSize {
		return nil
	}
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("cycle: fft plan %d: %w", fftSize, err)
	}
	a.plan = plan
	a.fftSize = fftSize
	a.in = make([]complex128, fftSize)
	a.out = make([]complex128, fftSize)
	return nil
}

// Fundamental estimates the dominant frequency of signal in Hz.
func (a *Analyzer) Fundamental(signal []float64) (float64, error) {
	spec, err := a.Analyze(signal)
	if err != nil {
		return 0, err
	}
	return spec.Peak()
}

// Analyze is a one-shot spectrum of signal.
func Analyze(signal []float64, sampleRate float64) (Spectrum, error) {
	a, err := NewAnalyzer(sampleRate)
	if err != nil {
		return Spectrum{}, err
	}
	return a.Analyze(signal)
}

// Fundamental is a one-shot estimate of the dominant frequency of signal.
func Fundamental(signal []float64, sampleRate float64) (float64, error) {
	a, err := NewAnalyzer(sampleRate)
	if err != nil {
		return 0, err
	}
	return a.Fundamental(signal)
}

// Peak returns the frequency of the strongest non-DC bin, refined by
// parabolic interpolation over its neighbours.
func (s Spectrum) Peak() (float64, error) {
	if len(s.Magnitude) < 3 {
		return 0, ErrNoCycle
	}

	best := 1
	for k := 2; k < len(s.Magnitude)-1; k++ {
		if s.Magnitude[k] > s.Magnitude[best] {
			best = k
		}
	}
	if s.Magnitude[best] <= 1e-12 {
		return 0, ErrNoCycle
	}

	l, m, r := s.Magnitude[best-1], s.Magnitude[best], s.Magnitude[best+1]
	delta := 0.0
	if den := l - 2*m + r; !core.NearlyEqual(den, 0, 0) {
		delta = 0.5 * (l - r) / den
	}
	return (float64(best) + delta) * s.BinHz(), nil
}

// hann returns a symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
