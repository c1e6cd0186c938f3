package slope

import (
	"math"

	"github.com/cwbudde/algo-cv/dsp/core"
)

const (
	// DefaultTriggerThreshold is the voltage above which trigger and sync
	// inputs read high.
	DefaultTriggerThreshold = 0.5

	// MaxBreakpoint keeps the breakpoint below the end of the fall so it
	// always fires.
	MaxBreakpoint = 0.9999

	cvScale     = 0.1
	rateCVScale = 0.2
	chaosCurve  = 0.5
)

// Params are the knob and switch settings of one generator.
type Params struct {
	Rise       float64 // normalized time knob, see KnobToSeconds
	Fall       float64 // normalized time knob, see KnobToSeconds
	Curve      float64 // [-1, 1]
	Breakpoint float64 // fraction of the full cycle, [0, 1]
	Rate       float64 // [0, 1], 0.5 leaves the times untouched
	Cycle      bool
	Mode       TriggerMode
}

// DefaultParams returns 1s rise, 1s fall, linear, breakpoint at half cycle.
func DefaultParams() Params {
	return Params{
		Rise:       0.5,
		Fall:       0.5,
		Breakpoint: 0.5,
		Rate:       0.5,
		Mode:       TriggerAlways,
	}
}

// Inputs are the jacks of one generator.
type Inputs struct {
	Trigger      core.Input
	Sync         core.Input
	RiseCV       core.Input
	FallCV       core.Input
	CurveCV      core.Input
	BreakpointCV core.Input
	RateCV       core.Input
}

// State is the per-sample record of a generator.
type State struct {
	Phase      float64 // position within the current half, [0, 1]
	Rising     bool
	Value      float64 // shaped envelope, [0, 1]
	Derivative float64 // per second
	Integral   float64 // volt-less running sum of Value*dt
	ChaosMod   float64 // [-1, 1], held for a whole cycle

	// EndPulse is true only on the sample that completes the fall.
	EndPulse bool
	// BreakpointFired is true only on the sample that crosses the breakpoint.
	BreakpointFired bool
	// BreakpointArmed stays true from the crossing until the fall completes.
	BreakpointArmed bool
}

// Idle reports whether the envelope has completed and is latched at rest.
func (s State) Idle() bool { return !s.Rising && s.Phase >= 1 }

// Timing is the effective envelope timing computed on the last update.
type Timing struct {
	Rise       float64 // seconds, after chaos and rate
	Fall       float64 // seconds, after chaos and rate
	Curve      float64
	Breakpoint float64
	Envelope   float64 // seconds of the current half, after sync scaling
}

// GeneratorOption mutates generator construction parameters.
type GeneratorOption func(*generatorConfig) error

type generatorConfig struct {
	source    Source
	threshold float64
}

// WithSource sets the random source used for chaos modulation.
func WithSource(src Source) GeneratorOption {
	return func(cfg *generatorConfig) error {
		if err := validateSource(src); err != nil {
			return err
		}
		cfg.source = src
		return nil
	}
}

// WithTriggerThreshold sets the high threshold of the trigger and sync jacks.
func WithTriggerThreshold(volts float64) GeneratorOption {
	return func(cfg *generatorConfig) error {
		if err := validateThreshold(volts); err != nil {
			return err
		}
		cfg.threshold = volts
		return nil
	}
}

// Generator is a rise/fall slope generator.
//
// Each call to Process first evaluates the trigger and sync jacks, which may
// restart the cycle, and then, unless frozen, advances the phase. Reaching
// the end of the rise switches to the fall; reaching the end of the fall
// either restarts (cycle on, no sync) or latches at rest and raises EndPulse
// for that one sample.
type Generator struct {
	source    Source
	threshold float64

	state     State
	timing    Timing
	pll       SyncPLL
	prevValue float64

	prevTrigger   bool
	prevSync      bool
	trigConnected bool
}

// NewGenerator creates a generator at rest with a fresh chaos value.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	cfg := generatorConfig{threshold: DefaultTriggerThreshold}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.source == nil {
		cfg.source = NewSource(1)
	}

	g := &Generator{
		source:    cfg.source,
		threshold: cfg.threshold,
		pll:       NewSyncPLL(),
	}
	g.rest()
	g.state.ChaosMod = bipolar(g.source)
	return g, nil
}

// Process runs one sample. chaosAmount is clamped to [0, 1].
func (g *Generator) Process(args core.ProcessArgs, p Params, in Inputs, chaosAmount float64, frozen bool) {
	g.state.EndPulse = false
	g.state.BreakpointFired = false

	g.processTrigger(p.Mode, in.Trigger)
	syncActive := g.processSync(args.Time, in.Sync)

	if frozen || !(args.SampleTime > 0) {
		return
	}

	g.timing = g.computeTiming(p, in, chaosAmount)
	g.advance(args.SampleTime, p.Cycle, syncActive)
}

func (g *Generator) processTrigger(mode TriggerMode, trig core.Input) {
	if !trig.Connected {
		if g.trigConnected {
			g.rest()
		}
		g.trigConnected = false
		g.prevTrigger = false
		return
	}
	g.trigConnected = true

	high := trig.High(g.threshold)
	if high && !g.prevTrigger && mode.Accepts(g.state.Rising, g.state.Phase) {
		g.restart()
	}
	g.prevTrigger = high
}

func (g *Generator) processSync(now float64, sync core.Input) bool {
	if !sync.Connected {
		g.prevSync = false
		g.pll.Release()
		return false
	}

	high := sync.High(g.threshold)
	if high && !g.prevSync {
		g.pll.Edge(now)
		g.restart()
	}
	g.prevSync = high
	return true
}

func (g *Generator) computeTiming(p Params, in Inputs, chaosAmount float64) Timing {
	rise := KnobToSeconds(clampInput(p.Rise+cvScale*in.RiseCV.Voltage(), 0, 1))
	fall := KnobToSeconds(clampInput(p.Fall+cvScale*in.FallCV.Voltage(), 0, 1))
	curve := clampInput(p.Curve+cvScale*in.CurveCV.Voltage(), -1, 1)
	breakpoint := clampInput(p.Breakpoint+cvScale*in.BreakpointCV.Voltage(), 0, MaxBreakpoint)

	if amount := clampInput(chaosAmount, 0, 1); amount > 0 {
		effect := g.state.ChaosMod * amount
		rise *= 1 + effect
		fall *= 1 + effect
		curve = core.Clamp(curve+chaosCurve*effect, -1, 1)
	}

	offset := (clampInput(p.Rate, 0, 1)-0.5)*2 + rateCVScale*in.RateCV.Voltage()
	rise = clampInput(rise+offset, MinTime, MaxTime)
	fall = clampInput(fall+offset, MinTime, MaxTime)

	return Timing{
		Rise:       rise,
		Fall:       fall,
		Curve:      curve,
		Breakpoint: breakpoint,
	}
}

func (g *Generator) advance(dt float64, cycle, syncActive bool) {
	s := &g.state
	t := &g.timing

	if s.Idle() {
		if !cycle || syncActive {
			s.Value = 0
			g.track(dt)
			return
		}
		g.restart()
	}

	envelope := t.Fall
	if s.Rising {
		envelope = t.Rise
	}
	if syncActive {
		envelope *= g.pll.Scale(t.Rise, t.Fall)
	}
	t.Envelope = envelope

	s.Phase += dt / envelope

	cyclePhase := s.Phase
	if !s.Rising {
		cyclePhase++
	}
	if cyclePhase >= 2*t.Breakpoint && !s.BreakpointArmed {
		s.BreakpointArmed = true
		s.BreakpointFired = true
	}

	if s.Phase >= 1 {
		if s.Rising {
			s.Rising = false
			s.Phase = 0
			s.Value = 1
		} else {
			if cycle && !syncActive {
				g.restart()
			} else {
				s.Phase = 1
				s.Value = 0
			}
			s.EndPulse = true
			s.BreakpointArmed = false
		}
	}

	shaped := Shape(s.Phase, t.Curve)
	if s.Rising {
		s.Value = shaped
	} else {
		s.Value = 1 - shaped
	}
	g.track(dt)
}

func (g *Generator) track(dt float64) {
	s := &g.state
	s.Derivative = (s.Value - g.prevValue) / dt
	s.Integral += s.Value * dt
	g.prevValue = s.Value
}

// restart begins a new rise and draws the chaos value for the new cycle.
func (g *Generator) restart() {
	s := &g.state
	s.Phase = 0
	s.Rising = true
	s.Value = 0
	s.ChaosMod = bipolar(g.source)
}

// rest puts the envelope into its neutral completed state.
func (g *Generator) rest() {
	s := &g.state
	s.Phase = 1
	s.Rising = false
	s.Value = 0
	s.Derivative = 0
	s.Integral = 0
	s.EndPulse = false
	s.BreakpointFired = false
	s.BreakpointArmed = false
	g.prevValue = 0
	g.prevTrigger = false
}

// Reset returns the generator to rest, clears edge memory and the sync PLL
// and draws a new chaos value.
func (g *Generator) Reset() {
	g.rest()
	g.prevSync = false
	g.trigConnected = false
	g.pll.Reset()
	g.timing = Timing{}
	g.state.ChaosMod = bipolar(g.source)
}

// State returns a copy of the per-sample record.
func (g *Generator) State() State { return g.state }

// Timing returns the effective timing of the last non-frozen update.
func (g *Generator) Timing() Timing { return g.timing }

// SyncPeriod returns the period currently used for sync scaling.
func (g *Generator) SyncPeriod() float64 { return g.pll.Period() }

// clampInput clamps a knob+CV sum, mapping NaN onto lo.
func clampInput(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return core.Clamp(v, lo, hi)
}
