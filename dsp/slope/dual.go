package slope

import "github.com/cwbudde/algo-cv/dsp/core"

// Slope indices.
const (
	SlopeA = iota
	SlopeB
	numSlopes
)

// SlopeParams are the knobs of one slope in a Dual.
type SlopeParams struct {
	Params
	Chaos        float64 // [0, 1]
	FreezeButton float64 // momentary, pressed above 0.5
}

// SlopeInputs are the jacks of one slope in a Dual.
type SlopeInputs struct {
	Inputs
	ChaosCV  core.Input
	FreezeCV core.Input
}

// DualParams holds all Dual knobs for one sample.
type DualParams struct {
	Slopes      [numSlopes]SlopeParams
	Mix         float64 // crossfade A→B, [0, 1]
	Probability float64 // chance that an end-of-cycle emits PULSE, [0, 1]
}

// DefaultDualParams returns both slopes at their defaults, an even mix and
// a certain end pulse.
func DefaultDualParams() DualParams {
	var p DualParams
	for i := range p.Slopes {
		p.Slopes[i] = SlopeParams{Params: DefaultParams()}
	}
	p.Mix = 0.5
	p.Probability = 1
	return p
}

// DualInputs holds all Dual jacks for one sample.
type DualInputs struct {
	Slopes [numSlopes]SlopeInputs
}

// SlopeOutputs are the voltages of one slope.
type SlopeOutputs struct {
	Slope      float64
	End        float64
	Pulse      float64
	Breakpoint float64
	Derivative float64
	Integral   float64
}

// DualOutputs holds all Dual voltages for one sample.
type DualOutputs struct {
	Slopes [numSlopes]SlopeOutputs
	MathOutputs
}

// SlopeLights are the indicator levels of one slope.
type SlopeLights struct {
	Active     float64
	End        float64
	Breakpoint float64
	Chaos      float64
	Freeze     float64
}

// DualLights is a snapshot of every Dual indicator.
type DualLights struct {
	Slopes [numSlopes]SlopeLights
}

// DualOption mutates Dual construction parameters.
type DualOption func(*dualConfig) error

type dualConfig struct {
	chaos       Source
	probability Source
	genOpts     []GeneratorOption
}

// WithChaosSource sets the random source shared by both slopes' chaos
// modulation. Slope A draws before slope B within a sample.
func WithChaosSource(src Source) DualOption {
	return func(cfg *dualConfig) error {
		if err := validateSource(src); err != nil {
			return err
		}
		cfg.chaos = src
		return nil
	}
}

// WithProbabilitySource sets the random source deciding end-of-cycle pulses.
func WithProbabilitySource(src Source) DualOption {
	return func(cfg *dualConfig) error {
		if err := validateSource(src); err != nil {
			return err
		}
		cfg.probability = src
		return nil
	}
}

// WithGeneratorOptions passes options to both generators.
func WithGeneratorOptions(opts ...GeneratorOption) DualOption {
	return func(cfg *dualConfig) error {
		cfg.genOpts = append(cfg.genOpts, opts...)
		return nil
	}
}

// Dual is the two-slope module: two independent generators, each with its
// own freeze and chaos amount, feeding the mix/math stage.
type Dual struct {
	probability Source

	gens    [numSlopes]*Generator
	freezes [numSlopes]Freeze
	pulses  [numSlopes]bool

	lights [numSlopes][5]core.Light
}

// NewDual creates a dual slope module with default sources and optional
// overrides.
func NewDual(opts ...DualOption) (*Dual, error) {
	cfg := dualConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.chaos == nil {
		cfg.chaos = NewSource(1)
	}
	if cfg.probability == nil {
		cfg.probability = NewSource(2)
	}

	d := &Dual{probability: cfg.probability}
	for i := range d.gens {
		genOpts := append([]GeneratorOption{WithSource(cfg.chaos)}, cfg.genOpts...)
		g, err := NewGenerator(genOpts...)
		if err != nil {
			return nil, err
		}
		d.gens[i] = g
	}
	return d, nil
}

// Process evaluates one sample: freeze and chaos controls, slope A, slope
// B, then the mix/math stage.
func (d *Dual) Process(args core.ProcessArgs, in DualInputs, p DualParams) DualOutputs {
	var out DualOutputs
	var values [numSlopes]float64

	for i, g := range d.gens {
		sp, si := p.Slopes[i], in.Slopes[i]

		frozen := d.freezes[i].Process(sp.FreezeButton, si.FreezeCV)
		chaos := clampInput(sp.Chaos+cvScale*si.ChaosCV.Voltage(), 0, 1)

		g.Process(args, sp.Params, si.Inputs, chaos, frozen)
		s := g.State()

		d.pulses[i] = s.EndPulse && d.probability.Float64() < clampInput(p.Probability, 0, 1)

		out.Slopes[i] = SlopeOutputs{
			Slope:      s.Value * ValueScale,
			End:        core.Gate(s.EndPulse),
			Pulse:      core.Gate(d.pulses[i]),
			Breakpoint: core.Gate(s.BreakpointArmed),
			Derivative: s.Derivative * DerivativeScale,
			Integral:   s.Integral * IntegralScale,
		}
		values[i] = s.Value

		l := &d.lights[i]
		l[0].Set(s.Value)
		l[1].Set(boolLevel(s.EndPulse))
		l[2].Set(boolLevel(s.BreakpointFired))
		l[3].Set(chaos)
		l[4].Set(boolLevel(frozen))
	}

	out.MathOutputs = MixAndMath(values[SlopeA], values[SlopeB], p.Mix)
	return out
}

// Reset returns both generators to rest and releases both freezes.
func (d *Dual) Reset() {
	for i, g := range d.gens {
		g.Reset()
		d.freezes[i].Reset()
		d.pulses[i] = false
	}
	d.lights = [numSlopes][5]core.Light{}
}

// Generator returns slope i (SlopeA or SlopeB).
func (d *Dual) Generator(i int) *Generator { return d.gens[i] }

// Frozen reports whether slope i is frozen.
func (d *Dual) Frozen(i int) bool { return d.freezes[i].Frozen() }

// Lights returns the current indicator levels.
func (d *Dual) Lights() DualLights {
	var out DualLights
	for i := range d.lights {
		l := &d.lights[i]
		out.Slopes[i] = SlopeLights{
			Active:     l[0].Brightness(),
			End:        l[1].Brightness(),
			Breakpoint: l[2].Brightness(),
			Chaos:      l[3].Brightness(),
			Freeze:     l[4].Brightness(),
		}
	}
	return out
}

func boolLevel(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
