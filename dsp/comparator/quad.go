package comparator

import "github.com/cwbudde/algo-cv/dsp/core"

// NumChannels is the number of comparator channels in a Quad.
const NumChannels = 4

// Channel indices.
const (
	ChannelA = iota
	ChannelB
	ChannelC
	ChannelD
)

// Pair indices.
const (
	PairAB = iota
	PairCD
	numPairs
)

// ChannelInputs are the jacks of one channel.
type ChannelInputs struct {
	In      core.Input
	ShiftCV core.Input
	SizeCV  core.Input
}

// ChannelParams are the knobs of one channel, in volts.
type ChannelParams struct {
	Shift float64
	Size  float64
}

// Inputs holds all Quad jacks for one sample.
type Inputs struct {
	Channels [NumChannels]ChannelInputs
}

// Params holds all Quad knobs for one sample.
type Params struct {
	Channels [NumChannels]ChannelParams
}

// DefaultParams returns centered 1V-wide windows on every channel.
func DefaultParams() Params {
	var p Params
	for i := range p.Channels {
		p.Channels[i] = ChannelParams{Shift: 0, Size: 1}
	}
	return p
}

// ChannelOutputs are the gate voltages of one channel.
type ChannelOutputs struct {
	Hi, Win, Lo float64
}

// PairOutputs are the gate voltages of one pair.
type PairOutputs struct {
	And, Or, Xor, FlipFlop float64
}

// PairsOutputs are the gate voltages of the combined pair logic.
type PairsOutputs struct {
	And, Or, Xor float64
}

// Outputs holds all Quad gate voltages for one sample.
type Outputs struct {
	Channels [NumChannels]ChannelOutputs
	Pairs    [numPairs]PairOutputs
	Combined PairsOutputs
}

// ChannelLights are the brightness levels of one channel's indicators.
type ChannelLights struct {
	Hi, Win, Lo float64
}

// PairLights are the brightness levels of one pair's indicators.
type PairLights struct {
	And, Or, Xor, FlipFlop float64
}

// PairsLights are the brightness levels of the combined logic indicators.
type PairsLights struct {
	And, Or, Xor float64
}

// Lights is a snapshot of every Quad indicator.
type Lights struct {
	Channels [NumChannels]ChannelLights
	Pairs    [numPairs]PairLights
	Combined PairsLights
}

// QuadOption mutates Quad construction parameters.
type QuadOption func(*quadConfig) error

type quadConfig struct {
	hysteresis  float64
	lightLambda float64
}

func defaultQuadConfig() quadConfig {
	return quadConfig{
		hysteresis:  DefaultHysteresis,
		lightLambda: core.DefaultLightLambda,
	}
}

// WithHysteresis sets the edge hysteresis margin in volts.
func WithHysteresis(volts float64) QuadOption {
	return func(cfg *quadConfig) error {
		if err := validateHysteresis(volts); err != nil {
			return err
		}
		cfg.hysteresis = volts
		return nil
	}
}

// WithLightLambda sets the indicator smoothing rate in 1/s.
func WithLightLambda(lambda float64) QuadOption {
	return func(cfg *quadConfig) error {
		if err := validateLightLambda(lambda); err != nil {
			return err
		}
		cfg.lightLambda = lambda
		return nil
	}
}

// Quad is the four-channel window comparator with pair logic.
//
// Channel B, C and D inputs are normalled to the previous channel's input
// when unpatched. Per sample the channels are evaluated in order A..D, then
// the AB and CD pairs, then the combined logic.
type Quad struct {
	lightLambda float64

	channels [NumChannels]Channel
	pairs    [numPairs]PairLogic

	channelLights [NumChannels][3]core.Light
	pairLights    [numPairs][4]core.Light
	combinedLight [3]core.Light
}

// NewQuad creates a comparator module with default hysteresis and optional
// overrides.
func NewQuad(opts ...QuadOption) (*Quad, error) {
	cfg := defaultQuadConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	q := &Quad{lightLambda: cfg.lightLambda}
	for i := range q.channels {
		q.channels[i].hysteresis = cfg.hysteresis
	}
	return q, nil
}

// Process evaluates one sample.
func (q *Quad) Process(args core.ProcessArgs, in Inputs, p Params) Outputs {
	var out Outputs

	signal := in.Channels[ChannelA].In
	for i := range q.channels {
		ci := in.Channels[i]
		if i > ChannelA {
			signal = core.Normalize(ci.In, signal)
		}

		cp := p.Channels[i]
		w := NewWindow(
			cp.Shift+ci.ShiftCV.Voltage(),
			cp.Size+ci.SizeCV.Voltage(),
		)

		ch := &q.channels[i]
		ch.Process(signal.Voltage(), w)

		out.Channels[i] = ChannelOutputs{
			Hi:  core.Gate(ch.Hi()),
			Win: core.Gate(ch.Win()),
			Lo:  core.Gate(ch.Lo()),
		}
		q.smooth(&q.channelLights[i][0], ch.Hi(), args.SampleTime)
		q.smooth(&q.channelLights[i][1], ch.Win(), args.SampleTime)
		q.smooth(&q.channelLights[i][2], ch.Lo(), args.SampleTime)
	}

	for i := range q.pairs {
		pl := &q.pairs[i]
		pl.Process(q.channels[2*i].Win(), q.channels[2*i+1].Win())

		out.Pairs[i] = PairOutputs{
			And:      core.Gate(pl.And()),
			Or:       core.Gate(pl.Or()),
			Xor:      core.Gate(pl.Xor()),
			FlipFlop: core.Gate(pl.FlipFlop()),
		}
		q.smooth(&q.pairLights[i][0], pl.And(), args.SampleTime)
		q.smooth(&q.pairLights[i][1], pl.Or(), args.SampleTime)
		q.smooth(&q.pairLights[i][2], pl.Xor(), args.SampleTime)
		q.smooth(&q.pairLights[i][3], pl.FlipFlop(), args.SampleTime)
	}

	combined := CombinePairs(&q.pairs[PairAB], &q.pairs[PairCD])
	out.Combined = PairsOutputs{
		And: core.Gate(combined.And),
		Or:  core.Gate(combined.Or),
		Xor: core.Gate(combined.Xor),
	}
	q.smooth(&q.combinedLight[0], combined.And, args.SampleTime)
	q.smooth(&q.combinedLight[1], combined.Or, args.SampleTime)
	q.smooth(&q.combinedLight[2], combined.Xor, args.SampleTime)

	return out
}

func (q *Quad) smooth(l *core.Light, on bool, dt float64) {
	target := 0.0
	if on {
		target = 1
	}
	l.SetSmooth(target, dt, q.lightLambda)
}

// Reset clears all comparator, flip-flop and light state.
func (q *Quad) Reset() {
	for i := range q.channels {
		q.channels[i].Reset()
	}
	for i := range q.pairs {
		q.pairs[i].Reset()
	}
	q.channelLights = [NumChannels][3]core.Light{}
	q.pairLights = [numPairs][4]core.Light{}
	q.combinedLight = [3]core.Light{}
}

// Channel returns channel i (ChannelA..ChannelD).
func (q *Quad) Channel(i int) *Channel { return &q.channels[i] }

// Pair returns pair i (PairAB or PairCD).
func (q *Quad) Pair(i int) *PairLogic { return &q.pairs[i] }

// Lights returns the current indicator brightness levels.
func (q *Quad) Lights() Lights {
	var l Lights
	for i := range q.channelLights {
		cl := &q.channelLights[i]
		l.Channels[i] = ChannelLights{
			Hi:  cl[0].Brightness(),
			Win: cl[1].Brightness(),
			Lo:  cl[2].Brightness(),
		}
	}
	for i := range q.pairLights {
		pl := &q.pairLights[i]
		l.Pairs[i] = PairLights{
			And:      pl[0].Brightness(),
			Or:       pl[1].Brightness(),
			Xor:      pl[2].Brightness(),
			FlipFlop: pl[3].Brightness(),
		}
	}
	l.Combined = PairsLights{
		And: q.combinedLight[0].Brightness(),
		Or:  q.combinedLight[1].Brightness(),
		Xor: q.combinedLight[2].Brightness(),
	}
	return l
}
