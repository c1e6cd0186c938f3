package comparator

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-cv/dsp/core"
)

const testSampleRate = 48000

func newTestQuad(t *testing.T, opts ...QuadOption) (*Quad, *core.SampleClock) {
	t.Helper()
	q, err := NewQuad(opts...)
	if err != nil {
		t.Fatalf("NewQuad() error = %v", err)
	}
	return q, core.NewSampleClock(core.WithSampleRate(testSampleRate))
}

func TestQuadOptionValidation(t *testing.T) {
	if _, err := NewQuad(WithHysteresis(-1)); !errors.Is(err, ErrInvalidHysteresis) {
		t.Fatalf("WithHysteresis(-1) error = %v, want ErrInvalidHysteresis", err)
	}
	if _, err := NewQuad(WithLightLambda(0)); !errors.Is(err, ErrInvalidLightLambda) {
		t.Fatalf("WithLightLambda(0) error = %v, want ErrInvalidLightLambda", err)
	}
	q, err := NewQuad(nil, WithHysteresis(0.25))
	if err != nil {
		t.Fatalf("NewQuad() error = %v", err)
	}
	if got := q.Channel(ChannelC).Hysteresis(); got != 0.25 {
		t.Fatalf("Hysteresis() = %v, want 0.25", got)
	}
}

func TestQuadChannelAInsideWindow(t *testing.T) {
	q, clock := newTestQuad(t)

	var in Inputs
	in.Channels[ChannelA].In = core.Patched(0)
	p := DefaultParams()
	p.Channels[ChannelA] = ChannelParams{Shift: 0, Size: 2}

	out := q.Process(clock.Next(), in, p)

	w := q.Channel(ChannelA).Window()
	if w.Lo != -1 || w.Hi != 1 {
		t.Fatalf("window = [%v, %v], want [-1, 1]", w.Lo, w.Hi)
	}
	if !q.Channel(ChannelA).Win() {
		t.Fatalf("zone = %v, want win", q.Channel(ChannelA).Zone())
	}
	got := out.Channels[ChannelA]
	if got.Win != 10 || got.Hi != 0 || got.Lo != 0 {
		t.Fatalf("A outputs hi/win/lo = %v/%v/%v, want 0/10/0", got.Hi, got.Win, got.Lo)
	}
}

func TestQuadInputNormalling(t *testing.T) {
	tests := []struct {
		name  string
		patch map[int]float64
		want  [NumChannels]Zone
	}{
		{
			name:  "A feeds every channel",
			patch: map[int]float64{ChannelA: 5},
			want:  [NumChannels]Zone{ZoneHi, ZoneHi, ZoneHi, ZoneHi},
		},
		{
			name:  "B breaks the chain",
			patch: map[int]float64{ChannelA: 5, ChannelB: -5},
			want:  [NumChannels]Zone{ZoneHi, ZoneLo, ZoneLo, ZoneLo},
		},
		{
			name:  "C and D patched",
			patch: map[int]float64{ChannelA: 5, ChannelC: 0, ChannelD: -5},
			want:  [NumChannels]Zone{ZoneHi, ZoneHi, ZoneWin, ZoneLo},
		},
		{
			name:  "nothing patched reads 0V",
			patch: map[int]float64{},
			want:  [NumChannels]Zone{ZoneWin, ZoneWin, ZoneWin, ZoneWin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, clock := newTestQuad(t)
			var in Inputs
			for ch, v := range tt.patch {
				in.Channels[ch].In = core.Patched(v)
			}
			q.Process(clock.Next(), in, DefaultParams())
			for ch := range tt.want {
				if got := q.Channel(ch).Zone(); got != tt.want[ch] {
					t.Fatalf("channel %d zone = %v, want %v", ch, got, tt.want[ch])
				}
			}
		})
	}
}

func TestQuadShiftAndSizeCV(t *testing.T) {
	q, clock := newTestQuad(t)

	var in Inputs
	in.Channels[ChannelA] = ChannelInputs{
		In:      core.Patched(3),
		ShiftCV: core.Patched(3),
		SizeCV:  core.Patched(-20),
	}
	q.Process(clock.Next(), in, DefaultParams())

	w := q.Channel(ChannelA).Window()
	if w.Center != 3 || w.Size != MinWindowSize {
		t.Fatalf("window center/size = %v/%v, want 3/%v", w.Center, w.Size, MinWindowSize)
	}
	if !q.Channel(ChannelA).Win() {
		t.Fatalf("zone = %v, want win", q.Channel(ChannelA).Zone())
	}
}

func TestQuadPairLogicAndFlipFlop(t *testing.T) {
	q, clock := newTestQuad(t)
	p := DefaultParams()

	var in Inputs
	for ch := range in.Channels {
		in.Channels[ch].In = core.Patched(0)
	}
	in.Channels[ChannelD].In = core.Patched(5)

	out := q.Process(clock.Next(), in, p)
	ab, cd := out.Pairs[PairAB], out.Pairs[PairCD]
	if ab.And != 10 || ab.Or != 10 || ab.Xor != 0 || ab.FlipFlop != 0 {
		t.Fatalf("AB = %+v, want and/or high only", ab)
	}
	if cd.And != 0 || cd.Or != 10 || cd.Xor != 10 || cd.FlipFlop != 10 {
		t.Fatalf("CD = %+v, want or/xor/ff high", cd)
	}
	if out.Combined.And != 10 || out.Combined.Or != 10 || out.Combined.Xor != 0 {
		t.Fatalf("pairs = %+v, want and/or high", out.Combined)
	}

	// Holding the same inputs must not re-clock the CD flip-flop.
	for i := 0; i < 10; i++ {
		out = q.Process(clock.Next(), in, p)
	}
	if out.Pairs[PairCD].FlipFlop != 10 {
		t.Fatal("CD flip-flop re-toggled while XOR held high")
	}

	// Drop D back into its window then out again: second rising edge.
	in.Channels[ChannelD].In = core.Patched(0)
	q.Process(clock.Next(), in, p)
	in.Channels[ChannelD].In = core.Patched(5)
	out = q.Process(clock.Next(), in, p)
	if out.Pairs[PairCD].FlipFlop != 0 {
		t.Fatal("CD flip-flop did not toggle on second XOR rising edge")
	}
}

func TestQuadPairsInactive(t *testing.T) {
	q, clock := newTestQuad(t)

	var in Inputs
	in.Channels[ChannelA].In = core.Patched(8)
	out := q.Process(clock.Next(), in, DefaultParams())

	if out.Combined.And != 0 || out.Combined.Or != 0 || out.Combined.Xor != 0 {
		t.Fatalf("pairs = %+v, want all low when every channel is above", out.Combined)
	}
}

func TestQuadLightsAreSmoothed(t *testing.T) {
	q, clock := newTestQuad(t)

	var in Inputs
	in.Channels[ChannelA].In = core.Patched(0)

	q.Process(clock.Next(), in, DefaultParams())
	first := q.Lights().Channels[ChannelA].Win
	if first <= 0 || first >= 1 {
		t.Fatalf("win light after one sample = %v, want in (0, 1)", first)
	}
	if q.Lights().Channels[ChannelA].Hi != 0 {
		t.Fatal("hi light lit for a channel inside its window")
	}

	for i := 0; i < testSampleRate; i++ {
		q.Process(clock.Next(), in, DefaultParams())
	}
	if got := q.Lights().Channels[ChannelA].Win; math.Abs(got-1) > 1e-6 {
		t.Fatalf("win light after 1s = %v, want ~1", got)
	}
	if got := q.Lights().Pairs[PairAB].And; math.Abs(got-1) > 1e-6 {
		t.Fatalf("AB and light after 1s = %v, want ~1", got)
	}

	q.Reset()
	if q.Lights().Channels[ChannelA].Win != 0 || q.Channel(ChannelA).Zone() != ZoneNone {
		t.Fatal("Reset did not clear lights and zones")
	}
}

func BenchmarkQuadProcess(b *testing.B) {
	q, err := NewQuad()
	if err != nil {
		b.Fatalf("NewQuad() error = %v", err)
	}
	clock := core.NewSampleClock(core.WithSampleRate(testSampleRate))
	p := DefaultParams()
	var in Inputs
	for ch := range in.Channels {
		in.Channels[ch].In = core.Patched(float64(ch) - 1.5)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Process(clock.Next(), in, p)
	}
}
