// Command cmpinfo sweeps a triangle through two window comparator channels
// and prints every change of zone and pair logic.
//
// Channel B is normalled to channel A, so both see the same input; only
// their windows differ. Output is an aligned table on a terminal and CSV
// otherwise.
//
// Examples:
//
//	cmpinfo
//	cmpinfo -size 2 -shift-b 1 -size-b 1
//	cmpinfo -noise 0.05 -hysteresis 0.02
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-cv/dsp/comparator"
	"github.com/cwbudde/algo-cv/dsp/core"
	"golang.org/x/term"
)

type sweepConfig struct {
	sampleRate float64
	seconds    float64
	amplitude  float64
	noise      float64
	seed       int64
	hysteresis float64
	params     comparator.Params
}

type event struct {
	time             float64
	input            float64
	zoneA, zoneB     comparator.Zone
	and, or, xor, ff bool
}

func main() {
	rate := flag.Float64("rate", 1000, "sample rate in Hz")
	seconds := flag.Float64("seconds", 2, "sweep length in seconds, one full triangle period")
	amplitude := flag.Float64("amplitude", 5, "peak sweep voltage")
	noise := flag.Float64("noise", 0, "peak uniform noise added to the sweep in volts")
	seed := flag.Int64("seed", 1, "noise seed")
	hysteresis := flag.Float64("hysteresis", comparator.DefaultHysteresis, "comparator hysteresis in volts")
	shiftA := flag.Float64("shift", 0, "channel A window center in volts")
	sizeA := flag.Float64("size", 1, "channel A window width in volts")
	shiftB := flag.Float64("shift-b", 0, "channel B window center in volts")
	sizeB := flag.Float64("size-b", 1, "channel B window width in volts")
	forceCSV := flag.Bool("csv", false, "always write CSV")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cmpinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints zone and pair logic transitions of a window comparator sweep.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := sweepConfig{
		sampleRate: *rate,
		seconds:    *seconds,
		amplitude:  *amplitude,
		noise:      *noise,
		seed:       *seed,
		hysteresis: *hysteresis,
		params:     comparator.DefaultParams(),
	}
	cfg.params.Channels[comparator.ChannelA] = comparator.ChannelParams{Shift: *shiftA, Size: *sizeA}
	cfg.params.Channels[comparator.ChannelB] = comparator.ChannelParams{Shift: *shiftB, Size: *sizeB}

	events, err := sweep(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !*forceCSV && term.IsTerminal(int(os.Stdout.Fd())) {
		err = writeTable(os.Stdout, events)
	} else {
		err = writeCSV(os.Stdout, events)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

// triangle returns a -amplitude..amplitude..-amplitude sweep sample at
// position pos in [0, 1).
func triangle(pos, amplitude float64) float64 {
	if pos < 0.5 {
		return amplitude * (4*pos - 1)
	}
	return amplitude * (3 - 4*pos)
}

// sweep runs the Quad over the triangle and records the first sample and
// every sample on which a zone or pair output changed.
func sweep(cfg sweepConfig) ([]event, error) {
	if !(cfg.sampleRate > 0) || !core.IsFinite(cfg.sampleRate) {
		return nil, fmt.Errorf("invalid sample rate %v: must be > 0 and finite", cfg.sampleRate)
	}
	q, err := comparator.NewQuad(comparator.WithHysteresis(cfg.hysteresis))
	if err != nil {
		return nil, err
	}
	clock := core.NewSampleClock(core.WithSampleRate(cfg.sampleRate))
	n := int(cfg.seconds * cfg.sampleRate)
	if n <= 0 {
		return nil, fmt.Errorf("sweep length %vs is empty", cfg.seconds)
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	var events []event
	var in comparator.Inputs
	for i := 0; i < n; i++ {
		args := clock.Next()
		v := triangle(float64(i)/float64(n), cfg.amplitude)
		if cfg.noise > 0 {
			v += (rng.Float64()*2 - 1) * cfg.noise
		}
		in.Channels[comparator.ChannelA].In = core.Patched(v)
		q.Process(args, in, cfg.params)

		pair := q.Pair(comparator.PairAB)
		e := event{
			time:  args.Time,
			input: v,
			zoneA: q.Channel(comparator.ChannelA).Zone(),
			zoneB: q.Channel(comparator.ChannelB).Zone(),
			and:   pair.And(),
			or:    pair.Or(),
			xor:   pair.Xor(),
			ff:    pair.FlipFlop(),
		}
		if len(events) == 0 || !e.sameState(events[len(events)-1]) {
			events = append(events, e)
		}
	}
	return events, nil
}

func (e event) sameState(o event) bool {
	return e.zoneA == o.zoneA && e.zoneB == o.zoneB &&
		e.and == o.and && e.or == o.or && e.xor == o.xor && e.ff == o.ff
}

var header = []string{"time [s]", "input [V]", "A", "B", "and", "or", "xor", "ff"}

func (e event) fields() []string {
	return []string{
		strconv.FormatFloat(e.time, 'f', 4, 64),
		strconv.FormatFloat(e.input, 'f', 3, 64),
		e.zoneA.String(),
		e.zoneB.String(),
		onOff(e.and),
		onOff(e.or),
		onOff(e.xor),
		onOff(e.ff),
	}
}

func onOff(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeTable(w io.Writer, events []event) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, e := range events {
		if _, err := fmt.Fprintln(tw, strings.Join(e.fields(), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, events []event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range events {
		if err := cw.Write(e.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
