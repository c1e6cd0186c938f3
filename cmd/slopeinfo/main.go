// Command slopeinfo renders a slope generator offline and prints its
// effective timing, gate counts and measured cycle.
//
// Usage:
//
//	slopeinfo [flags] [trigger-mode ...]
//
// Without arguments it renders the "always" trigger mode. Output is an
// aligned table on a terminal and CSV otherwise.
//
// Examples:
//
//	slopeinfo -cycle
//	slopeinfo -rise 0.2 -fall 0.7 -curve 0.5 -cycle
//	slopeinfo -trigger-hz 3 always rise-only fall-only complete-only
//	slopeinfo -sync-hz 2 -cycle -chaos 0.5 -prob 0.5
//	slopeinfo -list
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-cv/dsp/core"
	"github.com/cwbudde/algo-cv/dsp/slope"
	"github.com/cwbudde/algo-cv/measure/cycle"
	"golang.org/x/term"
)

type renderConfig struct {
	sampleRate float64
	seconds    float64
	params     slope.SlopeParams
	mix        float64
	prob       float64
	triggerHz  float64
	syncHz     float64
	seed       int64
}

type report struct {
	mode        slope.TriggerMode
	rise, fall  float64
	ends        int
	pulses      int
	breakpoints int
	period      float64
	fundamental float64
	min, max    float64
}

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	seconds := flag.Float64("seconds", 10, "render length in seconds")
	rise := flag.Float64("rise", 0.5, "rise knob [0, 1]")
	fall := flag.Float64("fall", 0.5, "fall knob [0, 1]")
	curve := flag.Float64("curve", 0, "curve knob [-1, 1]")
	breakpoint := flag.Float64("breakpoint", 0.5, "breakpoint as fraction of the cycle [0, 1]")
	rateKnob := flag.Float64("speed", 0.5, "rate knob [0, 1], 0.5 is neutral")
	chaos := flag.Float64("chaos", 0, "chaos amount [0, 1]")
	prob := flag.Float64("prob", 1, "end pulse probability [0, 1]")
	cycleOn := flag.Bool("cycle", false, "free-run the envelope")
	triggerHz := flag.Float64("trigger-hz", 0, "external trigger clock in Hz, 0 leaves the trigger unpatched")
	syncHz := flag.Float64("sync-hz", 0, "external sync clock in Hz, 0 leaves sync unpatched")
	seed := flag.Int64("seed", 1, "random seed for chaos and probability")
	list := flag.Bool("list", false, "list trigger modes")
	forceCSV := flag.Bool("csv", false, "always write CSV")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slopeinfo [flags] [trigger-mode ...]\n\n")
		fmt.Fprintf(os.Stderr, "Renders slope A of a dual slope generator and reports its behaviour.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  slopeinfo -cycle\n")
		fmt.Fprintf(os.Stderr, "  slopeinfo -trigger-hz 3 always rise-only fall-only complete-only\n")
		fmt.Fprintf(os.Stderr, "  slopeinfo -sync-hz 2 -cycle -chaos 0.5\n")
	}
	flag.Parse()

	if *list {
		for m := slope.TriggerAlways; m.Valid(); m++ {
			fmt.Println(m)
		}
		return
	}

	modes, ok := resolveModes(flag.Args())
	if !ok {
		fmt.Fprintf(os.Stderr, "error: no matching trigger modes (use -list to see available)\n")
		os.Exit(1)
	}

	cfg := renderConfig{
		sampleRate: *rate,
		seconds:    *seconds,
		mix:        0.5,
		prob:       *prob,
		triggerHz:  *triggerHz,
		syncHz:     *syncHz,
		seed:       *seed,
	}
	cfg.params.Params = slope.Params{
		Rise:       *rise,
		Fall:       *fall,
		Curve:      *curve,
		Breakpoint: *breakpoint,
		Rate:       *rateKnob,
		Cycle:      *cycleOn,
	}
	cfg.params.Chaos = *chaos

	analyzer, err := cycle.NewAnalyzer(cfg.sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	reports := make([]report, 0, len(modes))
	for _, m := range modes {
		r, err := render(cfg, m, analyzer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", m, err)
			os.Exit(1)
		}
		reports = append(reports, r)
	}

	if !*forceCSV && term.IsTerminal(int(os.Stdout.Fd())) {
		err = writeTable(os.Stdout, reports)
	} else {
		err = writeCSV(os.Stdout, reports)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func resolveModes(names []string) ([]slope.TriggerMode, bool) {
	if len(names) == 0 {
		return []slope.TriggerMode{slope.TriggerAlways}, true
	}
	var modes []slope.TriggerMode
	for _, name := range names {
		m, ok := slope.ParseTriggerMode(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown trigger mode %q\n", name)
			continue
		}
		modes = append(modes, m)
	}
	return modes, len(modes) > 0
}

// render drives slope A of a Dual for cfg.seconds and measures its outputs.
func render(cfg renderConfig, mode slope.TriggerMode, analyzer *cycle.Analyzer) (report, error) {
	d, err := slope.NewDual(
		slope.WithChaosSource(slope.NewSource(cfg.seed)),
		slope.WithProbabilitySource(slope.NewSource(cfg.seed+1)),
	)
	if err != nil {
		return report{}, err
	}
	clock := core.NewSampleClock(core.WithSampleRate(cfg.sampleRate))

	p := slope.DefaultDualParams()
	p.Slopes[slope.SlopeA] = cfg.params
	p.Slopes[slope.SlopeA].Mode = mode
	p.Mix = cfg.mix
	p.Probability = cfg.prob

	n := int(cfg.seconds * cfg.sampleRate)
	if n <= 0 {
		return report{}, fmt.Errorf("render length %vs is empty", cfg.seconds)
	}
	values := make([]float64, n)
	ends := make([]float64, n)

	r := report{mode: mode}
	var in slope.DualInputs
	for i := 0; i < n; i++ {
		args := clock.Next()
		in.Slopes[slope.SlopeA].Trigger = clockInput(cfg.triggerHz, args)
		in.Slopes[slope.SlopeA].Sync = clockInput(cfg.syncHz, args)

		out := d.Process(args, in, p)
		a := out.Slopes[slope.SlopeA]
		values[i] = a.Slope
		ends[i] = a.End

		if a.End > 0 {
			r.ends++
		}
		if a.Pulse > 0 {
			r.pulses++
		}
		if d.Generator(slope.SlopeA).State().BreakpointFired {
			r.breakpoints++
		}
	}

	tm := d.Generator(slope.SlopeA).Timing()
	r.rise, r.fall = tm.Rise, tm.Fall

	if res, err := cycle.Measure(ends, cycle.Config{SampleRate: cfg.sampleRate, Threshold: cycle.DefaultThreshold}); err == nil {
		r.period = res.Period
	}
	if f, err := analyzer.Fundamental(values); err == nil {
		r.fundamental = f
	}
	if l, err := cycle.MeasureLevels(values); err == nil {
		r.min, r.max = l.Min, l.Max
	}
	return r, nil
}

// clockInput returns a patched 50% duty gate at hz, or an unpatched jack.
func clockInput(hz float64, args core.ProcessArgs) core.Input {
	if hz <= 0 {
		return core.Input{}
	}
	pos := args.Time*hz - float64(int64(args.Time*hz))
	return core.Patched(core.Gate(pos < 0.5))
}

var header = []string{
	"mode", "rise [s]", "fall [s]", "min [V]", "max [V]",
	"ends", "pulses", "breakpoints", "period [s]", "fundamental [Hz]",
}

func (r report) fields() []string {
	return []string{
		r.mode.String(),
		strconv.FormatFloat(r.rise, 'f', 4, 64),
		strconv.FormatFloat(r.fall, 'f', 4, 64),
		strconv.FormatFloat(r.min, 'f', 3, 64),
		strconv.FormatFloat(r.max, 'f', 3, 64),
		strconv.Itoa(r.ends),
		strconv.Itoa(r.pulses),
		strconv.Itoa(r.breakpoints),
		strconv.FormatFloat(r.period, 'f', 4, 64),
		strconv.FormatFloat(r.fundamental, 'f', 3, 64),
	}
}

func writeTable(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
		return err
	}
	for _, r := range reports {
		if _, err := fmt.Fprintln(tw, strings.Join(r.fields(), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, reports []report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range reports {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
