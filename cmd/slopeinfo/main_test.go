package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-cv/dsp/slope"
	"github.com/cwbudde/algo-cv/measure/cycle"
)

func testAnalyzer(t *testing.T) *cycle.Analyzer {
	t.Helper()
	a, err := cycle.NewAnalyzer(1024)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return a
}

func testConfig() renderConfig {
	cfg := renderConfig{
		sampleRate: 1024,
		seconds:    8,
		mix:        0.5,
		prob:       1,
		seed:       1,
	}
	cfg.params.Params = slope.DefaultParams()
	return cfg
}

func TestRenderCycle(t *testing.T) {
	cfg := testConfig()
	cfg.params.Cycle = true

	r, err := render(cfg, slope.TriggerAlways, testAnalyzer(t))
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if r.min != 0 || r.max != 10 {
		t.Fatalf("range = %v..%v, want 0..10", r.min, r.max)
	}
	if r.rise != 1 || r.fall != 1 {
		t.Fatalf("timing = %v/%v, want 1s/1s", r.rise, r.fall)
	}
	if r.ends != 4 || r.pulses != 4 || r.breakpoints != 4 {
		t.Fatalf("counts = %+v, want four of each", r)
	}
	if r.period != 2 {
		t.Fatalf("period = %v, want 2", r.period)
	}
	if r.fundamental < 0.45 || r.fundamental > 0.55 {
		t.Fatalf("fundamental = %v, want about 0.5 Hz", r.fundamental)
	}
}

func TestRenderTriggerModes(t *testing.T) {
	cfg := testConfig()
	cfg.triggerHz = 3

	a := testAnalyzer(t)
	always, err := render(cfg, slope.TriggerAlways, a)
	if err != nil {
		t.Fatalf("render(always) error = %v", err)
	}
	complete, err := render(cfg, slope.TriggerCompleteOnly, a)
	if err != nil {
		t.Fatalf("render(complete-only) error = %v", err)
	}

	// Retriggering every third of a second never lets a 2s cycle finish.
	if always.ends != 0 {
		t.Fatalf("always: %d ends, want 0", always.ends)
	}
	// Cycles start at 0s, ~2.33s and ~4.33s; the next would end after 8s.
	if complete.ends != 3 {
		t.Fatalf("complete-only: %d ends, want 3", complete.ends)
	}
}

func TestRenderEmpty(t *testing.T) {
	cfg := testConfig()
	cfg.seconds = 0
	if _, err := render(cfg, slope.TriggerAlways, testAnalyzer(t)); err == nil {
		t.Fatal("expected error for empty render")
	}
}

func TestResolveModes(t *testing.T) {
	modes, ok := resolveModes(nil)
	if !ok || len(modes) != 1 || modes[0] != slope.TriggerAlways {
		t.Fatalf("default modes = %v, %v", modes, ok)
	}
	modes, ok = resolveModes([]string{" Fall-Only ", "bogus", "complete-only"})
	if !ok || len(modes) != 2 || modes[0] != slope.TriggerFallOnly || modes[1] != slope.TriggerCompleteOnly {
		t.Fatalf("modes = %v, %v", modes, ok)
	}
	if _, ok := resolveModes([]string{"bogus"}); ok {
		t.Fatal("unknown mode accepted")
	}
}

func TestWriters(t *testing.T) {
	reports := []report{{mode: slope.TriggerRiseOnly, rise: 1, fall: 2, max: 10, ends: 3, period: 3}}

	var table bytes.Buffer
	if err := writeTable(&table, reports); err != nil {
		t.Fatalf("writeTable() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "rise-only") {
		t.Fatalf("table output:\n%s", table.String())
	}

	var csvOut bytes.Buffer
	if err := writeCSV(&csvOut, reports); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}
	want := "mode,rise [s],fall [s],min [V],max [V],ends,pulses,breakpoints,period [s],fundamental [Hz]\n" +
		"rise-only,1.0000,2.0000,0.000,10.000,3,0,0,3.0000,0.000\n"
	if csvOut.String() != want {
		t.Fatalf("csv output = %q, want %q", csvOut.String(), want)
	}
}
