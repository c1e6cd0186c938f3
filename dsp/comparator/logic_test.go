package comparator

import "testing"

func TestPairLogicTruthTable(t *testing.T) {
	tests := []struct {
		x, y         bool
		and, or, xor bool
	}{
		{x: false, y: false, and: false, or: false, xor: false},
		{x: true, y: false, and: false, or: true, xor: true},
		{x: false, y: true, and: false, or: true, xor: true},
		{x: true, y: true, and: true, or: true, xor: false},
	}

	for _, tt := range tests {
		var p PairLogic
		p.Process(tt.x, tt.y)
		if p.And() != tt.and || p.Or() != tt.or || p.Xor() != tt.xor {
			t.Fatalf("(%v,%v): and/or/xor = %v/%v/%v, want %v/%v/%v",
				tt.x, tt.y, p.And(), p.Or(), p.Xor(), tt.and, tt.or, tt.xor)
		}
		if p.Active() != (tt.and || tt.or || tt.xor) {
			t.Fatalf("(%v,%v): Active() = %v", tt.x, tt.y, p.Active())
		}
	}
}

func TestPairLogicFlipFlopTogglesOncePerXorRisingEdge(t *testing.T) {
	var p PairLogic

	// XOR held high for many samples toggles once.
	for i := 0; i < 100; i++ {
		p.Process(true, false)
	}
	if !p.FlipFlop() {
		t.Fatal("flip-flop did not toggle on first XOR rising edge")
	}

	// XOR falling edge does not clock it.
	p.Process(true, true)
	if !p.FlipFlop() {
		t.Fatal("flip-flop toggled on XOR falling edge")
	}

	// Switching which side is inside keeps XOR high: no new edge.
	p.Process(true, false)
	if p.FlipFlop() {
		t.Fatal("flip-flop did not toggle on second XOR rising edge")
	}
	p.Process(false, true)
	if p.FlipFlop() {
		t.Fatal("flip-flop toggled while XOR stayed high")
	}

	edges := 0
	pattern := []bool{false, false, true, true, true, false, true, false, false, true}
	start := p.FlipFlop()
	prevXor := p.Xor()
	for _, x := range pattern {
		p.Process(x, false)
		if x && !prevXor {
			edges++
		}
		prevXor = x
	}
	want := start
	if edges%2 == 1 {
		want = !start
	}
	if p.FlipFlop() != want {
		t.Fatalf("flip-flop = %v after %d edges from %v, want %v", p.FlipFlop(), edges, start, want)
	}

	p.Reset()
	if p.FlipFlop() || p.Xor() {
		t.Fatal("Reset did not clear pair state")
	}
}

func TestCombinePairs(t *testing.T) {
	var idle, active PairLogic
	idle.Process(false, false)
	active.Process(true, false)

	tests := []struct {
		name         string
		x, y         *PairLogic
		and, or, xor bool
	}{
		{name: "both idle", x: &idle, y: &idle},
		{name: "first active", x: &active, y: &idle, or: true, xor: true},
		{name: "second active", x: &idle, y: &active, or: true, xor: true},
		{name: "both active", x: &active, y: &active, and: true, or: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombinePairs(tt.x, tt.y)
			want := PairsResult{And: tt.and, Or: tt.or, Xor: tt.xor}
			if got != want {
				t.Fatalf("CombinePairs() = %+v, want %+v", got, want)
			}
		})
	}
}
