package comparator

// PairLogic combines the inside-window state of two channels.
//
// AND, OR and XOR are recomputed from scratch each sample. The flip-flop
// toggles on the sample where XOR goes from false to true and holds
// otherwise; XOR falling edges never clock it.
type PairLogic struct {
	and, or, xor bool
	flipFlop     bool
	xorPrevious  bool
}

// Process updates the pair from two inside-window flags.
func (p *PairLogic) Process(winX, winY bool) {
	p.and = winX && winY
	p.or = winX || winY
	p.xor = winX != winY

	if p.xor && !p.xorPrevious {
		p.flipFlop = !p.flipFlop
	}
	p.xorPrevious = p.xor
}

// Reset clears the flip-flop and its edge memory.
func (p *PairLogic) Reset() {
	*p = PairLogic{}
}

// And reports whether both channels are inside their windows.
func (p *PairLogic) And() bool { return p.and }

// Or reports whether at least one channel is inside its window.
func (p *PairLogic) Or() bool { return p.or }

// Xor reports whether exactly one channel is inside its window.
func (p *PairLogic) Xor() bool { return p.xor }

// FlipFlop returns the toggle state clocked by XOR rising edges.
func (p *PairLogic) FlipFlop() bool { return p.flipFlop }

// Active reports whether any of the pair's combinational outputs is high.
func (p *PairLogic) Active() bool { return p.and || p.or || p.xor }

// PairsResult is the second-level logic across two pairs.
type PairsResult struct {
	And bool
	Or  bool
	Xor bool
}

// CombinePairs applies AND/OR/XOR to the activity of two pairs.
func CombinePairs(x, y *PairLogic) PairsResult {
	ax, ay := x.Active(), y.Active()
	return PairsResult{
		And: ax && ay,
		Or:  ax || ay,
		Xor: ax != ay,
	}
}
