package slope

import "github.com/cwbudde/algo-cv/dsp/core"

// Sync period limits and default in seconds.
const (
	MinSyncPeriod     = 0.01
	MaxSyncPeriod     = 10.0
	DefaultSyncPeriod = 1.0
)

// SyncPLL measures the interval between sync edges and provides the factor
// that stretches a rise+fall cycle onto it.
type SyncPLL struct {
	period   float64
	lastEdge float64
	armed    bool
}

// NewSyncPLL returns a PLL holding the default period.
func NewSyncPLL() SyncPLL {
	return SyncPLL{period: DefaultSyncPeriod}
}

// Edge records a sync edge at time now (seconds). The period is updated from
// the second edge onwards and clamped to [MinSyncPeriod, MaxSyncPeriod].
func (p *SyncPLL) Edge(now float64) {
	if p.armed {
		p.period = core.Clamp(now-p.lastEdge, MinSyncPeriod, MaxSyncPeriod)
	}
	p.lastEdge = now
	p.armed = true
}

// Release forgets the last edge time; the measured period is kept.
func (p *SyncPLL) Release() {
	p.armed = false
}

// Reset restores the default period and forgets the last edge.
func (p *SyncPLL) Reset() {
	*p = NewSyncPLL()
}

// Scale returns the factor applied to rise and fall times so that one full
// cycle of rise+fall seconds lasts exactly Period seconds.
func (p *SyncPLL) Scale(rise, fall float64) float64 {
	return p.period / (rise + fall)
}

// Period returns the measured sync period in seconds.
func (p *SyncPLL) Period() float64 { return p.period }

// Armed reports whether an edge has been seen since the last Release.
func (p *SyncPLL) Armed() bool { return p.armed }
