package testutil

// Sequence is a scripted random source. Float64 returns the values in order
// and repeats the last one once the script is exhausted.
type Sequence struct {
	values []float64
	next   int
	calls  int
}

// NewSequence creates a scripted source. An empty script yields 0.5.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	s.calls++
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}

// Calls returns how many values have been drawn.
func (s *Sequence) Calls() int { return s.calls }
