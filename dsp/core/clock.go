package core

// ProcessArgs carries the timing of a single sample tick.
type ProcessArgs struct {
	// SampleTime is the duration of this tick in seconds.
	SampleTime float64
	// Time is the accumulated process time in seconds, including this tick.
	Time float64
	// Frame counts ticks since the clock started, starting at 1.
	Frame int64
}

// SampleClock produces ProcessArgs for consecutive samples at a fixed rate.
// It is owned by the host and handed to every module on each tick.
type SampleClock struct {
	sampleTime float64
	time       float64
	frame      int64
}

// NewSampleClock creates a clock for the configured sample rate.
func NewSampleClock(opts ...ProcessorOption) *SampleClock {
	cfg := ApplyProcessorOptions(opts...)
	return &SampleClock{sampleTime: cfg.SampleTime()}
}

// Next advances the clock by one sample and returns the tick arguments.
func (c *SampleClock) Next() ProcessArgs {
	c.frame++
	c.time += c.sampleTime
	return ProcessArgs{
		SampleTime: c.sampleTime,
		Time:       c.time,
		Frame:      c.frame,
	}
}

// Reset rewinds the clock to zero.
func (c *SampleClock) Reset() {
	c.time = 0
	c.frame = 0
}

// SampleTime returns the sample period in seconds.
func (c *SampleClock) SampleTime() float64 { return c.sampleTime }

// Time returns the accumulated time in seconds.
func (c *SampleClock) Time() float64 { return c.time }
