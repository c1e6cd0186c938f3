package comparator

// Channel is one hysteretic window comparator.
//
// Entering ZoneHi requires the input to exceed Window.Hi+H and entering
// ZoneLo requires it to fall below Window.Lo-H. Leaving either back to
// ZoneWin requires recrossing the same edge by H from the other side, so an
// input dwelling on an edge never toggles the state. Between those guards the
// previous zone is held.
//
// After the first call to Process exactly one of Hi, Win and Lo is true.
type Channel struct {
	hysteresis float64
	zone       Zone
	window     Window
}

// NewChannel creates a comparator channel with the given hysteresis margin
// in volts.
func NewChannel(hysteresis float64) (*Channel, error) {
	if err := validateHysteresis(hysteresis); err != nil {
		return nil, err
	}
	return &Channel{hysteresis: hysteresis}, nil
}

// Process compares one input sample against w and returns the new zone.
func (c *Channel) Process(in float64, w Window) Zone {
	c.window = w
	h := c.hysteresis

	switch {
	case in > w.Hi+h:
		c.zone = ZoneHi
	case in < w.Lo-h:
		c.zone = ZoneLo
	default:
		c.zone = c.settle(in, w)
	}
	return c.zone
}

// settle decides the zone for an input inside the extended band
// [Lo-H, Hi+H].
func (c *Channel) settle(in float64, w Window) Zone {
	h := c.hysteresis
	switch c.zone {
	case ZoneHi:
		if in <= w.Hi-h {
			return ZoneWin
		}
	case ZoneLo:
		if in >= w.Lo+h {
			return ZoneWin
		}
	case ZoneNone:
		// No history: classify against the bare window.
		switch {
		case in > w.Hi:
			return ZoneHi
		case in < w.Lo:
			return ZoneLo
		default:
			return ZoneWin
		}
	}
	return c.zone
}

// Reset forgets the zone history.
func (c *Channel) Reset() {
	c.zone = ZoneNone
	c.window = Window{}
}

// Zone returns the current zone.
func (c *Channel) Zone() Zone { return c.zone }

// Hi reports whether the input is above the window.
func (c *Channel) Hi() bool { return c.zone == ZoneHi }

// Win reports whether the input is inside the window.
func (c *Channel) Win() bool { return c.zone == ZoneWin }

// Lo reports whether the input is below the window.
func (c *Channel) Lo() bool { return c.zone == ZoneLo }

// Window returns the window used by the last Process call.
func (c *Channel) Window() Window { return c.window }

// Hysteresis returns the hysteresis margin in volts.
func (c *Channel) Hysteresis() float64 { return c.hysteresis }
