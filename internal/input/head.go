package input

import (
	"math"

	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
)

// Head tracker defaults.
const (
	DefaultHeadWindow    = 20  // samples accumulated per cycle
	DefaultHeadThreshold = 0.1 // accumulated motion needed to register
	DefaultHeadDecay     = 4   // quiet cycles that drop a half-gesture
)

// HeadTracker turns a stream of head-pose deltas into shifts.
//
// Deltas are summed over Window samples, rounded to three decimals, then
// compared with Threshold; the horizontal axis is checked first. A single
// motion only arms the tracker. The shift fires when the head comes back:
// right then left shifts Right, up then down shifts Up. Cycles without
// motion are counted across gestures; every Decay of them drops an armed
// motion and starts the count again.
type HeadTracker struct {
	Window    int
	Threshold float64
	Decay     int

	samples int
	sumX    float64
	sumY    float64
	pending engine.Direction
	armed   bool
	quiet   int
}

// NewHeadTracker returns a tracker with the default tuning.
func NewHeadTracker() *HeadTracker {
	return &HeadTracker{
		Window:    DefaultHeadWindow,
		Threshold: DefaultHeadThreshold,
		Decay:     DefaultHeadDecay,
	}
}

// Feed adds one sample. Positive dx is a turn to the right, positive dy a
// tilt down. It reports a direction when a completed gesture ends a cycle.
func (t *HeadTracker) Feed(dx, dy float64) (engine.Direction, bool) {
	t.sumX += dx
	t.sumY += dy
	t.samples++
	if t.samples < max(t.Window, 1) {
		return 0, false
	}

	x, y := round3(t.sumX), round3(t.sumY)
	t.samples, t.sumX, t.sumY = 0, 0, 0

	sensed, moved := t.sense(x, y)
	if !moved {
		t.quiet++
		if t.quiet >= t.Decay {
			t.armed = false
			t.quiet = 0
		}
		return 0, false
	}

	if t.armed && t.pending == opposite(sensed) {
		t.armed = false
		return t.pending, true
	}
	t.pending, t.armed = sensed, true
	return 0, false
}

// FeedTo feeds one sample and shifts c when a gesture completes.
func (t *HeadTracker) FeedTo(c engine.Controller, dx, dy float64) (engine.ShiftResult, bool) {
	dir, ok := t.Feed(dx, dy)
	if !ok {
		return engine.ShiftResult{}, false
	}
	return c.Shift(dir), true
}

// Pending returns the armed half-gesture, if any.
func (t *HeadTracker) Pending() (engine.Direction, bool) {
	return t.pending, t.armed
}

// Reset clears accumulated samples and any armed gesture.
func (t *HeadTracker) Reset() {
	*t = HeadTracker{Window: t.Window, Threshold: t.Threshold, Decay: t.Decay}
}

func (t *HeadTracker) sense(x, y float64) (engine.Direction, bool) {
	switch {
	case x < -t.Threshold:
		return engine.Left, true
	case x > t.Threshold:
		return engine.Right, true
	case y < -t.Threshold:
		return engine.Up, true
	case y > t.Threshold:
		return engine.Down, true
	}
	return 0, false
}

func opposite(d engine.Direction) engine.Direction {
	switch d {
	case engine.Up:
		return engine.Down
	case engine.Down:
		return engine.Up
	case engine.Left:
		return engine.Right
	default:
		return engine.Left
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
