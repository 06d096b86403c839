package governor

import (
	"time"

	"github.com/eos-robotics/motion-core/internal/cost"
)

// #region governor

// Governor converts target velocities into smoothed commands respecting
// per-axis acceleration and deceleration limits and absolute bounds. It is
// a rate-limited low-pass filter: no integral or derivative terms, no
// overshoot correction beyond the hard per-axis clamp.
type Governor struct {
	config     Config
	current    Command
	lastUpdate time.Time
	history    *History
}

// New creates a governor at rest. The first Step establishes the time
// baseline (dt is treated as zero).
func New(config Config) *Governor {
	capacity := config.HistoryCapacity
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &Governor{
		config:  config,
		history: NewHistory(capacity),
	}
}

// #endregion governor

// #region step

// Step advances the smoothed command toward target. dt is derived from
// now and the previous call; a non-monotonic now clamps dt to zero. The
// returned command never leaves the configured per-axis bounds.
func (g *Governor) Step(target Command, now time.Time) Command {
	var dt float32
	if !g.lastUpdate.IsZero() {
		dt = float32(now.Sub(g.lastUpdate).Seconds())
		if dt < 0 {
			dt = 0
		}
	}

	for axis := 0; axis < g.config.Axes; axis++ {
		delta := target[axis] - g.current[axis]
		var applied float32
		if delta > 0 {
			applied = minf(delta, g.config.MaxAccel[axis]*dt)
		} else {
			applied = maxf(delta, -g.config.MaxDecel[axis]*dt)
		}
		g.current[axis] = clampAxis(g.current[axis]+applied, g.config.MinBound[axis], g.config.MaxBound[axis])
	}

	g.history.Append(Entry{Command: g.current, Timestamp: now})
	g.lastUpdate = now
	return g.current
}

// #endregion step

// #region emergency

// EmergencyCommand returns the configured safe stop/descent command
// immediately, bypassing the smoothing logic, and records it. Subsequent
// Steps smooth from the emergency command, not the pre-emergency state.
func (g *Governor) EmergencyCommand(now time.Time) Command {
	g.current = g.config.Emergency
	g.lastUpdate = now
	g.history.Append(Entry{Command: g.current, Timestamp: now, Emergency: true})
	return g.current
}

// #endregion emergency

// #region hover

// HoverCommand produces a small vertical correction for aerial variants
// holding position. stability is clamped to [0, 1]; a perfectly stable
// hover needs no correction.
func (g *Governor) HoverCommand(stability float32) Command {
	var cmd Command
	if g.config.Axes < 3 {
		return cmd
	}
	cmd[2] = 0.1 * (1.0 - cost.Clamp01(stability))
	return cmd
}

// #endregion hover

// #region accessors

// Current returns the present smoothed command.
func (g *Governor) Current() Command {
	return g.current
}

// History returns a read-only snapshot of recorded commands, oldest first.
func (g *Governor) History() []Entry {
	return g.history.Snapshot()
}

// #endregion accessors

// #region helpers

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampAxis(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
