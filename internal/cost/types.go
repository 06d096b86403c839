package cost

import (
	"math"

	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region segment-cost

// SegmentCost is the normalized cost of traversing one path segment.
// Energy is a non-negative estimate in normalized energy units; Risk and
// DomainPenalty are clamped to [0, 1]. DomainPenalty carries the
// variant-specific soft constraint (terrain risk, social impact, turbulence).
type SegmentCost struct {
	Energy        float32
	Risk          float32
	DomainPenalty float32
}

// Sanitize returns a copy with all fields finite, Energy >= 0, and
// Risk/DomainPenalty clamped to [0, 1]. Non-finite inputs map to 0.
func (c SegmentCost) Sanitize() SegmentCost {
	return SegmentCost{
		Energy:        clampNonNegative(c.Energy),
		Risk:          Clamp01(c.Risk),
		DomainPenalty: Clamp01(c.DomainPenalty),
	}
}

// #endregion segment-cost

// #region model

// Model converts a domain environment analysis into per-segment costs.
// Implementations must be pure: same inputs produce the same output, with
// no hidden state, so the planner can call them repeatedly during
// replanning. Unknown analysis types map to the default cost (base energy,
// zero penalty) rather than an error.
type Model interface {
	// SegmentCost scores the candidate segment from start to end under
	// the given analysis.
	SegmentCost(start, end pose.Pose, analysis any) SegmentCost

	// RestrictedTarget reports whether goal lies inside a region this
	// variant forbids, with a human-readable region name.
	RestrictedTarget(goal pose.Pose, analysis any) (bool, string)
}

// #endregion model

// #region defaults

// baseEnergyPerMeter is the energy premium applied per meter of travel
// when no domain-specific information is available.
const baseEnergyPerMeter = 0.1

// DefaultCost returns the documented fallback cost for a segment whose
// analysis is missing or unrecognized: distance-proportional base energy,
// zero risk, zero penalty.
func DefaultCost(start, end pose.Pose) SegmentCost {
	return SegmentCost{
		Energy: float32(pose.Distance(start, end)) * baseEnergyPerMeter,
	}
}

// #endregion defaults

// #region helpers

// Clamp01 restricts v to [0, 1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampNonNegative(v float32) float32 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// #endregion helpers
