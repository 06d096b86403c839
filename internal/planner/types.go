package planner

import (
	"errors"
	"time"

	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region errors

var (
	// ErrRestrictedTarget means the goal lies inside a forbidden region.
	ErrRestrictedTarget = errors.New("restricted target")
	// ErrEnergyInfeasible means the path exceeds the energy budget margin.
	ErrEnergyInfeasible = errors.New("insufficient energy for path")
	// ErrAcceptability means the path falls below the acceptability floor.
	ErrAcceptability = errors.New("path below acceptability floor")
	// ErrNoPlan means an operation requires a current plan and none exists.
	ErrNoPlan = errors.New("no current plan")
)

// #endregion errors

// #region path

// PathSegment is an atomic sub-path between two poses with its cost.
// Immutable once placed into a Path.
type PathSegment struct {
	Start pose.Pose
	End   pose.Pose
	Cost  cost.SegmentCost
}

// Path is an ordered sequence of segments with aggregate feasibility
// figures. TotalEnergy <= budget*margin and Acceptability >= floor are
// postconditions of every Path returned by the planner.
type Path struct {
	PlanID        string
	Segments      []PathSegment
	TotalEnergy   float32
	Acceptability float32
	CreatedAt     time.Time
}

// #endregion path

// #region config

// Config holds planning margins. The energy margin and acceptability
// floor differ per deployment variant.
type Config struct {
	EnergyMargin       float32 // fraction of the energy budget a plan may consume
	AcceptabilityFloor float32 // minimum aggregate acceptability
	PenaltyWeight      float32 // weight applied to DomainPenalty per segment
	SegmentLength      float64 // subdivide segments longer than this; 0 = single segment
}

// DefaultGroundConfig returns rover planning margins.
func DefaultGroundConfig() Config {
	return Config{EnergyMargin: 0.8, AcceptabilityFloor: 0.5, PenaltyWeight: 0.1}
}

// DefaultIndoorConfig returns indoor planning margins. Privacy and social
// impact weigh heavier than terrain risk does outdoors.
func DefaultIndoorConfig() Config {
	return Config{EnergyMargin: 0.8, AcceptabilityFloor: 0.5, PenaltyWeight: 0.2}
}

// DefaultAerialConfig returns drone planning margins. Flight reserves a
// larger energy buffer for the return leg.
func DefaultAerialConfig() Config {
	return Config{EnergyMargin: 0.7, AcceptabilityFloor: 0.5, PenaltyWeight: 0.1}
}

// #endregion config
