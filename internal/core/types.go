package core

import (
	"errors"
	"time"

	"github.com/eos-robotics/motion-core/internal/governor"
	"github.com/eos-robotics/motion-core/internal/mode"
	"github.com/eos-robotics/motion-core/internal/planner"
	"github.com/eos-robotics/motion-core/internal/pose"
	"github.com/eos-robotics/motion-core/internal/safety"
)

// #region errors

// ErrEmergencyActive means the safety latch is tripped: planning and
// stepping are refused until ResetSafety is called.
var ErrEmergencyActive = errors.New("emergency active")

// #endregion errors

// #region config

// Config bundles the per-variant tuning for one robot instance.
type Config struct {
	Planner    planner.Config
	Governor   governor.Config
	Thresholds []safety.Threshold

	// CruiseSpeed is the base forward speed for the active segment,
	// scaled down by segment risk and remaining energy.
	CruiseSpeed float32

	// WaypointRadius is how close the pose must be to a segment end
	// before the next segment becomes active.
	WaypointRadius float64
}

// DefaultGroundConfig returns rover tuning.
func DefaultGroundConfig() Config {
	return Config{
		Planner:        planner.DefaultGroundConfig(),
		Governor:       governor.DefaultGroundConfig(),
		Thresholds:     safety.DefaultGroundThresholds(),
		CruiseSpeed:    0.5,
		WaypointRadius: 0.3,
	}
}

// DefaultIndoorConfig returns indoor tuning.
func DefaultIndoorConfig() Config {
	return Config{
		Planner:        planner.DefaultIndoorConfig(),
		Governor:       governor.DefaultIndoorConfig(),
		Thresholds:     safety.DefaultIndoorThresholds(),
		CruiseSpeed:    0.3,
		WaypointRadius: 0.3,
	}
}

// DefaultAerialConfig returns drone tuning.
func DefaultAerialConfig() Config {
	return Config{
		Planner:        planner.DefaultAerialConfig(),
		Governor:       governor.DefaultAerialConfig(),
		Thresholds:     safety.DefaultAerialThresholds(),
		CruiseSpeed:    5.0,
		WaypointRadius: 1.0,
	}
}

// #endregion config

// #region cycle

// CycleInput carries one control cycle's already-resolved sensor values.
// Nothing in the core blocks on I/O; the calling cycle supplies these.
type CycleInput struct {
	Pose             pose.Pose
	Confidence       float64
	ObstacleDistance float64
	Hazards          safety.HazardVector
	EnergyLevel      float32
	Now              time.Time
}

// CycleResult is what one control cycle produced.
type CycleResult struct {
	Mode         mode.Mode
	LatchTripped bool
	Command      governor.Command
	Emergency    bool
	PlanComplete bool
}

// Status is a point-in-time snapshot for status queries.
type Status struct {
	Mode         mode.Mode
	LatchTripped bool
	Command      governor.Command
	HasPlan      bool
}

// #endregion cycle
