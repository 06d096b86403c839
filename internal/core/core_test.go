package core

import (
	"errors"
	"testing"
	"time"

	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/governor"
	"github.com/eos-robotics/motion-core/internal/mode"
	"github.com/eos-robotics/motion-core/internal/pose"
	"github.com/eos-robotics/motion-core/internal/safety"
)

func newGroundCore() *Core {
	return New(cost.NewGroundModel(nil, nil, false), DefaultGroundConfig())
}

func cleanInput(p pose.Pose, now time.Time) CycleInput {
	return CycleInput{
		Pose:             p,
		Confidence:       0.95,
		ObstacleDistance: 5.0,
		Hazards:          safety.HazardVector{},
		EnergyLevel:      1.0,
		Now:              now,
	}
}

func TestEmergencyStopGatesEverything(t *testing.T) {
	c := newGroundCore()
	now := time.Unix(0, 0)

	cmd := c.EmergencyStop(now)
	if cmd != (governor.Command{}) {
		t.Fatalf("expected ground emergency stop to be zero, got %v", cmd)
	}
	if c.Mode() != mode.Idle {
		t.Fatalf("expected idle after emergency stop, got %s", c.Mode())
	}

	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); !errors.Is(err, ErrEmergencyActive) {
		t.Fatalf("expected ErrEmergencyActive from Plan, got %v", err)
	}
	if err := c.Replan(nil, 1.0); !errors.Is(err, ErrEmergencyActive) {
		t.Fatalf("expected ErrEmergencyActive from Replan, got %v", err)
	}
	if _, err := c.Step(governor.Command{1.0}, now); !errors.Is(err, ErrEmergencyActive) {
		t.Fatalf("expected ErrEmergencyActive from Step, got %v", err)
	}
	if err := c.StartNavigation(); !errors.Is(err, ErrEmergencyActive) {
		t.Fatalf("expected ErrEmergencyActive from StartNavigation, got %v", err)
	}

	c.ResetSafety()
	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("expected planning to work after reset, got %v", err)
	}
}

func TestUpdateCycleNavigates(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)

	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First cycle establishes the governor time baseline.
	res := c.UpdateCycle(cleanInput(pose.Pose{}, t0))
	if res.Mode != mode.Navigating {
		t.Fatalf("expected navigating, got %s", res.Mode)
	}
	if res.Command[0] != 0 {
		t.Fatalf("expected zero command on first cycle, got %f", res.Command[0])
	}

	// One second later at full energy and zero risk the cruise target of
	// 0.5 is reachable within the 0.5 accel limit.
	res = c.UpdateCycle(cleanInput(pose.Pose{}, t0.Add(time.Second)))
	if res.Command[0] != 0.5 {
		t.Fatalf("expected cruise command 0.5, got %f", res.Command[0])
	}
	if res.Emergency || res.PlanComplete {
		t.Fatalf("unexpected flags: %+v", res)
	}
}

func TestUpdateCycleEmergencyOnHazard(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)
	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := cleanInput(pose.Pose{}, t0)
	in.Hazards = safety.HazardVector{safety.ReadingTilt: 0.9}
	res := c.UpdateCycle(in)
	if !res.Emergency || !res.LatchTripped {
		t.Fatalf("expected emergency on tilt breach, got %+v", res)
	}
	if res.Command != (governor.Command{}) {
		t.Fatalf("expected zero emergency command, got %v", res.Command)
	}

	// Hazard clears but the latch is sticky: still emergency.
	res = c.UpdateCycle(cleanInput(pose.Pose{}, t0.Add(time.Second)))
	if !res.Emergency || !res.LatchTripped {
		t.Fatalf("expected latched emergency on clean cycle, got %+v", res)
	}
}

func TestUpdateCyclePlanComplete(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)
	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pose already within the waypoint radius of the goal.
	res := c.UpdateCycle(cleanInput(pose.Pose{X: 4.9}, t0))
	if !res.PlanComplete {
		t.Fatalf("expected plan complete, got %+v", res)
	}
	if st := c.GetStatus(); st.HasPlan {
		t.Fatal("expected plan cleared after completion")
	}
}

func TestUpdateCycleHoldsOutsideNavigating(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)
	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}

	// Idle: the plan exists but no motion target is produced.
	res := c.UpdateCycle(cleanInput(pose.Pose{}, t0))
	res = c.UpdateCycle(cleanInput(pose.Pose{}, t0.Add(time.Second)))
	if res.Mode != mode.Idle {
		t.Fatalf("expected idle, got %s", res.Mode)
	}
	if res.Command != (governor.Command{}) {
		t.Fatalf("expected zero command while idle, got %v", res.Command)
	}
}

func TestStepForcesZeroTargetOutsideNavigating(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)

	if _, err := c.Step(governor.Command{2.0}, t0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd, err := c.Step(governor.Command{2.0}, t0.Add(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd[0] != 0 {
		t.Fatalf("expected zero command while idle, got %f", cmd[0])
	}
}

func TestEnergyFactorThrottlesCruise(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)
	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := cleanInput(pose.Pose{}, t0)
	in.EnergyLevel = 0.3 // factor 0.5: target 0.25
	c.UpdateCycle(in)
	in.Now = t0.Add(time.Second)
	res := c.UpdateCycle(in)
	if res.Command[0] != 0.25 {
		t.Fatalf("expected throttled command 0.25, got %f", res.Command[0])
	}
}

func TestSetAdaptationFactorClamped(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)
	if _, err := c.Plan(pose.Pose{}, pose.Pose{X: 5}, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.SetAdaptationFactor(0.0001) // clamps to 0.1: target 0.05
	c.UpdateCycle(cleanInput(pose.Pose{}, t0))
	res := c.UpdateCycle(cleanInput(pose.Pose{}, t0.Add(time.Second)))
	if res.Command[0] != 0.05 {
		t.Fatalf("expected clamped adaptation command 0.05, got %f", res.Command[0])
	}
}

func TestStartNavigationOnlyFromIdleOrRecovering(t *testing.T) {
	c := newGroundCore()
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error from idle: %v", err)
	}
	if err := c.StartNavigation(); !errors.Is(err, mode.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode while navigating, got %v", err)
	}
}

func TestCommandHistoryRecordsCycles(t *testing.T) {
	c := newGroundCore()
	t0 := time.Unix(0, 0)
	c.UpdateCycle(cleanInput(pose.Pose{}, t0))
	c.UpdateCycle(cleanInput(pose.Pose{}, t0.Add(time.Second)))
	if got := len(c.CommandHistory()); got != 2 {
		t.Fatalf("expected 2 history entries, got %d", got)
	}
}

func TestAerialEmergencyDescends(t *testing.T) {
	c := New(cost.NewAerialModel(nil), DefaultAerialConfig())
	cmd := c.EmergencyStop(time.Unix(0, 0))
	if cmd[2] != -0.3 {
		t.Fatalf("expected descent command -0.3, got %f", cmd[2])
	}
}

func TestAerialAltitudeTracking(t *testing.T) {
	c := New(cost.NewAerialModel(nil), DefaultAerialConfig())
	t0 := time.Unix(0, 0)

	goal := pose.Pose{X: 2, Z: 3}
	if _, err := c.Plan(pose.Pose{}, goal, nil, 1.0); err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	if err := c.StartNavigation(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.UpdateCycle(cleanInput(pose.Pose{}, t0))
	res := c.UpdateCycle(cleanInput(pose.Pose{}, t0.Add(time.Second)))
	if res.Command[2] <= 0 {
		t.Fatalf("expected climb command below target altitude, got %f", res.Command[2])
	}
}
