package core

import (
	"log"
	"sync"
	"time"

	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/governor"
	"github.com/eos-robotics/motion-core/internal/mode"
	"github.com/eos-robotics/motion-core/internal/planner"
	"github.com/eos-robotics/motion-core/internal/pose"
	"github.com/eos-robotics/motion-core/internal/safety"
)

// #region core

// Core is the motion-governance facade for one robot instance. All mutable
// state (plan, velocity, latch, mode, history) is guarded by a single
// exclusive lock, held only for the duration of each call; no call here
// re-enters another.
type Core struct {
	mu sync.Mutex

	config     Config
	planner    *planner.Planner
	governor   *governor.Governor
	monitor    *safety.Monitor
	machine    *mode.Machine
	adaptation float32
	activeSeg  int
}

// New creates a core over the given pure cost model and variant config.
func New(model cost.Model, config Config) *Core {
	return &Core{
		config:     config,
		planner:    planner.New(model, config.Planner),
		governor:   governor.New(config.Governor),
		monitor:    safety.NewMonitor(config.Thresholds),
		machine:    mode.NewMachine(),
		adaptation: 1.0,
	}
}

// #endregion core

// #region plan

// Plan builds a new path. Refused while the safety latch is tripped.
func (c *Core) Plan(start, goal pose.Pose, analysis any, energyLevel float32) (planner.Path, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.monitor.Tripped() {
		return planner.Path{}, ErrEmergencyActive
	}

	path, err := c.planner.Plan(start, goal, analysis, energyLevel)
	if err != nil {
		return planner.Path{}, err
	}
	c.activeSeg = 0
	log.Printf("[CORE] plan %s: %d segments, energy=%.4f acceptability=%.4f",
		path.PlanID, len(path.Segments), path.TotalEnergy, path.Acceptability)
	return path, nil
}

// Replan re-scores the current plan for new conditions without changing
// its geometry. Refused while the latch is tripped.
func (c *Core) Replan(analysis any, energyLevel float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.monitor.Tripped() {
		return ErrEmergencyActive
	}
	return c.planner.ReplanForAnalysis(analysis, energyLevel)
}

// #endregion plan

// #region step

// Step smooths toward the target velocity. Refused while the latch is
// tripped. When the mode machine does not permit motion, the target is
// forced to zero so the governor brakes to a stop within its limits.
func (c *Core) Step(target governor.Command, now time.Time) (governor.Command, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.monitor.Tripped() {
		return governor.Command{}, ErrEmergencyActive
	}
	if c.machine.Current() != mode.Navigating {
		target = governor.Command{}
	}
	return c.governor.Step(target, now), nil
}

// #endregion step

// #region cycle

// UpdateCycle runs one full control cycle: hazard evaluation, mode
// transition, and command generation for the active segment. It is the
// one entry point the owning control loop calls every tick.
func (c *Core) UpdateCycle(in CycleInput) CycleResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	breached := c.monitor.Evaluate(in.Hazards)
	currentMode, _ := c.machine.Update(in.Confidence, in.ObstacleDistance)

	if breached || c.monitor.Tripped() {
		return CycleResult{
			Mode:         currentMode,
			LatchTripped: true,
			Command:      c.governor.EmergencyCommand(in.Now),
			Emergency:    true,
		}
	}

	target, complete := c.targetForCycle(in)
	cmd := c.governor.Step(target, in.Now)
	return CycleResult{
		Mode:         currentMode,
		Command:      cmd,
		PlanComplete: complete,
	}
}

// targetForCycle derives the target velocity from the active plan segment,
// advancing past completed segments. Outside Navigating the target is the
// zero vector.
func (c *Core) targetForCycle(in CycleInput) (governor.Command, bool) {
	var target governor.Command
	if c.machine.Current() != mode.Navigating {
		return target, false
	}

	path, ok := c.planner.Current()
	if !ok {
		return target, false
	}

	// Advance past segments whose end has been reached.
	for c.activeSeg < len(path.Segments) &&
		pose.Distance(in.Pose, path.Segments[c.activeSeg].End) < c.config.WaypointRadius {
		c.activeSeg++
	}
	if c.activeSeg >= len(path.Segments) {
		log.Printf("[CORE] plan %s complete", path.PlanID)
		c.planner.Clear()
		c.activeSeg = 0
		return target, true
	}

	seg := path.Segments[c.activeSeg]
	target[0] = c.config.CruiseSpeed * (1.0 - seg.Cost.Risk) * energyFactor(in.EnergyLevel) * c.adaptation

	// Vertical axis tracks the segment's end altitude for aerial variants.
	if c.config.Governor.Axes >= 3 {
		if seg.End.Z > in.Pose.Z {
			target[2] = 0.5
		} else if seg.End.Z < in.Pose.Z {
			target[2] = -0.3
		}
	}
	return target, false
}

// energyFactor throttles cruise speed as the energy budget drains.
func energyFactor(energyLevel float32) float32 {
	switch {
	case energyLevel > 0.7:
		return 1.0
	case energyLevel > 0.4:
		return 0.8
	case energyLevel > 0.2:
		return 0.5
	default:
		return 0.3
	}
}

// #endregion cycle

// #region emergency

// EmergencyStop trips the latch, forces the mode machine to Idle, and
// returns the fixed safe stop/descent command. Always permitted.
func (c *Core) EmergencyStop(now time.Time) governor.Command {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.monitor.Trip()
	c.machine.EmergencyOverride()
	log.Printf("[CORE] emergency stop")
	return c.governor.EmergencyCommand(now)
}

// ResetSafety re-arms the latch. Must be an explicit, separately
// authorized call; nothing inside the core clears the latch.
func (c *Core) ResetSafety() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.monitor.Reset()
}

// #endregion emergency

// #region mode-ops

// StartNavigation requests the Navigating mode. Accepted only from Idle
// or Recovering, and never while the latch is tripped.
func (c *Core) StartNavigation() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.monitor.Tripped() {
		return ErrEmergencyActive
	}
	return c.machine.StartNavigation()
}

// StartMapping requests the Mapping mode.
func (c *Core) StartMapping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.monitor.Tripped() {
		return ErrEmergencyActive
	}
	return c.machine.StartMapping()
}

// Mode returns the active operating mode.
func (c *Core) Mode() mode.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.Current()
}

// #endregion mode-ops

// #region accessors

// SetAdaptationFactor tunes the terrain/weather adaptation multiplier,
// clamped to [0.1, 2.0].
func (c *Core) SetAdaptationFactor(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if factor < 0.1 {
		factor = 0.1
	}
	if factor > 2.0 {
		factor = 2.0
	}
	c.adaptation = factor
}

// CommandHistory returns a read-only snapshot of recorded commands.
func (c *Core) CommandHistory() []governor.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.governor.History()
}

// CurrentPlan returns a copy of the active plan, if any.
func (c *Core) CurrentPlan() (planner.Path, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.planner.Current()
}

// GetStatus returns a point-in-time snapshot.
func (c *Core) GetStatus() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, hasPlan := c.planner.Current()
	return Status{
		Mode:         c.machine.Current(),
		LatchTripped: c.monitor.Tripped(),
		Command:      c.governor.Current(),
		HasPlan:      hasPlan,
	}
}

// #endregion accessors
