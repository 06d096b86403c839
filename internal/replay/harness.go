package replay

import (
	"fmt"
	"time"

	"github.com/eos-robotics/motion-core/internal/core"
	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/governor"
	"github.com/eos-robotics/motion-core/internal/mode"
	"github.com/eos-robotics/motion-core/internal/safety"
)

// #region types

// Result captures the outcome of replaying one control cycle.
type Result struct {
	CycleID string
	Action  string // "command" | "hold" | "emergency" | "plan_complete"
	Mode    mode.Mode
	Command governor.Command
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalCycles   int
	Commands      int
	Holds         int
	Emergencies   int
	PlanCompletes int
	FinalMode     mode.Mode
	LatchTripped  bool
}

// #endregion types

// #region run

// Run replays the fixture through a fresh core: plan, start navigation,
// then feed every recorded cycle. Operates entirely in-memory and is
// deterministic for a given fixture.
func Run(f *Fixture) ([]Result, Summary, error) {
	c, err := buildCore(f.Variant)
	if err != nil {
		return nil, Summary{}, err
	}

	analysis := f.Analysis()
	if _, err := c.Plan(f.Start.ToPose(), f.Goal.ToPose(), analysis, f.EnergyLevel); err != nil {
		return nil, Summary{}, fmt.Errorf("fixture plan: %w", err)
	}
	if err := c.StartNavigation(); err != nil {
		return nil, Summary{}, fmt.Errorf("fixture navigation start: %w", err)
	}

	now := time.Unix(0, 0).UTC()
	results := make([]Result, 0, len(f.Cycles))

	for _, cycle := range f.Cycles {
		now = now.Add(time.Duration(cycle.DtMillis) * time.Millisecond)

		res := c.UpdateCycle(core.CycleInput{
			Pose:             cycle.Pose.ToPose(),
			Confidence:       cycle.Confidence,
			ObstacleDistance: cycle.ObstacleDistance,
			Hazards:          safety.HazardVector(cycle.Hazards),
			EnergyLevel:      cycle.EnergyLevel,
			Now:              now,
		})

		results = append(results, Result{
			CycleID: cycle.CycleID,
			Action:  classify(res),
			Mode:    res.Mode,
			Command: res.Command,
		})
	}

	status := c.GetStatus()
	return results, summarize(results, status), nil
}

// classify maps a cycle result onto a replay action.
func classify(res core.CycleResult) string {
	switch {
	case res.Emergency:
		return "emergency"
	case res.PlanComplete:
		return "plan_complete"
	case res.Mode != mode.Navigating:
		return "hold"
	default:
		return "command"
	}
}

// summarize computes aggregate stats from replay results.
func summarize(results []Result, status core.Status) Summary {
	s := Summary{
		TotalCycles:  len(results),
		FinalMode:    status.Mode,
		LatchTripped: status.LatchTripped,
	}
	for _, r := range results {
		switch r.Action {
		case "command":
			s.Commands++
		case "hold":
			s.Holds++
		case "emergency":
			s.Emergencies++
		case "plan_complete":
			s.PlanCompletes++
		}
	}
	return s
}

// buildCore assembles a core with the named variant's defaults.
func buildCore(variant string) (*core.Core, error) {
	switch variant {
	case "ground", "":
		return core.New(cost.NewGroundModel(nil, nil, false), core.DefaultGroundConfig()), nil
	case "indoor":
		return core.New(cost.NewIndoorModel(), core.DefaultIndoorConfig()), nil
	case "aerial":
		return core.New(cost.NewAerialModel(nil), core.DefaultAerialConfig()), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

// #endregion run
