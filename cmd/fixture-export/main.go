package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/eos-robotics/motion-core/internal/replay"
	"github.com/eos-robotics/motion-core/internal/telemetry"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to motion_core.db")
	last := flag.Int("last", 20, "number of most recent commands to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	variant := flag.String("variant", "ground", "fixture variant: ground | indoor | aerial")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--last N] [--variant v]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath, *variant); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath string, last int, outPath, variant string) error {
	store, err := telemetry.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	records, err := store.ListCommands(last)
	if err != nil {
		return fmt.Errorf("list commands: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no commands found in command_log")
	}

	// ListCommands is newest first; reverse for chronological order.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	plans, err := store.ListPlans(1)
	if err != nil {
		return fmt.Errorf("list plans: %w", err)
	}

	fmt.Printf("Found %d command rows\n", len(records))

	fixture := buildFixture(records, plans, variant)
	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region build

// buildFixture reconstructs a replayable fixture from the command log.
// The log records outputs, not sensor inputs, so inputs are approximated:
// confidence and obstacle distance from the recorded mode, a tripping
// hazard for emergency rows, and the goal distance from the plan's
// logged energy at the baseline consumption rate.
func buildFixture(records []telemetry.CommandRecord, plans []telemetry.PlanRecord, variant string) replay.Fixture {
	energyLevel := float32(1.0)
	goalX := 10.0
	if len(plans) > 0 {
		if plans[0].EnergyLevel > 0 {
			energyLevel = plans[0].EnergyLevel
		}
		if plans[0].TotalEnergy > 0 {
			goalX = float64(plans[0].TotalEnergy) / 0.1
		}
	}

	cycles := make([]replay.FixtureCycle, len(records))
	expected := make([]replay.ExpectedResult, len(records))

	for i, r := range records {
		confidence, obstacle := heuristicInputs(r.Mode)

		hazards := map[string]float32{}
		if r.Emergency {
			hazards["tilt"] = 0.99
		}

		dtMillis := int64(100)
		if i > 0 {
			if d := r.CreatedAt.Sub(records[i-1].CreatedAt).Milliseconds(); d > 0 {
				dtMillis = d
			}
		}

		cycles[i] = replay.FixtureCycle{
			CycleID:          r.CycleID,
			Confidence:       confidence,
			ObstacleDistance: obstacle,
			Hazards:          hazards,
			EnergyLevel:      energyLevel,
			DtMillis:         dtMillis,
		}

		expected[i] = replay.ExpectedResult{
			CycleID: r.CycleID,
			Action:  expectedAction(r),
		}
	}

	return replay.Fixture{
		Description: fmt.Sprintf("Real session export: %d cycles from command log", len(records)),
		Variant:     variant,
		Goal:        replay.FixturePose{X: goalX},
		EnergyLevel: energyLevel,
		Cycles:      cycles,
		Expected:    expected,
	}
}

// heuristicInputs maps a recorded mode back to plausible sensor inputs.
func heuristicInputs(mode string) (confidence, obstacle float64) {
	switch mode {
	case "lost":
		return 0.3, 1.0
	case "recovering":
		return 0.85, 1.0
	default:
		return 0.95, 1.0
	}
}

// expectedAction converts a command row to the fixture action string.
func expectedAction(r telemetry.CommandRecord) string {
	switch {
	case r.Emergency:
		return "emergency"
	case r.Mode != "navigating":
		return "hold"
	default:
		return "command"
	}
}

// #endregion build

// #region output

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d cycles)\n", outPath, len(data), len(fixture.Cycles))
	return nil
}

// #endregion output
