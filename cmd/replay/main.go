package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eos-robotics/motion-core/internal/governor"
	"github.com/eos-robotics/motion-core/internal/replay"
	"github.com/eos-robotics/motion-core/internal/telemetry"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to motion_core.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	variant := flag.String("variant", "ground", "governance variant for DB mode bounds checks")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/motion_core.db [--variant ground|indoor|aerial]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *variant)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Run(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	expected := make(map[string]string, len(f.Expected))
	for _, e := range f.Expected {
		expected[e.CycleID] = e.Action
	}

	fmt.Printf("%-12s| %-15s| %-15s| %s\n", "Cycle", "Expected", "Replayed", "Match")
	fmt.Printf("%-12s+%-16s+%-16s+%s\n",
		"------------", "----------------", "----------------", "------")

	matches, compared := 0, 0
	for _, r := range results {
		exp, ok := expected[r.CycleID]
		if !ok {
			continue
		}
		compared++
		match := "DIFF"
		if exp == r.Action {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-15s| %-15s| %s\n", r.CycleID, exp, r.Action, match)
	}

	fmt.Printf("\nSummary: %d cycles, %d commands, %d holds, %d emergencies, final mode %s, latch tripped %v\n",
		summary.TotalCycles, summary.Commands, summary.Holds, summary.Emergencies,
		summary.FinalMode, summary.LatchTripped)

	if compared > 0 && matches < compared {
		fmt.Printf("%d of %d expected actions diverged\n", compared-matches, compared)
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

// runDBMode audits the recorded command log against the variant's
// governance limits: every command must sit inside the velocity bounds,
// and consecutive non-emergency commands must respect the per-axis
// acceleration and deceleration rate limits.
func runDBMode(dbPath, variant string) int {
	cfg, ok := variantConfig(variant)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", variant)
		return 2
	}

	store, err := telemetry.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	records, err := store.ListCommands(10000)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list commands: %v\n", err)
		return 2
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no commands found in command_log")
		return 2
	}

	// ListCommands returns newest first; reverse for chronological audit.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	violations := auditCommands(records, cfg)

	fmt.Printf("\nAudited %d commands against %s limits: %d violations\n",
		len(records), variant, violations)
	if violations > 0 {
		return 1
	}
	return 0
}

// auditCommands checks a chronological command sequence against per-axis
// bounds and rate limits, printing each violation. Emergency rows bypass
// smoothing, so deltas into and out of them are not rate-checked.
func auditCommands(records []telemetry.CommandRecord, cfg governor.Config) int {
	violations := 0
	for i, rec := range records {
		for axis := 0; axis < cfg.Axes; axis++ {
			v := rec.Command[axis]
			if v < cfg.MinBound[axis] || v > cfg.MaxBound[axis] {
				violations++
				fmt.Printf("BOUNDS  %s axis %d: %.3f outside [%.2f, %.2f]\n",
					rec.CycleID, axis, v, cfg.MinBound[axis], cfg.MaxBound[axis])
			}
		}

		if i == 0 || rec.Emergency || records[i-1].Emergency {
			continue
		}
		prev := records[i-1]
		dt := float32(rec.CreatedAt.Sub(prev.CreatedAt).Seconds())
		if dt <= 0 {
			continue
		}
		const eps = 1e-3
		for axis := 0; axis < cfg.Axes; axis++ {
			delta := rec.Command[axis] - prev.Command[axis]
			if delta > cfg.MaxAccel[axis]*dt+eps {
				violations++
				fmt.Printf("ACCEL   %s axis %d: delta %.3f exceeds %.3f over %.2fs\n",
					rec.CycleID, axis, delta, cfg.MaxAccel[axis]*dt, dt)
			}
			if -delta > cfg.MaxDecel[axis]*dt+eps {
				violations++
				fmt.Printf("DECEL   %s axis %d: delta %.3f exceeds %.3f over %.2fs\n",
					rec.CycleID, axis, -delta, cfg.MaxDecel[axis]*dt, dt)
			}
		}
	}
	return violations
}

func variantConfig(variant string) (governor.Config, bool) {
	switch variant {
	case "ground":
		return governor.DefaultGroundConfig(), true
	case "indoor":
		return governor.DefaultIndoorConfig(), true
	case "aerial":
		return governor.DefaultAerialConfig(), true
	}
	return governor.Config{}, false
}

// #endregion db-mode
