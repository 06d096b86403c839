package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eos-robotics/motion-core/internal/telemetry"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to motion_core.db")
	last := flag.Int("last", 20, "show N most recent rows")
	table := flag.String("table", "commands", "which log to show: commands | transitions | plans")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/motion_core.db [--last N] [--table commands|transitions|plans] [--json]")
		os.Exit(2)
	}

	store, err := telemetry.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch *table {
	case "commands":
		err = showCommands(store, *last, *jsonOut)
	case "transitions":
		err = showTransitions(store, *last, *jsonOut)
	case "plans":
		err = showPlans(store, *last, *jsonOut)
	default:
		fmt.Fprintf(os.Stderr, "unknown table %q\n", *table)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region commands

func showCommands(store *telemetry.Store, last int, jsonOut bool) error {
	records, err := store.ListCommands(last)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no commands found")
		return nil
	}

	fmt.Printf("%-10s  %8s  %8s  %8s  %-11s  %-10s  %s\n",
		"Cycle", "Vx", "Vy", "Vz", "Emergency", "Mode", "Time")
	for _, r := range records {
		fmt.Printf("%-10s  %8.3f  %8.3f  %8.3f  %-11v  %-10s  %s\n",
			shortID(r.CycleID), r.Command[0], r.Command[1], r.Command[2],
			r.Emergency, r.Mode, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// #endregion commands

// #region transitions

func showTransitions(store *telemetry.Store, last int, jsonOut bool) error {
	records, err := store.ListTransitions(last)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no transitions found")
		return nil
	}

	fmt.Printf("%-10s  %-10s  %10s  %10s  %s\n",
		"From", "To", "Confidence", "Obstacle", "Time")
	for _, r := range records {
		fmt.Printf("%-10s  %-10s  %10.2f  %10.2f  %s\n",
			r.From, r.To, r.Confidence, r.ObstacleDistance, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// #endregion transitions

// #region plans

func showPlans(store *telemetry.Store, last int, jsonOut bool) error {
	records, err := store.ListPlans(last)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no plans found")
		return nil
	}

	fmt.Printf("%-10s  %-9s  %4s  %8s  %8s  %7s  %s\n",
		"Plan", "Decision", "Segs", "Energy", "Accept", "Level", "Reason")
	for _, r := range records {
		reason := r.Reason
		if reason == "" {
			reason = "—"
		}
		fmt.Printf("%-10s  %-9s  %4d  %8.3f  %8.3f  %7.2f  %s\n",
			shortID(r.PlanID), r.Decision, r.Segments, r.TotalEnergy,
			r.Acceptability, r.EnergyLevel, reason)
	}
	return nil
}

// #endregion plans

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
