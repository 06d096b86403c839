package telemetry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/eos-robotics/motion-core/internal/governor"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "motion_core.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndListCommands(t *testing.T) {
	store := newTestStore(t)
	t0 := time.Unix(1000, 0).UTC()

	recs := []CommandRecord{
		{CycleID: "c1", Command: governor.Command{0.5, 0, 0}, Mode: "navigating", CreatedAt: t0},
		{CycleID: "c2", Command: governor.Command{0, 0, -0.3}, Emergency: true, Mode: "idle", CreatedAt: t0.Add(time.Second)},
	}
	for _, rec := range recs {
		if err := store.RecordCommand(rec); err != nil {
			t.Fatalf("record command: %v", err)
		}
	}

	listed, err := store.ListCommands(10)
	if err != nil {
		t.Fatalf("list commands: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(listed))
	}

	// Newest first.
	if listed[0].CycleID != "c2" {
		t.Errorf("expected c2 first, got %s", listed[0].CycleID)
	}
	if !listed[0].Emergency {
		t.Error("expected emergency flag preserved")
	}
	if listed[0].Command[2] != -0.3 {
		t.Errorf("expected vz -0.3, got %f", listed[0].Command[2])
	}
	if listed[1].Mode != "navigating" {
		t.Errorf("expected mode navigating, got %q", listed[1].Mode)
	}
	if !listed[1].CreatedAt.Equal(t0) {
		t.Errorf("expected timestamp %v, got %v", t0, listed[1].CreatedAt)
	}
}

func TestListCommandsLimit(t *testing.T) {
	store := newTestStore(t)
	t0 := time.Unix(1000, 0).UTC()
	for i := 0; i < 5; i++ {
		err := store.RecordCommand(CommandRecord{
			CycleID:   "c",
			Mode:      "idle",
			CreatedAt: t0.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("record command: %v", err)
		}
	}

	listed, err := store.ListCommands(3)
	if err != nil {
		t.Fatalf("list commands: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(listed))
	}
}

func TestRecordAndListTransitions(t *testing.T) {
	store := newTestStore(t)
	t0 := time.Unix(1000, 0).UTC()

	err := store.RecordTransition(TransitionRecord{
		From:             "idle",
		To:               "navigating",
		Confidence:       0.95,
		ObstacleDistance: 4.2,
		CreatedAt:        t0,
	})
	if err != nil {
		t.Fatalf("record transition: %v", err)
	}

	listed, err := store.ListTransitions(10)
	if err != nil {
		t.Fatalf("list transitions: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(listed))
	}
	if listed[0].From != "idle" || listed[0].To != "navigating" {
		t.Errorf("unexpected transition: %+v", listed[0])
	}
	if listed[0].Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %f", listed[0].Confidence)
	}
}

func TestLogPlanDecision(t *testing.T) {
	store := newTestStore(t)

	err := store.LogPlanDecision(PlanRecord{
		PlanID:        "plan-1",
		Decision:      "accepted",
		Segments:      5,
		TotalEnergy:   0.42,
		Acceptability: 0.9,
		EnergyLevel:   1.0,
	})
	if err != nil {
		t.Fatalf("log plan: %v", err)
	}

	err = store.LogPlanDecision(PlanRecord{
		PlanID:      "plan-2",
		Decision:    "rejected",
		Reason:      "insufficient energy for path",
		EnergyLevel: 0.2,
	})
	if err != nil {
		t.Fatalf("log plan: %v", err)
	}

	listed, err := store.ListPlans(10)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(listed))
	}

	byID := map[string]PlanRecord{}
	for _, p := range listed {
		byID[p.PlanID] = p
	}
	if byID["plan-1"].Reason != "" {
		t.Errorf("expected empty reason, got %q", byID["plan-1"].Reason)
	}
	if byID["plan-1"].Segments != 5 {
		t.Errorf("expected 5 segments, got %d", byID["plan-1"].Segments)
	}
	if byID["plan-2"].Reason != "insufficient energy for path" {
		t.Errorf("expected rejection reason, got %q", byID["plan-2"].Reason)
	}
	if byID["plan-2"].CreatedAt.IsZero() {
		t.Error("expected created_at defaulted for zero time")
	}
}

func TestDuplicatePlanIDRejected(t *testing.T) {
	store := newTestStore(t)
	rec := PlanRecord{PlanID: "plan-1", Decision: "accepted"}
	if err := store.LogPlanDecision(rec); err != nil {
		t.Fatalf("log plan: %v", err)
	}
	if err := store.LogPlanDecision(rec); err == nil {
		t.Fatal("expected primary key violation on duplicate plan id")
	}
}
