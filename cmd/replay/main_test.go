package main

import (
	"testing"
	"time"

	"github.com/eos-robotics/motion-core/internal/governor"
	"github.com/eos-robotics/motion-core/internal/telemetry"
)

func record(id string, cmd governor.Command, emergency bool, at time.Time) telemetry.CommandRecord {
	return telemetry.CommandRecord{
		CycleID:   id,
		Command:   cmd,
		Emergency: emergency,
		Mode:      "navigating",
		CreatedAt: at,
	}
}

func TestAuditCleanSequence(t *testing.T) {
	cfg := governor.DefaultGroundConfig()
	t0 := time.Unix(0, 0)

	records := []telemetry.CommandRecord{
		record("c1", governor.Command{0}, false, t0),
		record("c2", governor.Command{0.5}, false, t0.Add(time.Second)),
		record("c3", governor.Command{1.0}, false, t0.Add(2*time.Second)),
	}
	if got := auditCommands(records, cfg); got != 0 {
		t.Fatalf("expected no violations, got %d", got)
	}
}

func TestAuditFlagsAccelViolation(t *testing.T) {
	cfg := governor.DefaultGroundConfig()
	t0 := time.Unix(0, 0)

	// 1.0 in one second exceeds the 0.5 accel limit.
	records := []telemetry.CommandRecord{
		record("c1", governor.Command{0}, false, t0),
		record("c2", governor.Command{1.0}, false, t0.Add(time.Second)),
	}
	if got := auditCommands(records, cfg); got != 1 {
		t.Fatalf("expected 1 violation, got %d", got)
	}
}

func TestAuditFlagsDecelViolation(t *testing.T) {
	cfg := governor.DefaultGroundConfig()
	t0 := time.Unix(0, 0)

	// Dropping 1.5 in one second exceeds the 0.7 decel limit.
	records := []telemetry.CommandRecord{
		record("c1", governor.Command{1.5}, false, t0),
		record("c2", governor.Command{0}, false, t0.Add(time.Second)),
	}
	if got := auditCommands(records, cfg); got != 1 {
		t.Fatalf("expected 1 violation, got %d", got)
	}
}

func TestAuditFlagsBoundsViolation(t *testing.T) {
	cfg := governor.DefaultGroundConfig()
	records := []telemetry.CommandRecord{
		record("c1", governor.Command{3.0}, false, time.Unix(0, 0)),
	}
	if got := auditCommands(records, cfg); got != 1 {
		t.Fatalf("expected 1 violation for command above max bound, got %d", got)
	}
}

func TestAuditSkipsEmergencyTransitions(t *testing.T) {
	cfg := governor.DefaultAerialConfig()
	t0 := time.Unix(0, 0)

	// The jump into the emergency descent and the jump out of it bypass
	// smoothing and must not count as rate violations.
	records := []telemetry.CommandRecord{
		record("c1", governor.Command{3.0, 0, 0}, false, t0),
		record("c2", governor.Command{0, 0, -0.3}, true, t0.Add(time.Second)),
		record("c3", governor.Command{0, 0, 0}, false, t0.Add(2*time.Second)),
	}
	if got := auditCommands(records, cfg); got != 0 {
		t.Fatalf("expected no violations across emergency rows, got %d", got)
	}
}

func TestAuditChecksAllActiveAxes(t *testing.T) {
	cfg := governor.DefaultAerialConfig()
	t0 := time.Unix(0, 0)

	// Lateral axis jumps by 2.0 in one second against a 0.3 accel limit.
	records := []telemetry.CommandRecord{
		record("c1", governor.Command{0, 0, 0}, false, t0),
		record("c2", governor.Command{0, 2.0, 0}, false, t0.Add(time.Second)),
	}
	if got := auditCommands(records, cfg); got != 1 {
		t.Fatalf("expected 1 violation on the lateral axis, got %d", got)
	}
}
