package telemetry

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eos-robotics/motion-core/internal/governor"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS command_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	cycle_id   TEXT NOT NULL,
	vx         REAL NOT NULL,
	vy         REAL NOT NULL,
	vz         REAL NOT NULL,
	emergency  INTEGER NOT NULL DEFAULT 0,
	mode       TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS mode_transitions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	from_mode  TEXT NOT NULL,
	to_mode    TEXT NOT NULL,
	confidence REAL NOT NULL,
	obstacle   REAL NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS plan_log (
	plan_id       TEXT PRIMARY KEY,
	decision      TEXT NOT NULL,
	reason        TEXT,
	segments      INTEGER NOT NULL DEFAULT 0,
	total_energy  REAL NOT NULL DEFAULT 0,
	acceptability REAL NOT NULL DEFAULT 1,
	energy_level  REAL NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists control-cycle diagnostics in SQLite: commands, mode
// transitions, and plan decisions. Replay and inspection only; the core
// never reads it back for control decisions.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by the cmd tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region record-command
// RecordCommand appends one command row.
func (s *Store) RecordCommand(rec CommandRecord) error {
	emergency := 0
	if rec.Emergency {
		emergency = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO command_log (cycle_id, vx, vy, vz, emergency, mode, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.CycleID, rec.Command[0], rec.Command[1], rec.Command[2],
		emergency, rec.Mode, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}
	return nil
}

// #endregion record-command

// #region record-transition
// RecordTransition appends one mode transition row.
func (s *Store) RecordTransition(rec TransitionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO mode_transitions (from_mode, to_mode, confidence, obstacle, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.From, rec.To, rec.Confidence, rec.ObstacleDistance,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert transition: %w", err)
	}
	return nil
}

// #endregion record-transition

// #region log-plan
// LogPlanDecision records the outcome of one planning attempt, accepted
// or rejected.
func (s *Store) LogPlanDecision(rec PlanRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO plan_log (plan_id, decision, reason, segments, total_energy, acceptability, energy_level, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PlanID, rec.Decision, nullIfEmpty(rec.Reason), rec.Segments,
		rec.TotalEnergy, rec.Acceptability, rec.EnergyLevel,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log plan: %w", err)
	}
	return nil
}

// #endregion log-plan

// #region list-commands
// ListCommands returns the most recent command rows, newest first.
func (s *Store) ListCommands(limit int) ([]CommandRecord, error) {
	rows, err := s.db.Query(
		`SELECT cycle_id, vx, vy, vz, emergency, mode, created_at
		 FROM command_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	var records []CommandRecord
	for rows.Next() {
		var rec CommandRecord
		var emergency int
		var createdStr string
		if err := rows.Scan(&rec.CycleID, &rec.Command[0], &rec.Command[1], &rec.Command[2],
			&emergency, &rec.Mode, &createdStr); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		rec.Emergency = emergency != 0
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-commands

// #region list-transitions
// ListTransitions returns the most recent mode transitions, newest first.
func (s *Store) ListTransitions(limit int) ([]TransitionRecord, error) {
	rows, err := s.db.Query(
		`SELECT from_mode, to_mode, confidence, obstacle, created_at
		 FROM mode_transitions ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	defer rows.Close()

	var records []TransitionRecord
	for rows.Next() {
		var rec TransitionRecord
		var createdStr string
		if err := rows.Scan(&rec.From, &rec.To, &rec.Confidence, &rec.ObstacleDistance, &createdStr); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-transitions

// #region list-plans
// ListPlans returns the most recent plan decisions, newest first.
func (s *Store) ListPlans(limit int) ([]PlanRecord, error) {
	rows, err := s.db.Query(
		`SELECT plan_id, decision, reason, segments, total_energy, acceptability, energy_level, created_at
		 FROM plan_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.PlanID, &rec.Decision, &reason, &rec.Segments,
			&rec.TotalEnergy, &rec.Acceptability, &rec.EnergyLevel, &createdStr); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		if reason.Valid {
			rec.Reason = reason.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-plans

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

// #region types

// CommandRecord is one row in command_log.
type CommandRecord struct {
	CycleID   string
	Command   governor.Command
	Emergency bool
	Mode      string
	CreatedAt time.Time
}

// TransitionRecord is one row in mode_transitions.
type TransitionRecord struct {
	From             string
	To               string
	Confidence       float64
	ObstacleDistance float64
	CreatedAt        time.Time
}

// PlanRecord is one row in plan_log.
type PlanRecord struct {
	PlanID        string
	Decision      string // "accepted" | "rejected"
	Reason        string
	Segments      int
	TotalEnergy   float32
	Acceptability float32
	EnergyLevel   float32
	CreatedAt     time.Time
}

// #endregion types
