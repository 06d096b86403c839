package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eos-robotics/motion-core/internal/core"
	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/pose"
	"github.com/eos-robotics/motion-core/internal/safety"
	"github.com/eos-robotics/motion-core/internal/scorer"
	"github.com/eos-robotics/motion-core/internal/telemetry"
)

// #region session

// session holds the interactive operator state around the core.
type session struct {
	core    *core.Core
	store   *telemetry.Store
	scorer  *scorer.Client
	variant string

	pose    pose.Pose
	energy  float32
	terrain cost.TerrainAnalysis

	lastMode string
}

// #endregion session

// #region main
func main() {
	variant := envOr("MOTION_VARIANT", "ground")
	dbPath := envOr("MOTION_DB", "motion_core.db")
	scorerAddr := envOr("SCORER_ADDR", "")

	c, err := newCore(variant)
	if err != nil {
		log.Fatalf("build core: %v", err)
	}

	store, err := telemetry.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	s := &session{
		core:     c,
		store:    store,
		variant:  variant,
		energy:   1.0,
		lastMode: string(c.Mode()),
	}

	if scorerAddr != "" {
		client, err := scorer.NewClient(scorerAddr)
		if err != nil {
			log.Fatalf("failed to connect to scorer at %s: %v", scorerAddr, err)
		}
		defer client.Close()
		s.scorer = client
	}

	fmt.Println("Motion Core Controller ready.")
	fmt.Printf("  Variant: %s | DB: %s | Scorer: %s\n", variant, dbPath, orNone(scorerAddr))
	fmt.Println("Commands: pose, energy, terrain, score, plan, start, map, cycle, estop, reset, status, history, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if err := s.dispatch(strings.Fields(line)); err != nil {
			log.Printf("error: %v", err)
		}
	}
}

// #endregion main

// #region dispatch
func (s *session) dispatch(args []string) error {
	switch args[0] {
	case "pose":
		return s.cmdPose(args[1:])
	case "energy":
		return s.cmdEnergy(args[1:])
	case "terrain":
		return s.cmdTerrain(args[1:])
	case "score":
		return s.cmdScore()
	case "plan":
		return s.cmdPlan(args[1:])
	case "start":
		return s.core.StartNavigation()
	case "map":
		return s.core.StartMapping()
	case "cycle":
		return s.cmdCycle(args[1:])
	case "estop":
		s.cmdEstop()
		return nil
	case "reset":
		s.core.ResetSafety()
		fmt.Println("safety latch reset")
		return nil
	case "status":
		s.cmdStatus()
		return nil
	case "history":
		return s.cmdHistory()
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// #endregion dispatch

// #region operator-commands
func (s *session) cmdPose(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: pose <x> <y> [z] [heading]")
	}
	vals, err := parseFloats(args, 4)
	if err != nil {
		return err
	}
	s.pose = pose.Pose{X: vals[0], Y: vals[1], Z: vals[2], Heading: vals[3]}
	fmt.Printf("pose set to (%.2f, %.2f, %.2f)\n", s.pose.X, s.pose.Y, s.pose.Z)
	return nil
}

func (s *session) cmdEnergy(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: energy <0..1>")
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("parse energy: %w", err)
	}
	s.energy = float32(v)
	return nil
}

func (s *session) cmdTerrain(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: terrain <type> <slope> <roughness> <stability>")
	}
	vals, err := parseFloats(args[1:], 3)
	if err != nil {
		return err
	}
	s.terrain.Segments = append(s.terrain.Segments, cost.TerrainSegment{
		Type:      args[0],
		Slope:     float32(vals[0]),
		Roughness: float32(vals[1]),
		Stability: float32(vals[2]),
	})
	fmt.Printf("terrain now has %d segments\n", len(s.terrain.Segments))
	return nil
}

// cmdScore sends the current terrain to the scoring service and folds the
// learned risk into the speed adaptation factor.
func (s *session) cmdScore() error {
	if s.scorer == nil {
		return fmt.Errorf("no scorer configured (set SCORER_ADDR)")
	}
	if len(s.terrain.Segments) == 0 {
		return fmt.Errorf("no terrain segments to score")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scores, err := s.scorer.ScoreSegments(ctx, scorer.TerrainFeatures(&s.terrain))
	if err != nil {
		return err
	}
	for i, sc := range scores {
		fmt.Printf("  segment %d: risk=%.2f penalty=%.2f confidence=%.2f\n", i, sc.Risk, sc.Penalty, sc.Confidence)
	}

	risk := scorer.MeanRisk(scores)
	factor := 1.0 - 0.5*risk
	s.core.SetAdaptationFactor(factor)
	fmt.Printf("mean risk %.2f -> adaptation factor %.2f\n", risk, factor)
	return nil
}

func (s *session) cmdPlan(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: plan <gx> <gy> [gz]")
	}
	vals, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	goal := pose.Pose{X: vals[0], Y: vals[1], Z: vals[2]}

	var analysis any
	if len(s.terrain.Segments) > 0 {
		analysis = &s.terrain
	}

	path, err := s.core.Plan(s.pose, goal, analysis, s.energy)
	if err != nil {
		logErr := s.store.LogPlanDecision(telemetry.PlanRecord{
			PlanID:      uuid.NewString(),
			Decision:    "rejected",
			Reason:      err.Error(),
			EnergyLevel: s.energy,
		})
		if logErr != nil {
			log.Printf("plan log error: %v", logErr)
		}
		return err
	}

	if err := s.store.LogPlanDecision(telemetry.PlanRecord{
		PlanID:        path.PlanID,
		Decision:      "accepted",
		Segments:      len(path.Segments),
		TotalEnergy:   path.TotalEnergy,
		Acceptability: path.Acceptability,
		EnergyLevel:   s.energy,
	}); err != nil {
		log.Printf("plan log error: %v", err)
	}

	fmt.Printf("plan %s: %d segments, energy %.3f, acceptability %.3f\n",
		path.PlanID, len(path.Segments), path.TotalEnergy, path.Acceptability)
	return nil
}

// cmdCycle runs one control cycle: cycle <confidence> <obstacle> [name=val ...]
func (s *session) cmdCycle(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: cycle <confidence> <obstacle_distance> [hazard=value ...]")
	}
	conf, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse confidence: %w", err)
	}
	obstacle, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parse obstacle distance: %w", err)
	}

	hazards := safety.HazardVector{}
	for _, pair := range args[2:] {
		name, val, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("hazard %q is not name=value", pair)
		}
		f, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return fmt.Errorf("parse hazard %s: %w", name, err)
		}
		hazards[name] = float32(f)
	}

	now := time.Now().UTC()
	res := s.core.UpdateCycle(core.CycleInput{
		Pose:             s.pose,
		Confidence:       conf,
		ObstacleDistance: obstacle,
		Hazards:          hazards,
		EnergyLevel:      s.energy,
		Now:              now,
	})

	cycleID := uuid.NewString()
	if err := s.store.RecordCommand(telemetry.CommandRecord{
		CycleID:   cycleID,
		Command:   res.Command,
		Emergency: res.Emergency,
		Mode:      string(res.Mode),
		CreatedAt: now,
	}); err != nil {
		log.Printf("command log error: %v", err)
	}

	if string(res.Mode) != s.lastMode {
		if err := s.store.RecordTransition(telemetry.TransitionRecord{
			From:             s.lastMode,
			To:               string(res.Mode),
			Confidence:       conf,
			ObstacleDistance: obstacle,
			CreatedAt:        now,
		}); err != nil {
			log.Printf("transition log error: %v", err)
		}
		s.lastMode = string(res.Mode)
	}

	fmt.Printf("[%s] mode=%s cmd=(%.3f, %.3f, %.3f) emergency=%v\n",
		cycleID[:8], res.Mode, res.Command[0], res.Command[1], res.Command[2], res.Emergency)
	if res.PlanComplete {
		fmt.Println("plan complete")
	}
	return nil
}

func (s *session) cmdEstop() {
	cmd := s.core.EmergencyStop(time.Now().UTC())
	s.lastMode = string(s.core.Mode())
	fmt.Printf("emergency stop: cmd=(%.3f, %.3f, %.3f) mode=%s\n", cmd[0], cmd[1], cmd[2], s.lastMode)
}

func (s *session) cmdStatus() {
	st := s.core.GetStatus()
	fmt.Printf("mode=%s latch_tripped=%v has_plan=%v cmd=(%.3f, %.3f, %.3f)\n",
		st.Mode, st.LatchTripped, st.HasPlan, st.Command[0], st.Command[1], st.Command[2])
}

func (s *session) cmdHistory() error {
	entries := s.core.CommandHistory()
	for _, e := range entries {
		flag := ""
		if e.Emergency {
			flag = " EMERGENCY"
		}
		fmt.Printf("  %s  (%.3f, %.3f, %.3f)%s\n",
			e.Timestamp.Format(time.RFC3339), e.Command[0], e.Command[1], e.Command[2], flag)
	}
	fmt.Printf("%d entries\n", len(entries))
	return nil
}

// #endregion operator-commands

// #region helpers
func newCore(variant string) (*core.Core, error) {
	switch variant {
	case "ground":
		return core.New(cost.NewGroundModel(nil, nil, false), core.DefaultGroundConfig()), nil
	case "indoor":
		return core.New(cost.NewIndoorModel(), core.DefaultIndoorConfig()), nil
	case "aerial":
		return core.New(cost.NewAerialModel(nil), core.DefaultAerialConfig()), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

func parseFloats(args []string, n int) ([]float64, error) {
	vals := make([]float64, n)
	for i := 0; i < len(args) && i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", args[i], err)
		}
		vals[i] = v
	}
	return vals, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// #endregion helpers
