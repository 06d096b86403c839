package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region planner

// Planner builds and maintains at most one path at a time (single-plan
// model). It owns no mutable cost state: every score comes from the pure
// cost model, so replanning is side-effect free.
type Planner struct {
	model   cost.Model
	config  Config
	current *Path
}

// New creates a planner over the given cost model.
func New(model cost.Model, config Config) *Planner {
	return &Planner{model: model, config: config}
}

// #endregion planner

// #region plan

// Plan builds a path from start to goal under the given analysis and
// energy budget. energyLevel is the normalized remaining energy in [0, 1].
// A returned path always satisfies both feasibility postconditions.
func (p *Planner) Plan(start, goal pose.Pose, analysis any, energyLevel float32) (Path, error) {
	if restricted, region := p.model.RestrictedTarget(goal, analysis); restricted {
		return Path{}, fmt.Errorf("%w: %s", ErrRestrictedTarget, region)
	}

	path := Path{
		PlanID:        uuid.New().String(),
		Segments:      p.generateSegments(start, goal),
		Acceptability: 1.0,
		CreatedAt:     time.Now().UTC(),
	}

	for i := range path.Segments {
		seg := &path.Segments[i]
		seg.Cost = p.model.SegmentCost(seg.Start, seg.End, analysis).Sanitize()
		path.TotalEnergy += seg.Cost.Energy
		path.Acceptability *= 1.0 - p.config.PenaltyWeight*seg.Cost.DomainPenalty
	}

	if err := p.validate(path, energyLevel); err != nil {
		return Path{}, err
	}

	p.current = &path
	return copyPath(path), nil
}

// #endregion plan

// #region replan

// ReplanForAnalysis re-scores every segment of the current plan in place
// using the new analysis, keeping the geometry, and re-validates both
// postconditions. On failure the current plan is dropped: a plan that no
// longer fits its budget must not remain active.
func (p *Planner) ReplanForAnalysis(analysis any, energyLevel float32) error {
	if p.current == nil {
		return ErrNoPlan
	}

	updated := copyPath(*p.current)
	updated.TotalEnergy = 0
	updated.Acceptability = 1.0
	for i := range updated.Segments {
		seg := &updated.Segments[i]
		seg.Cost = p.model.SegmentCost(seg.Start, seg.End, analysis).Sanitize()
		updated.TotalEnergy += seg.Cost.Energy
		updated.Acceptability *= 1.0 - p.config.PenaltyWeight*seg.Cost.DomainPenalty
	}

	if err := p.validate(updated, energyLevel); err != nil {
		p.current = nil
		return err
	}

	p.current = &updated
	return nil
}

// #endregion replan

// #region accessors

// Current returns a copy of the active plan, if any.
func (p *Planner) Current() (Path, bool) {
	if p.current == nil {
		return Path{}, false
	}
	return copyPath(*p.current), true
}

// Clear drops the active plan.
func (p *Planner) Clear() {
	p.current = nil
}

// #endregion accessors

// #region internals

// generateSegments produces the ordered candidate segments. The baseline
// is a single straight segment; when SegmentLength is set, long legs are
// subdivided into equal pieces.
func (p *Planner) generateSegments(start, goal pose.Pose) []PathSegment {
	dist := pose.Distance(start, goal)
	n := 1
	if p.config.SegmentLength > 0 && dist > p.config.SegmentLength {
		n = int(math.Ceil(dist / p.config.SegmentLength))
	}

	segments := make([]PathSegment, 0, n)
	prev := start
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		next := pose.Pose{
			X:       start.X + t*(goal.X-start.X),
			Y:       start.Y + t*(goal.Y-start.Y),
			Z:       start.Z + t*(goal.Z-start.Z),
			Heading: goal.Heading,
		}
		segments = append(segments, PathSegment{Start: prev, End: next})
		prev = next
	}
	return segments
}

// validate enforces both plan postconditions against the energy budget.
func (p *Planner) validate(path Path, energyLevel float32) error {
	budget := energyLevel * p.config.EnergyMargin
	if path.TotalEnergy > budget {
		return fmt.Errorf("%w: need %.4f, budget %.4f", ErrEnergyInfeasible, path.TotalEnergy, budget)
	}
	if path.Acceptability < p.config.AcceptabilityFloor {
		return fmt.Errorf("%w: %.4f below %.4f", ErrAcceptability, path.Acceptability, p.config.AcceptabilityFloor)
	}
	return nil
}

// copyPath deep-copies the segment slice so callers cannot mutate the
// stored plan.
func copyPath(path Path) Path {
	out := path
	out.Segments = make([]PathSegment, len(path.Segments))
	copy(out.Segments, path.Segments)
	return out
}

// #endregion internals
