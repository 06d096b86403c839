package cost

import (
	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region analysis

// WindConditions summarizes current wind for energy costing.
type WindConditions struct {
	Speed     float32 // m/s
	Direction float32 // degrees
}

// AirspaceRule is an altitude band with access restrictions.
type AirspaceRule struct {
	Name        string  `json:"name"`
	MinAltitude float32 `json:"min_altitude"`
	MaxAltitude float32 `json:"max_altitude"`
	Restricted  bool    `json:"restricted"`
}

// AirspaceAnalysis is the perception summary consumed by the aerial model.
type AirspaceAnalysis struct {
	ObstacleDensity float32
	TurbulenceLevel float32
	AirspaceClass   string
	Wind            WindConditions
}

// #endregion analysis

// #region aerial-model

// AerialModel scores segments for the drone variant from airspace
// structure and wind. Rules are fixed at construction.
type AerialModel struct {
	rules []AirspaceRule
}

// NewAerialModel creates an aerial cost model with the given airspace rules.
func NewAerialModel(rules []AirspaceRule) *AerialModel {
	return &AerialModel{rules: rules}
}

// SegmentCost combines distance energy with a wind premium; turbulence is
// the aerial variant's soft constraint.
func (m *AerialModel) SegmentCost(start, end pose.Pose, analysis any) SegmentCost {
	aa, ok := analysis.(*AirspaceAnalysis)
	if !ok || aa == nil {
		return DefaultCost(start, end)
	}

	c := DefaultCost(start, end)
	c.Energy += aa.Wind.Speed * 0.05
	c.Risk = Clamp01(aa.ObstacleDensity)
	c.DomainPenalty = Clamp01(aa.TurbulenceLevel)
	return c.Sanitize()
}

// RestrictedTarget rejects goals whose altitude falls inside a restricted band.
func (m *AerialModel) RestrictedTarget(goal pose.Pose, analysis any) (bool, string) {
	alt := float32(goal.Z)
	for _, rule := range m.rules {
		if rule.Restricted && alt > rule.MinAltitude && alt < rule.MaxAltitude {
			return true, rule.Name
		}
	}
	return false, ""
}

// #endregion aerial-model
