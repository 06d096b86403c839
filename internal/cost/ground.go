package cost

import (
	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region analysis

// TerrainSegment describes one classified stretch of ground ahead.
type TerrainSegment struct {
	Type      string
	Slope     float32
	Roughness float32
	Stability float32
}

// TerrainAnalysis is the perception summary consumed by the ground model.
type TerrainAnalysis struct {
	Segments          []TerrainSegment
	OverallDifficulty float32
}

// NoGoZone is a statically declared circular exclusion region.
type NoGoZone struct {
	Name   string
	Center pose.Pose
	Radius float64
}

// #endregion analysis

// #region profile

// TerrainProfile holds tuning for one terrain class.
type TerrainProfile struct {
	Name             string  `json:"name"`
	MaxSlope         float32 `json:"max_slope"`
	Traction         float32 `json:"traction"`
	EnergyCost       float32 `json:"energy_cost"`
	RecommendedSpeed float32 `json:"recommended_speed"`
}

// DefaultTerrainProfiles returns the built-in terrain class tuning.
func DefaultTerrainProfiles() map[string]TerrainProfile {
	return map[string]TerrainProfile{
		"packed": {Name: "packed", MaxSlope: 0.5, Traction: 0.9, EnergyCost: 0.05, RecommendedSpeed: 1.0},
		"gravel": {Name: "gravel", MaxSlope: 0.4, Traction: 0.7, EnergyCost: 0.1, RecommendedSpeed: 0.7},
		"sand":   {Name: "sand", MaxSlope: 0.3, Traction: 0.5, EnergyCost: 0.2, RecommendedSpeed: 0.5},
		"rock":   {Name: "rock", MaxSlope: 0.6, Traction: 0.8, EnergyCost: 0.15, RecommendedSpeed: 0.4},
	}
}

// #endregion profile

// #region ground-model

// GroundModel scores segments for the rover variant from terrain structure.
// It is pure: profiles and zones are fixed at construction.
type GroundModel struct {
	profiles        map[string]TerrainProfile
	noGoZones       []NoGoZone
	energyEfficient bool
}

// NewGroundModel creates a ground cost model. profiles may be nil, in which
// case the built-in defaults apply.
func NewGroundModel(profiles map[string]TerrainProfile, noGoZones []NoGoZone, energyEfficient bool) *GroundModel {
	if profiles == nil {
		profiles = DefaultTerrainProfiles()
	}
	return &GroundModel{
		profiles:        profiles,
		noGoZones:       noGoZones,
		energyEfficient: energyEfficient,
	}
}

// SegmentCost accumulates terrain class energy over the analysis and takes
// the worst per-class risk. Unknown terrain classes contribute the default
// 0.0 energy premium.
func (m *GroundModel) SegmentCost(start, end pose.Pose, analysis any) SegmentCost {
	ta, ok := analysis.(*TerrainAnalysis)
	if !ok || ta == nil {
		return DefaultCost(start, end)
	}

	c := DefaultCost(start, end)
	for _, seg := range ta.Segments {
		profile, known := m.profiles[seg.Type]
		if !known {
			continue
		}
		energy := profile.EnergyCost
		if m.energyEfficient {
			energy *= 0.8
		}
		c.Energy += energy

		risk := terrainRisk(seg, profile)
		if risk > c.Risk {
			c.Risk = risk
		}
	}

	// Terrain risk is the ground variant's soft constraint.
	c.DomainPenalty = c.Risk
	return c.Sanitize()
}

// RestrictedTarget checks the goal against declared no-go zones.
func (m *GroundModel) RestrictedTarget(goal pose.Pose, analysis any) (bool, string) {
	for _, zone := range m.noGoZones {
		if pose.PlanarDistance(goal, zone.Center) < zone.Radius {
			return true, zone.Name
		}
	}
	return false, ""
}

// terrainRisk scores one terrain segment against its profile limits.
func terrainRisk(seg TerrainSegment, profile TerrainProfile) float32 {
	var risk float32
	if seg.Slope > profile.MaxSlope*0.7 {
		risk += 0.3
	}
	if seg.Roughness > 0.6 {
		risk += 0.2
	}
	if seg.Stability < 0.4 {
		risk += 0.5
	}
	return Clamp01(risk)
}

// #endregion ground-model
