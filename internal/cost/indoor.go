package cost

import (
	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region analysis

// Human is one detected person with an activity classification.
type Human struct {
	Position  pose.Pose
	Activity  string // "idle" | "working" | "private" | ...
	Attention float32
	GroupSize int
}

// SocialZone is a region with social usage rules.
type SocialZone struct {
	Name         string
	Center       pose.Pose
	Radius       float64
	ZoneType     string // "conversation" | "work" | "relaxation" | "private"
	PrivacyLevel float32
}

// IndoorAnalysis is the perception summary consumed by the indoor model.
type IndoorAnalysis struct {
	FloorType       string
	ObstacleDensity float32
	LightingLevel   float32
	Humans          []Human
	Zones           []SocialZone
}

// #endregion analysis

// #region thresholds

// Social proximity bands, in meters. Inside socialRadius a segment starts
// accruing social impact; inside privacyRadius it accrues privacy
// violation when the human's activity is private.
const (
	socialRadius  = 2.0
	privacyRadius = 1.5
)

// #endregion thresholds

// #region indoor-model

// IndoorModel scores segments for the indoor variant from human presence
// and floor structure. Floor classes not in the table contribute the
// default 0.0 energy premium.
type IndoorModel struct {
	floorPenalty map[string]float32
}

// NewIndoorModel creates an indoor cost model with the built-in floor table.
func NewIndoorModel() *IndoorModel {
	return &IndoorModel{
		floorPenalty: map[string]float32{
			"carpet": 0.2,
			"tile":   0.0,
			"wood":   0.1,
			"rug":    0.3,
		},
	}
}

// SegmentCost combines floor energy with social impact and privacy
// violation. Human distances use true point-to-segment distance.
func (m *IndoorModel) SegmentCost(start, end pose.Pose, analysis any) SegmentCost {
	ia, ok := analysis.(*IndoorAnalysis)
	if !ok || ia == nil {
		return DefaultCost(start, end)
	}

	c := DefaultCost(start, end)
	c.Energy += m.floorPenalty[ia.FloorType]
	c.Risk = Clamp01(ia.ObstacleDensity)

	var social, privacy float32
	for _, h := range ia.Humans {
		d := pose.PointToSegmentDistance(h.Position, start, end)
		if d < socialRadius {
			social += float32(socialRadius-d) * 0.5
		}
		if h.Activity == "private" && d < privacyRadius {
			privacy += float32(privacyRadius-d) * 0.7
		}
	}
	social = Clamp01(social)
	privacy = Clamp01(privacy)

	// Privacy violations dominate social discomfort.
	c.DomainPenalty = social
	if privacy > c.DomainPenalty {
		c.DomainPenalty = privacy
	}
	return c.Sanitize()
}

// RestrictedTarget rejects goals inside an occupied private zone.
func (m *IndoorModel) RestrictedTarget(goal pose.Pose, analysis any) (bool, string) {
	ia, ok := analysis.(*IndoorAnalysis)
	if !ok || ia == nil {
		return false, ""
	}
	for _, zone := range ia.Zones {
		if zone.ZoneType != "private" || zone.PrivacyLevel <= 0.7 {
			continue
		}
		if pose.PlanarDistance(goal, zone.Center) >= zone.Radius {
			continue
		}
		for _, h := range ia.Humans {
			if pose.PlanarDistance(h.Position, zone.Center) < zone.Radius {
				return true, zone.Name
			}
		}
	}
	return false, ""
}

// #endregion indoor-model
