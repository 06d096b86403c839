package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eos-robotics/motion-core/internal/cost"
	"github.com/eos-robotics/motion-core/internal/pose"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay run: one planned
// route plus a sequence of recorded control cycles.
type Fixture struct {
	Description string `json:"description"`
	Variant     string `json:"variant"` // "ground" | "indoor" | "aerial"

	Start       FixturePose `json:"start"`
	Goal        FixturePose `json:"goal"`
	EnergyLevel float32     `json:"energy_level"`

	// Exactly one analysis matching the variant should be set.
	Terrain  *FixtureTerrain  `json:"terrain,omitempty"`
	Indoor   *FixtureIndoor   `json:"indoor,omitempty"`
	Airspace *FixtureAirspace `json:"airspace,omitempty"`

	Cycles   []FixtureCycle   `json:"cycles"`
	Expected []ExpectedResult `json:"expected_results,omitempty"`
}

// FixturePose is a JSON-serializable pose.
type FixturePose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Heading float64 `json:"heading"`
}

// FixtureTerrain mirrors cost.TerrainAnalysis with JSON tags.
type FixtureTerrain struct {
	Segments []FixtureTerrainSegment `json:"segments"`
}

// FixtureTerrainSegment mirrors cost.TerrainSegment with JSON tags.
type FixtureTerrainSegment struct {
	Type      string  `json:"type"`
	Slope     float32 `json:"slope"`
	Roughness float32 `json:"roughness"`
	Stability float32 `json:"stability"`
}

// FixtureIndoor mirrors cost.IndoorAnalysis with JSON tags.
type FixtureIndoor struct {
	FloorType       string              `json:"floor_type"`
	ObstacleDensity float32             `json:"obstacle_density"`
	LightingLevel   float32             `json:"lighting_level"`
	Humans          []FixtureHuman      `json:"humans,omitempty"`
	Zones           []FixtureSocialZone `json:"zones,omitempty"`
}

// FixtureHuman mirrors cost.Human with JSON tags.
type FixtureHuman struct {
	Position  FixturePose `json:"position"`
	Activity  string      `json:"activity"`
	Attention float32     `json:"attention"`
	GroupSize int         `json:"group_size"`
}

// FixtureSocialZone mirrors cost.SocialZone with JSON tags.
type FixtureSocialZone struct {
	Name         string      `json:"name"`
	Center       FixturePose `json:"center"`
	Radius       float64     `json:"radius"`
	ZoneType     string      `json:"zone_type"`
	PrivacyLevel float32     `json:"privacy_level"`
}

// FixtureAirspace mirrors cost.AirspaceAnalysis with JSON tags.
type FixtureAirspace struct {
	ObstacleDensity float32 `json:"obstacle_density"`
	TurbulenceLevel float32 `json:"turbulence_level"`
	WindSpeed       float32 `json:"wind_speed"`
	WindDirection   float32 `json:"wind_direction"`
}

// FixtureCycle is one recorded control cycle.
type FixtureCycle struct {
	CycleID          string             `json:"cycle_id"`
	Pose             FixturePose        `json:"pose"`
	Confidence       float64            `json:"confidence"`
	ObstacleDistance float64            `json:"obstacle_distance"`
	Hazards          map[string]float32 `json:"hazards"`
	EnergyLevel      float32            `json:"energy_level"`
	DtMillis         int64              `json:"dt_ms"`
}

// ExpectedResult captures the expected action per cycle.
type ExpectedResult struct {
	CycleID string `json:"cycle_id"`
	Action  string `json:"action"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToPose converts a FixturePose to a domain pose.
func (p FixturePose) ToPose() pose.Pose {
	return pose.Pose{X: p.X, Y: p.Y, Z: p.Z, Heading: p.Heading}
}

// Analysis returns the environment analysis matching the fixture variant.
func (f *Fixture) Analysis() any {
	switch {
	case f.Terrain != nil:
		segs := make([]cost.TerrainSegment, len(f.Terrain.Segments))
		for i, s := range f.Terrain.Segments {
			segs[i] = cost.TerrainSegment{
				Type:      s.Type,
				Slope:     s.Slope,
				Roughness: s.Roughness,
				Stability: s.Stability,
			}
		}
		return &cost.TerrainAnalysis{Segments: segs}
	case f.Indoor != nil:
		humans := make([]cost.Human, len(f.Indoor.Humans))
		for i, h := range f.Indoor.Humans {
			humans[i] = cost.Human{
				Position:  h.Position.ToPose(),
				Activity:  h.Activity,
				Attention: h.Attention,
				GroupSize: h.GroupSize,
			}
		}
		zones := make([]cost.SocialZone, len(f.Indoor.Zones))
		for i, z := range f.Indoor.Zones {
			zones[i] = cost.SocialZone{
				Name:         z.Name,
				Center:       z.Center.ToPose(),
				Radius:       z.Radius,
				ZoneType:     z.ZoneType,
				PrivacyLevel: z.PrivacyLevel,
			}
		}
		return &cost.IndoorAnalysis{
			FloorType:       f.Indoor.FloorType,
			ObstacleDensity: f.Indoor.ObstacleDensity,
			LightingLevel:   f.Indoor.LightingLevel,
			Humans:          humans,
			Zones:           zones,
		}
	case f.Airspace != nil:
		return &cost.AirspaceAnalysis{
			ObstacleDensity: f.Airspace.ObstacleDensity,
			TurbulenceLevel: f.Airspace.TurbulenceLevel,
			Wind: cost.WindConditions{
				Speed:     f.Airspace.WindSpeed,
				Direction: f.Airspace.WindDirection,
			},
		}
	}
	return nil
}

// #endregion fixture-loader
