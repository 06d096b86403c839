package safety

// #region hazard-vector

// Reading names shared across deployment variants. Each variant monitors
// a subset.
const (
	ReadingTilt              = "tilt"
	ReadingVibration         = "vibration"
	ReadingTurbulence        = "turbulence"
	ReadingObstacleProximity = "obstacle_proximity"
	ReadingHumanProximity    = "human_proximity"
	ReadingBatteryHealth     = "battery_health"
)

// HazardVector holds the live safety-relevant readings for one cycle.
type HazardVector map[string]float32

// #endregion hazard-vector

// #region threshold

// Threshold compares one named reading against a limit. Most readings are
// worse as they grow; obstacle proximity and battery health are worse when
// low, flagged by BreachBelow.
type Threshold struct {
	Reading     string
	Limit       float32
	BreachBelow bool
}

// Breached reports whether value crosses this threshold.
func (t Threshold) Breached(value float32) bool {
	if t.BreachBelow {
		return value < t.Limit
	}
	return value > t.Limit
}

// Breach records one threshold crossing.
type Breach struct {
	Reading string
	Value   float32
	Limit   float32
}

// #endregion threshold

// #region latch

// LatchState is one of the two latch states.
type LatchState string

const (
	LatchArmed   LatchState = "armed"
	LatchTripped LatchState = "tripped"
)

// Latch is the asymmetric safety latch: the single transition in
// (Armed -> Tripped) is guarded by hazard evaluation, the single
// transition out (Tripped -> Armed) only by an explicit Reset. It never
// self-clears.
type Latch struct {
	state LatchState
}

// NewLatch returns an armed latch.
func NewLatch() Latch {
	return Latch{state: LatchArmed}
}

// State returns the current latch state.
func (l *Latch) State() LatchState {
	return l.state
}

func (l *Latch) trip() {
	l.state = LatchTripped
}

// Reset re-arms the latch.
func (l *Latch) Reset() {
	l.state = LatchArmed
}

// #endregion latch

// #region defaults

// DefaultGroundThresholds returns rover hazard limits.
func DefaultGroundThresholds() []Threshold {
	return []Threshold{
		{Reading: ReadingTilt, Limit: 0.5},
		{Reading: ReadingVibration, Limit: 0.8},
		{Reading: ReadingObstacleProximity, Limit: 0.3, BreachBelow: true},
	}
}

// DefaultIndoorThresholds returns indoor hazard limits. Human proximity is
// a hard limit indoors.
func DefaultIndoorThresholds() []Threshold {
	return []Threshold{
		{Reading: ReadingTilt, Limit: 0.3},
		{Reading: ReadingHumanProximity, Limit: 0.8},
		{Reading: ReadingObstacleProximity, Limit: 0.3, BreachBelow: true},
	}
}

// DefaultAerialThresholds returns drone hazard limits, including battery
// health for the return leg.
func DefaultAerialThresholds() []Threshold {
	return []Threshold{
		{Reading: ReadingTilt, Limit: 0.4},
		{Reading: ReadingTurbulence, Limit: 0.7},
		{Reading: ReadingObstacleProximity, Limit: 1.0, BreachBelow: true},
		{Reading: ReadingBatteryHealth, Limit: 0.2, BreachBelow: true},
	}
}

// #endregion defaults
