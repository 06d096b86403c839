package mode

import (
	"errors"
	"fmt"
	"log"
)

// #region mode

// Mode is the robot's top-level operating state. Exactly one is active.
type Mode string

const (
	Idle       Mode = "idle"
	Navigating Mode = "navigating"
	Lost       Mode = "lost"
	Recovering Mode = "recovering"
	Mapping    Mode = "mapping"
)

// ErrInvalidMode means an operation was requested from a mode that does
// not permit it.
var ErrInvalidMode = errors.New("invalid mode")

// #endregion mode

// #region transition

// Confidence bands for the transition function.
const (
	lostConfidence      = 0.5 // below: localization is lost
	recoverConfidence   = 0.8 // above: a lost robot may start recovering
	navigateConfidence  = 0.9 // above: a recovering robot may navigate
	minObstacleDistance = 0.3 // below while navigating: back off and recover
)

// Next is the pure transition function, evaluated once per update cycle
// from pose confidence and nearest-obstacle distance. Unmatched
// conditions leave the mode unchanged.
func Next(current Mode, confidence, obstacleDistance float64) Mode {
	switch current {
	case Idle:
		if confidence < lostConfidence {
			return Lost
		}
	case Navigating:
		if confidence < lostConfidence {
			return Lost
		}
		if obstacleDistance < minObstacleDistance {
			return Recovering
		}
	case Lost:
		if confidence > recoverConfidence {
			return Recovering
		}
	case Recovering:
		if confidence > navigateConfidence {
			return Navigating
		}
	case Mapping:
		if confidence < lostConfidence {
			return Lost
		}
	}
	return current
}

// #endregion transition

// #region machine

// Machine wraps the transition function with the active mode.
type Machine struct {
	current Mode
}

// NewMachine starts in Idle.
func NewMachine() *Machine {
	return &Machine{current: Idle}
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Update applies the transition function and reports whether the mode
// changed.
func (m *Machine) Update(confidence, obstacleDistance float64) (Mode, bool) {
	next := Next(m.current, confidence, obstacleDistance)
	changed := next != m.current
	if changed {
		log.Printf("[MODE] %s -> %s (confidence=%.2f obstacle=%.2f)",
			m.current, next, confidence, obstacleDistance)
		m.current = next
	}
	return m.current, changed
}

// EmergencyOverride forces the machine to Idle from any mode.
func (m *Machine) EmergencyOverride() {
	if m.current != Idle {
		log.Printf("[MODE] %s -> %s (emergency override)", m.current, Idle)
	}
	m.current = Idle
}

// StartNavigation moves to Navigating. Accepted only from Idle or
// Recovering.
func (m *Machine) StartNavigation() error {
	if m.current != Idle && m.current != Recovering {
		return fmt.Errorf("%w: cannot start navigation from %s", ErrInvalidMode, m.current)
	}
	log.Printf("[MODE] %s -> %s (navigation start)", m.current, Navigating)
	m.current = Navigating
	return nil
}

// StartMapping moves to Mapping. Accepted only from Idle.
func (m *Machine) StartMapping() error {
	if m.current != Idle {
		return fmt.Errorf("%w: cannot start mapping from %s", ErrInvalidMode, m.current)
	}
	log.Printf("[MODE] %s -> %s (mapping start)", m.current, Mapping)
	m.current = Mapping
	return nil
}

// #endregion machine
