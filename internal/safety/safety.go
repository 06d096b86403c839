package safety

import "log"

// #region monitor

// Monitor evaluates a hazard vector against configured thresholds each
// cycle and drives the latch. Tripping is automatic; clearing is only ever
// done through Reset, called by an operator or higher authority.
type Monitor struct {
	thresholds []Threshold
	latch      Latch
	breaches   []Breach
}

// NewMonitor creates a monitor with the given thresholds, latch armed.
func NewMonitor(thresholds []Threshold) *Monitor {
	return &Monitor{thresholds: thresholds, latch: NewLatch()}
}

// #endregion monitor

// #region evaluate

// Evaluate checks every configured threshold against the hazard vector
// and returns true if any reading breached. Readings absent from the
// vector are skipped. Any breach trips the latch.
func (m *Monitor) Evaluate(hazards HazardVector) bool {
	var breaches []Breach
	for _, t := range m.thresholds {
		value, ok := hazards[t.Reading]
		if !ok {
			continue
		}
		if t.Breached(value) {
			breaches = append(breaches, Breach{Reading: t.Reading, Value: value, Limit: t.Limit})
		}
	}

	if len(breaches) > 0 {
		m.breaches = breaches
		if m.latch.State() == LatchArmed {
			log.Printf("[SAFETY] latch tripped: %s=%.4f (limit %.4f)",
				breaches[0].Reading, breaches[0].Value, breaches[0].Limit)
		}
		m.latch.trip()
		return true
	}
	return false
}

// #endregion evaluate

// #region latch-access

// Tripped reports whether the latch is currently tripped.
func (m *Monitor) Tripped() bool {
	return m.latch.State() == LatchTripped
}

// Trip forces the latch tripped without a hazard reading, e.g. when an
// operator calls an emergency stop directly.
func (m *Monitor) Trip() {
	m.latch.trip()
}

// Reset re-arms the latch. This is the only way out of the tripped state.
func (m *Monitor) Reset() {
	m.latch.Reset()
	m.breaches = nil
	log.Printf("[SAFETY] latch reset")
}

// LastBreaches returns the breaches recorded by the most recent tripping
// evaluation.
func (m *Monitor) LastBreaches() []Breach {
	out := make([]Breach, len(m.breaches))
	copy(out, m.breaches)
	return out
}

// #endregion latch-access
