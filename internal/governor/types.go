package governor

import "time"

// #region command

// MaxAxes is the command arity; inactive axes stay zero.
const MaxAxes = 3

// Command is a fixed-arity per-axis velocity vector. Ground variants use
// axis 0 (forward), aerial variants all three (forward, lateral, vertical).
type Command [MaxAxes]float32

// #endregion command

// #region config

// DefaultHistoryCapacity bounds the command history ring buffer.
const DefaultHistoryCapacity = 100

// Config holds per-axis motion limits. Braking (MaxDecel) is typically
// faster than acceleration.
type Config struct {
	Axes            int
	MaxAccel        [MaxAxes]float32
	MaxDecel        [MaxAxes]float32
	MinBound        [MaxAxes]float32
	MaxBound        [MaxAxes]float32
	Emergency       Command // fixed stop/descent command
	HistoryCapacity int
}

// DefaultGroundConfig returns rover motion limits: forward axis only,
// no reverse.
func DefaultGroundConfig() Config {
	return Config{
		Axes:            1,
		MaxAccel:        [MaxAxes]float32{0.5},
		MaxDecel:        [MaxAxes]float32{0.7},
		MinBound:        [MaxAxes]float32{0},
		MaxBound:        [MaxAxes]float32{2.0},
		Emergency:       Command{},
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

// DefaultIndoorConfig returns indoor motion limits: gentler acceleration
// and a walking-pace cap.
func DefaultIndoorConfig() Config {
	return Config{
		Axes:            1,
		MaxAccel:        [MaxAxes]float32{0.2},
		MaxDecel:        [MaxAxes]float32{0.3},
		MinBound:        [MaxAxes]float32{0},
		MaxBound:        [MaxAxes]float32{1.0},
		Emergency:       Command{},
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

// DefaultAerialConfig returns drone motion limits with a bounded safe
// descent as the emergency command.
func DefaultAerialConfig() Config {
	return Config{
		Axes:            3,
		MaxAccel:        [MaxAxes]float32{0.3, 0.3, 0.3},
		MaxDecel:        [MaxAxes]float32{0.4, 0.4, 0.4},
		MinBound:        [MaxAxes]float32{-5.0, -5.0, -2.0},
		MaxBound:        [MaxAxes]float32{5.0, 5.0, 2.0},
		Emergency:       Command{0, 0, -0.3},
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

// #endregion config

// #region history

// Entry is one recorded command with its cycle timestamp.
type Entry struct {
	Command   Command
	Timestamp time.Time
	Emergency bool
}

// History is a bounded ring buffer of commands. Oldest entries are evicted
// on overflow. Diagnostics only; never consulted for control decisions.
type History struct {
	entries []Entry
	next    int
	count   int
}

// NewHistory creates a ring buffer with the given fixed capacity.
func NewHistory(capacity int) *History {
	return &History{entries: make([]Entry, capacity)}
}

// Append records an entry, evicting the oldest when full.
func (h *History) Append(e Entry) {
	h.entries[h.next] = e
	h.next = (h.next + 1) % len(h.entries)
	if h.count < len(h.entries) {
		h.count++
	}
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return h.count
}

// Snapshot returns a copy of the entries in insertion order, oldest first.
func (h *History) Snapshot() []Entry {
	out := make([]Entry, h.count)
	start := h.next - h.count
	if start < 0 {
		start += len(h.entries)
	}
	for i := 0; i < h.count; i++ {
		out[i] = h.entries[(start+i)%len(h.entries)]
	}
	return out
}

// #endregion history
