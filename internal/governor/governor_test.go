package governor

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Axes:            1,
		MaxAccel:        [MaxAxes]float32{0.3},
		MaxDecel:        [MaxAxes]float32{0.5},
		MinBound:        [MaxAxes]float32{0},
		MaxBound:        [MaxAxes]float32{5.0},
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

func approx(t *testing.T, got, want float32, what string) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Fatalf("%s: expected %.4f, got %.4f", what, want, got)
	}
}

func TestFirstStepEstablishesBaseline(t *testing.T) {
	g := New(testConfig())
	t0 := time.Unix(0, 0)

	// No prior timestamp: dt is zero, so no velocity change is possible.
	cmd := g.Step(Command{5.0}, t0)
	if cmd[0] != 0 {
		t.Fatalf("expected zero command on first step, got %f", cmd[0])
	}
}

func TestStepRateLimitsAcceleration(t *testing.T) {
	g := New(testConfig())
	t0 := time.Unix(0, 0)

	g.Step(Command{5.0}, t0)
	cmd := g.Step(Command{5.0}, t0.Add(time.Second))
	approx(t, cmd[0], 0.3, "after 1s at max_accel 0.3")

	cmd = g.Step(Command{5.0}, t0.Add(2*time.Second))
	approx(t, cmd[0], 0.6, "after 2s")
}

func TestStepRateLimitsDeceleration(t *testing.T) {
	config := testConfig()
	config.MaxAccel = [MaxAxes]float32{10.0}
	g := New(config)
	t0 := time.Unix(0, 0)

	g.Step(Command{2.0}, t0)
	cmd := g.Step(Command{2.0}, t0.Add(time.Second))
	approx(t, cmd[0], 2.0, "reach cruise")

	cmd = g.Step(Command{0}, t0.Add(2*time.Second))
	approx(t, cmd[0], 1.5, "braking at max_decel 0.5")
}

func TestStepSmallDeltaReachedExactly(t *testing.T) {
	g := New(testConfig())
	t0 := time.Unix(0, 0)

	g.Step(Command{0.1}, t0)
	cmd := g.Step(Command{0.1}, t0.Add(time.Second))
	approx(t, cmd[0], 0.1, "small delta not overshot")
}

func TestStepNonMonotonicTimeClampsDt(t *testing.T) {
	g := New(testConfig())
	t0 := time.Unix(100, 0)

	g.Step(Command{5.0}, t0)
	g.Step(Command{5.0}, t0.Add(time.Second))
	before := g.Current()

	// Clock went backwards: dt clamps to zero, command holds.
	cmd := g.Step(Command{5.0}, t0.Add(-10*time.Second))
	if cmd != before {
		t.Fatalf("expected command unchanged on backwards time, got %v want %v", cmd, before)
	}
}

func TestStepNeverLeavesBounds(t *testing.T) {
	config := Config{
		Axes:            3,
		MaxAccel:        [MaxAxes]float32{3.0, 3.0, 3.0},
		MaxDecel:        [MaxAxes]float32{4.0, 4.0, 4.0},
		MinBound:        [MaxAxes]float32{-5.0, -5.0, -2.0},
		MaxBound:        [MaxAxes]float32{5.0, 5.0, 2.0},
		HistoryCapacity: 10,
	}
	g := New(config)
	rng := rand.New(rand.NewSource(7))
	now := time.Unix(0, 0)

	for i := 0; i < 1000; i++ {
		var target Command
		for axis := 0; axis < 3; axis++ {
			target[axis] = (rng.Float32() - 0.5) * 40 // well outside bounds
		}
		now = now.Add(time.Duration(rng.Intn(2000)) * time.Millisecond)
		cmd := g.Step(target, now)
		for axis := 0; axis < 3; axis++ {
			if cmd[axis] < config.MinBound[axis] || cmd[axis] > config.MaxBound[axis] {
				t.Fatalf("iteration %d axis %d: %f outside [%f, %f]",
					i, axis, cmd[axis], config.MinBound[axis], config.MaxBound[axis])
			}
		}
	}
}

func TestInactiveAxesStayZero(t *testing.T) {
	g := New(testConfig()) // 1 axis
	t0 := time.Unix(0, 0)
	g.Step(Command{1.0, 1.0, 1.0}, t0)
	cmd := g.Step(Command{1.0, 1.0, 1.0}, t0.Add(time.Second))
	if cmd[1] != 0 || cmd[2] != 0 {
		t.Fatalf("expected inactive axes to stay zero, got %v", cmd)
	}
}

func TestEmergencyCommandBypassesSmoothing(t *testing.T) {
	config := DefaultAerialConfig()
	g := New(config)
	t0 := time.Unix(0, 0)

	g.Step(Command{3.0, 0, 0}, t0)
	g.Step(Command{3.0, 0, 0}, t0.Add(10*time.Second))

	cmd := g.EmergencyCommand(t0.Add(11 * time.Second))
	if cmd != config.Emergency {
		t.Fatalf("expected emergency command %v, got %v", config.Emergency, cmd)
	}
	if g.Current() != config.Emergency {
		t.Fatal("expected current command to jump to the emergency command")
	}

	entries := g.History()
	last := entries[len(entries)-1]
	if !last.Emergency {
		t.Fatal("expected emergency entry flagged in history")
	}
}

func TestHoverCommand(t *testing.T) {
	g := New(DefaultAerialConfig())

	if cmd := g.HoverCommand(1.0); cmd != (Command{}) {
		t.Fatalf("expected no correction for stable hover, got %v", cmd)
	}
	cmd := g.HoverCommand(0.5)
	approx(t, cmd[2], 0.05, "hover correction")

	ground := New(DefaultGroundConfig())
	if cmd := ground.HoverCommand(0.2); cmd != (Command{}) {
		t.Fatalf("expected no hover correction on ground variant, got %v", cmd)
	}
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	config := testConfig()
	config.HistoryCapacity = 100
	g := New(config)
	t0 := time.Unix(0, 0)

	for i := 0; i <= 100; i++ {
		g.Step(Command{1.0}, t0.Add(time.Duration(i)*time.Second))
	}

	entries := g.History()
	if len(entries) != 100 {
		t.Fatalf("expected history capped at 100, got %d", len(entries))
	}
	// Entry from t0 was evicted; the snapshot starts at t0+1s.
	if !entries[0].Timestamp.Equal(t0.Add(time.Second)) {
		t.Fatalf("expected oldest entry at t0+1s, got %v", entries[0].Timestamp)
	}
	if !entries[99].Timestamp.Equal(t0.Add(100 * time.Second)) {
		t.Fatalf("expected newest entry at t0+100s, got %v", entries[99].Timestamp)
	}
}

func TestHistorySnapshotOrder(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(Entry{Timestamp: time.Unix(int64(i), 0)})
	}
	if h.Len() != 3 {
		t.Fatalf("expected len 3, got %d", h.Len())
	}
	snap := h.Snapshot()
	for i, e := range snap {
		want := time.Unix(int64(i+2), 0)
		if !e.Timestamp.Equal(want) {
			t.Fatalf("entry %d: expected %v, got %v", i, want, e.Timestamp)
		}
	}
}
