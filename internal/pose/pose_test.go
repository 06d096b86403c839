package pose

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Pose{X: 0, Y: 0}
	b := Pose{X: 3, Y: 4}
	if d := Distance(a, b); d != 5.0 {
		t.Fatalf("expected distance 5, got %f", d)
	}
}

func TestDistanceUsesZ(t *testing.T) {
	a := Pose{X: 0, Y: 0, Z: 0}
	b := Pose{X: 0, Y: 0, Z: 2}
	if d := Distance(a, b); d != 2.0 {
		t.Fatalf("expected distance 2, got %f", d)
	}
}

func TestPlanarDistanceIgnoresZ(t *testing.T) {
	a := Pose{X: 0, Y: 0, Z: 0}
	b := Pose{X: 3, Y: 4, Z: 10}
	if d := PlanarDistance(a, b); d != 5.0 {
		t.Fatalf("expected planar distance 5, got %f", d)
	}
}

func TestPointToSegmentDistancePerpendicular(t *testing.T) {
	p := Pose{X: 0, Y: 1}
	a := Pose{X: -1, Y: 0}
	b := Pose{X: 1, Y: 0}
	if d := PointToSegmentDistance(p, a, b); d != 1.0 {
		t.Fatalf("expected distance 1, got %f", d)
	}
}

func TestPointToSegmentDistanceBeyondEnd(t *testing.T) {
	// Projection falls past b; distance is to the endpoint, not the line.
	p := Pose{X: 2, Y: 0}
	a := Pose{X: 0, Y: 0}
	b := Pose{X: 1, Y: 0}
	if d := PointToSegmentDistance(p, a, b); d != 1.0 {
		t.Fatalf("expected distance 1, got %f", d)
	}
}

func TestPointToSegmentDistanceBeforeStart(t *testing.T) {
	p := Pose{X: -3, Y: 4}
	a := Pose{X: 0, Y: 0}
	b := Pose{X: 10, Y: 0}
	if d := PointToSegmentDistance(p, a, b); d != 5.0 {
		t.Fatalf("expected distance 5, got %f", d)
	}
}

func TestPointToSegmentDistanceDegenerate(t *testing.T) {
	p := Pose{X: 1, Y: 1}
	a := Pose{X: 0, Y: 0}
	if d := PointToSegmentDistance(p, a, a); math.Abs(d-math.Sqrt2) > 1e-9 {
		t.Fatalf("expected sqrt(2), got %f", d)
	}
}
