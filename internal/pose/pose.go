package pose

import "math"

// #region pose

// Pose is an immutable position + heading produced by localization.
// Ground robots leave Z at zero; aerial variants use all three axes.
type Pose struct {
	X       float64
	Y       float64
	Z       float64
	Heading float64 // radians
}

// #endregion pose

// #region distance

// Distance returns the Euclidean distance between two poses.
func Distance(a, b Pose) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlanarDistance returns the XY-plane distance between two poses.
func PlanarDistance(a, b Pose) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// #endregion distance

// #region segment-distance

// PointToSegmentDistance returns the XY-plane distance from p to the
// closest point on the segment [a, b]. Degenerate segments (a == b)
// reduce to point distance.
func PointToSegmentDistance(p, a, b Pose) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return PlanarDistance(p, a)
	}

	// Project p onto the segment, clamping t to [0, 1].
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cx := a.X + t*abx
	cy := a.Y + t*aby
	dx := p.X - cx
	dy := p.Y - cy
	return math.Sqrt(dx*dx + dy*dy)
}

// #endregion segment-distance
