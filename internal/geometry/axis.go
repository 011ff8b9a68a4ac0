package geometry

import (
	"math"

	"github.com/paulmach/orb/planar"
)

// ============================================================
// Axis projection
// ============================================================

// Axis is the infinite line through a wall, parametrised by arc length
// from Origin along the unit vector Dir.
type Axis struct {
	Origin Point
	Dir    Point
}

// AxisOf returns the axis of w. ok is false for a zero-length wall.
func AxisOf(w Wall, tol Tolerance) (Axis, bool) {
	d := w.Direction()
	l := d.Len()
	if l <= tol.eps() {
		return Axis{}, false
	}
	return Axis{Origin: w.Start, Dir: d.Scale(1 / l)}, true
}

// Project returns the scalar coordinate of p along the axis.
func (a Axis) Project(p Point) float64 {
	return p.Sub(a.Origin).Dot(a.Dir)
}

// At returns the point at coordinate s.
func (a Axis) At(s float64) Point {
	return a.Origin.Add(a.Dir.Scale(s))
}

// Offset returns the signed perpendicular distance of p from the axis.
func (a Axis) Offset(p Point) float64 {
	return a.Dir.Cross(p.Sub(a.Origin))
}

// Interval returns the sorted projection of w onto the axis.
func (a Axis) Interval(w Wall) (lo, hi float64) {
	lo, hi = a.Project(w.Start), a.Project(w.End)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// CollinearWalls reports whether a and b lie on the same infinite line.
// Merely parallel walls are not collinear. Zero-length walls are never
// collinear.
func CollinearWalls(a, b Wall, tol Tolerance) bool {
	if a.IsDegenerate(tol) || b.IsDegenerate(tol) {
		return false
	}
	a, b = canonicalPair(a, b)
	if !tol.Parallel(a.Direction(), b.Direction()) {
		return false
	}
	return tol.OnLine(b.Start, a.Start, a.End) && tol.OnLine(b.End, a.Start, a.End)
}

// ============================================================
// Distances
// ============================================================

// DistanceToSegment returns the distance from p to the segment a..b.
func DistanceToSegment(p, a, b Point) float64 {
	return planar.DistanceFromSegment(a.Orb(), b.Orb(), p.Orb())
}

// DistanceToWall returns the distance from p to the centerline of w.
func DistanceToWall(p Point, w Wall) float64 {
	return DistanceToSegment(p, w.Start, w.End)
}

// SegmentDistance returns the minimum distance between two centerlines,
// zero when they touch or cross.
func SegmentDistance(a, b Wall, tol Tolerance) float64 {
	if _, ok := Intersect(a, b, tol); ok {
		return 0
	}
	d := math.Min(DistanceToWall(a.Start, b), DistanceToWall(a.End, b))
	d = math.Min(d, DistanceToWall(b.Start, a))
	return math.Min(d, DistanceToWall(b.End, a))
}

// ClosestParam returns the clamped parametric position of the point on w
// closest to p, and that point.
func ClosestParam(p Point, w Wall) (float64, Point) {
	d := w.Direction()
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0, w.Start
	}
	t := p.Sub(w.Start).Dot(d) / l2
	t = math.Max(0, math.Min(1, t))
	return t, w.Start.Lerp(w.End, t)
}

// SharedInterval returns the 1-D interval two collinear walls have in
// common, expressed on the axis of the first wall of the canonical pair. ok
// is false when the walls are not collinear or share no more than a point.
func SharedInterval(a, b Wall, tol Tolerance) (ax Axis, lo, hi float64, ok bool) {
	if !CollinearWalls(a, b, tol) {
		return Axis{}, 0, 0, false
	}
	a, b = canonicalPair(a, b)
	ax, _ = AxisOf(a, tol)
	aLo, aHi := ax.Interval(a)
	bLo, bHi := ax.Interval(b)
	lo, hi = math.Max(aLo, bLo), math.Min(aHi, bHi)
	if hi-lo <= tol.eps() {
		return ax, lo, hi, false
	}
	return ax, lo, hi, true
}
