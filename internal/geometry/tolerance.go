package geometry

import "math"

// DefaultEpsilon is used when a Tolerance is left at its zero value.
const DefaultEpsilon = 1e-6

// Tolerance carries the epsilon shared by every geometric predicate:
// parallel tests, collinearity tests and point coincidence.
type Tolerance struct {
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
}

func DefaultTolerance() Tolerance {
	return Tolerance{Epsilon: DefaultEpsilon}
}

func (t Tolerance) eps() float64 {
	if t.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return t.Epsilon
}

// Eps returns the effective epsilon.
func (t Tolerance) Eps() float64 {
	return t.eps()
}

func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) <= t.eps()
}

func (t Tolerance) Zero(v float64) bool {
	return math.Abs(v) <= t.eps()
}

// Coincident reports whether p and q are within epsilon of each other.
func (t Tolerance) Coincident(p, q Point) bool {
	return p.Dist(q) <= t.eps()
}

// Parallel reports whether two direction vectors are parallel. The test is
// scale-free: it compares the sine of the angle between them to epsilon.
// A zero-length direction counts as parallel to everything.
func (t Tolerance) Parallel(dA, dB Point) bool {
	la, lb := dA.Len(), dB.Len()
	if la <= t.eps() || lb <= t.eps() {
		return true
	}
	return math.Abs(dA.Cross(dB))/(la*lb) <= t.eps()
}

// OnLine reports whether p lies on the infinite line through a and b.
func (t Tolerance) OnLine(p, a, b Point) bool {
	d := b.Sub(a)
	l := d.Len()
	if l <= t.eps() {
		return t.Coincident(p, a)
	}
	return math.Abs(d.Cross(p.Sub(a)))/l <= t.eps()
}
