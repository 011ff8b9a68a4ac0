package geometry

// ============================================================
// Intersection detector
// ============================================================

// Outcome describes how two wall centerlines relate.
type Outcome int

const (
	// Disjoint: the lines cross outside at least one segment.
	Disjoint Outcome = iota
	// Crossing: the segments share exactly one point.
	Crossing
	// Parallel: parallel on distinct lines.
	Parallel
	// Collinear: same infinite line. Use CheckOverlap style logic for extent.
	Collinear
	// Degenerate: at least one wall has zero length.
	Degenerate
)

func (o Outcome) String() string {
	switch o {
	case Disjoint:
		return "disjoint"
	case Crossing:
		return "crossing"
	case Parallel:
		return "parallel"
	case Collinear:
		return "collinear"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Hit is the detailed result of intersecting two walls. Point is only
// meaningful when Outcome is Crossing.
type Hit struct {
	Point   Point
	Outcome Outcome
}

// Intersection is a point shared by two walls.
type Intersection struct {
	Point   Point  `json:"point"`
	WallAID string `json:"wallAId"`
	WallBID string `json:"wallBId"`
}

// Intersect returns the point where the centerlines of a and b meet.
func Intersect(a, b Wall, tol Tolerance) (Point, bool) {
	h := IntersectDetail(a, b, tol)
	return h.Point, h.Outcome == Crossing
}

// IntersectDetail solves A0 + t*dA = B0 + s*dB. The result does not depend
// on argument order.
func IntersectDetail(a, b Wall, tol Tolerance) Hit {
	if a.IsDegenerate(tol) || b.IsDegenerate(tol) {
		return Hit{Outcome: Degenerate}
	}
	a, b = canonicalPair(a, b)

	dA, dB := a.Direction(), b.Direction()
	if tol.Parallel(dA, dB) {
		if tol.OnLine(b.Start, a.Start, a.End) {
			return Hit{Outcome: Collinear}
		}
		return Hit{Outcome: Parallel}
	}

	denom := dA.Cross(dB)
	w := b.Start.Sub(a.Start)
	t := w.Cross(dB) / denom
	s := w.Cross(dA) / denom

	slackA := tol.eps() / dA.Len()
	slackB := tol.eps() / dB.Len()
	if t < -slackA || t > 1+slackA || s < -slackB || s > 1+slackB {
		return Hit{Outcome: Disjoint}
	}

	pa := a.Start.Add(dA.Scale(t))
	pb := b.Start.Add(dB.Scale(s))
	return Hit{Point: snapToEndpoints(pa.Mid(pb), a, b, tol), Outcome: Crossing}
}

// snapToEndpoints replaces p by a wall endpoint lying within epsilon of it.
func snapToEndpoints(p Point, a, b Wall, tol Tolerance) Point {
	ea, okA := nearestEndpoint(p, a, tol)
	eb, okB := nearestEndpoint(p, b, tol)
	switch {
	case okA && okB:
		return ea.Mid(eb)
	case okA:
		return ea
	case okB:
		return eb
	}
	return p
}

func nearestEndpoint(p Point, w Wall, tol Tolerance) (Point, bool) {
	ds, de := p.Dist(w.Start), p.Dist(w.End)
	if ds <= de && ds <= tol.eps() {
		return w.Start, true
	}
	if de <= tol.eps() {
		return w.End, true
	}
	return Point{}, false
}

// canonicalPair orders two walls deterministically so pairwise predicates
// are exactly symmetric.
func canonicalPair(a, b Wall) (Wall, Wall) {
	if wallLess(b, a) {
		return b, a
	}
	return a, b
}

func wallLess(a, b Wall) bool {
	if a.Start != b.Start {
		return a.Start.less(b.Start)
	}
	if a.End != b.End {
		return a.End.less(b.End)
	}
	return a.ID < b.ID
}

// IndexThreshold is the wall count above which FindAll uses the R-tree.
const IndexThreshold = 64

// FindAll returns every pairwise intersection in (i, j) order with i < j.
func FindAll(walls []Wall, tol Tolerance) []Intersection {
	out := make([]Intersection, 0)
	forEachPair(walls, tol, func(a, b Wall) {
		if p, ok := Intersect(a, b, tol); ok {
			out = append(out, Intersection{Point: p, WallAID: a.ID, WallBID: b.ID})
		}
	})
	return out
}

// EachPair visits wall index pairs (i, j) with i < j in ascending order.
// Above IndexThreshold only pairs with overlapping bounds are visited; no
// other pair can touch.
func EachPair(walls []Wall, tol Tolerance, fn func(i, j int)) {
	if len(walls) > IndexThreshold {
		idx := NewIndex(walls, tol)
		for i := range walls {
			for _, j := range idx.Candidates(i) {
				if j > i {
					fn(i, j)
				}
			}
		}
		return
	}

	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			fn(i, j)
		}
	}
}

// forEachPair is EachPair over wall values, skipping a wall paired with
// itself.
func forEachPair(walls []Wall, tol Tolerance, fn func(a, b Wall)) {
	EachPair(walls, tol, func(i, j int) {
		a, b := walls[i], walls[j]
		if a.ID != "" && a.ID == b.ID {
			return
		}
		fn(a, b)
	})
}
