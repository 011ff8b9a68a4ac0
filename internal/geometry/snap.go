package geometry

// ============================================================
// Snap points
// ============================================================

// SnapPoints returns the deduplicated snap candidates for the drawing tool:
// wall endpoints, optionally midpoints, then Cross and TJunction
// intersection points. Points within epsilon collapse onto the first one
// seen.
func SnapPoints(walls []Wall, includeMidpoints bool, tol Tolerance) []Point {
	var raw []Point
	for _, w := range walls {
		raw = append(raw, w.Start, w.End)
	}
	if includeMidpoints {
		for _, w := range walls {
			if !w.IsDegenerate(tol) {
				raw = append(raw, w.Midpoint())
			}
		}
	}

	forEachPair(walls, tol, func(a, b Wall) {
		p, ok := Intersect(a, b, tol)
		if !ok {
			return
		}
		ix := Intersection{Point: p, WallAID: a.ID, WallBID: b.ID}
		if Classify(ix, a, b, tol) != Corner {
			raw = append(raw, p)
		}
	})

	return Dedupe(raw, tol)
}

// Dedupe keeps the first point of every cluster of points within epsilon.
func Dedupe(points []Point, tol Tolerance) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		dup := false
		for _, q := range out {
			if tol.Coincident(p, q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// Snap returns the snap point nearest to cursor within radius. Ties go to
// the earlier point.
func Snap(cursor Point, points []Point, radius float64) (Point, bool) {
	best, bestDist, found := Point{}, 0.0, false
	for _, p := range points {
		d := cursor.Dist(p)
		if d > radius {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}
