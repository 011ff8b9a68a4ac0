package geometry

// ============================================================
// Connectivity
// ============================================================

// Connected reports endpoint adjacency: some endpoint of a lies within tol
// of some endpoint of b. Walls crossing mid-span are not connected.
func Connected(a, b Wall, tol float64) bool {
	_, ok := SharedPoint(a, b, tol)
	return ok
}

// SharedPoint returns the endpoint of a that touches an endpoint of b.
func SharedPoint(a, b Wall, tol float64) (Point, bool) {
	for _, p := range []Point{a.Start, a.End} {
		for _, q := range []Point{b.Start, b.End} {
			if p.Dist(q) <= tol {
				return p, true
			}
		}
	}
	return Point{}, false
}

// Chain groups walls into endpoint-connected components. Components and
// the walls inside them keep input order.
func Chain(walls []Wall, tol float64) [][]Wall {
	parent := make([]int, len(walls))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			if !Connected(walls[i], walls[j], tol) {
				continue
			}
			ri, rj := find(i), find(j)
			if ri == rj {
				continue
			}
			if ri < rj {
				parent[rj] = ri
			} else {
				parent[ri] = rj
			}
		}
	}

	group := make(map[int]int)
	var out [][]Wall
	for i, w := range walls {
		r := find(i)
		g, ok := group[r]
		if !ok {
			g = len(out)
			group[r] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], w)
	}
	return out
}
