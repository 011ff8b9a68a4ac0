package geometry

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// ============================================================
// Spatial index
// ============================================================

// Index is an R-tree over wall bounds used as a broad phase. It never
// changes results, only how many exact tests are run.
type Index struct {
	tree  *rtreego.Rtree
	walls []Wall
	rects []rtreego.Rect
	tol   Tolerance
}

type indexedWall struct {
	pos  int
	rect rtreego.Rect
}

func (w *indexedWall) Bounds() rtreego.Rect {
	return w.rect
}

func NewIndex(walls []Wall, tol Tolerance) *Index {
	rects := make([]rtreego.Rect, len(walls))
	items := make([]rtreego.Spatial, len(walls))
	for i, w := range walls {
		rects[i] = boundRect(w.Bounds(), tol.eps())
		items[i] = &indexedWall{pos: i, rect: rects[i]}
	}
	return &Index{
		tree:  rtreego.NewTree(2, 25, 50, items...),
		walls: walls,
		rects: rects,
		tol:   tol,
	}
}

// Candidates returns, in ascending order, the positions of walls whose
// padded bounds overlap those of wall i, excluding i.
func (x *Index) Candidates(i int) []int {
	return x.search(x.rects[i], i)
}

// Near returns, in ascending order, the positions of walls whose centerline
// lies within radius of p.
func (x *Index) Near(p Point, radius float64) []int {
	b := orb.Bound{Min: p.Orb(), Max: p.Orb()}
	var out []int
	for _, pos := range x.search(boundRect(b, math.Max(radius, 0)+x.tol.eps()), -1) {
		if DistanceToWall(p, x.walls[pos]) <= radius {
			out = append(out, pos)
		}
	}
	return out
}

func (x *Index) search(r rtreego.Rect, skip int) []int {
	found := x.tree.SearchIntersect(r)
	out := make([]int, 0, len(found))
	for _, s := range found {
		pos := s.(*indexedWall).pos
		if pos != skip {
			out = append(out, pos)
		}
	}
	sort.Ints(out)
	return out
}

// boundRect converts a bound to an R-tree rectangle padded on every side.
// rtreego rejects zero extents, so pad must be positive.
func boundRect(b orb.Bound, pad float64) rtreego.Rect {
	b = b.Pad(pad)
	lengths := []float64{
		math.Max(b.Max.X()-b.Min.X(), DefaultEpsilon),
		math.Max(b.Max.Y()-b.Min.Y(), DefaultEpsilon),
	}
	r, _ := rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, lengths)
	return r
}
