package topology

import (
	"fmt"
	"sort"

	"planner/internal/geometry"
)

// ============================================================
// Graph
// ============================================================

type Vertex struct {
	ID       string         `json:"id"`
	Position geometry.Point `json:"position"`
	Edges    []string       `json:"edges"`
}

// Edge is a piece of a wall between two vertices. A wall cut by other
// walls yields edges "<wallID>_1", "<wallID>_2", ... in order along the wall;
// an uncut wall keeps its ID.
type Edge struct {
	ID       string        `json:"id"`
	WallID   string        `json:"wallId"`
	Vertices [2]string     `json:"vertices"`
	Wall     geometry.Wall `json:"wall"`
}

// Graph is the planar wall graph. Vertices are numbered v1, v2, ... in the
// order they are first met.
type Graph struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`

	tol    geometry.Tolerance
	vertex map[string]int
	pairs  map[[2]int]bool
}

// Build cuts every wall at the points where other walls cross it, touch it
// mid-span or end inside it, and joins the pieces at shared vertices.
// Zero-length walls are dropped.
func Build(walls []geometry.Wall, tol geometry.Tolerance) *Graph {
	g := &Graph{
		Vertices: []Vertex{},
		Edges:    []Edge{},
		tol:      tol,
		vertex:   make(map[string]int),
		pairs:    make(map[[2]int]bool),
	}

	cuts := make([][]cut, len(walls))
	geometry.EachPair(walls, tol, func(i, j int) {
		a, b := walls[i], walls[j]
		h := geometry.IntersectDetail(a, b, tol)
		switch h.Outcome {
		case geometry.Crossing:
			cuts[i] = addCut(cuts[i], a, h.Point, tol)
			cuts[j] = addCut(cuts[j], b, h.Point, tol)
		case geometry.Collinear:
			for _, p := range b.Endpoints() {
				cuts[i] = addCut(cuts[i], a, p, tol)
			}
			for _, p := range a.Endpoints() {
				cuts[j] = addCut(cuts[j], b, p, tol)
			}
		}
	})

	for i, w := range walls {
		if w.IsDegenerate(tol) {
			continue
		}
		g.addWall(w, cuts[i])
	}
	return g
}

type cut struct {
	at float64
	p  geometry.Point
}

// addCut records p as a cut of w when it lies strictly inside w.
func addCut(cuts []cut, w geometry.Wall, p geometry.Point, tol geometry.Tolerance) []cut {
	if geometry.IsEndpoint(p, w, tol) {
		return cuts
	}
	ax, ok := geometry.AxisOf(w, tol)
	if !ok || !tol.Zero(ax.Offset(p)) {
		return cuts
	}
	s := ax.Project(p)
	if s <= 0 || s >= w.Length() {
		return cuts
	}
	return append(cuts, cut{at: s, p: p})
}

func (g *Graph) addWall(w geometry.Wall, cuts []cut) {
	sort.SliceStable(cuts, func(i, j int) bool { return cuts[i].at < cuts[j].at })

	points := []geometry.Point{w.Start}
	for _, c := range cuts {
		if g.tol.Coincident(c.p, points[len(points)-1]) {
			continue
		}
		points = append(points, c.p)
	}
	if g.tol.Coincident(w.End, points[len(points)-1]) && len(points) > 1 {
		points = points[:len(points)-1]
	}
	points = append(points, w.End)

	parts := len(points) - 1
	for n := 0; n < parts; n++ {
		id := w.ID
		if parts > 1 {
			id = fmt.Sprintf("%s_%d", w.ID, n+1)
		}
		g.addEdge(id, w, points[n], points[n+1])
	}
}

func (g *Graph) addEdge(id string, w geometry.Wall, p1, p2 geometry.Point) {
	v1 := g.findOrCreateVertex(p1)
	v2 := g.findOrCreateVertex(p2)
	if v1 == v2 {
		return
	}
	key := [2]int{v1, v2}
	if v2 < v1 {
		key = [2]int{v2, v1}
	}
	// Overlapping collinear walls produce the same piece twice.
	if g.pairs[key] {
		return
	}
	g.pairs[key] = true

	piece := w
	piece.ID = id
	piece.Start = g.Vertices[v1].Position
	piece.End = g.Vertices[v2].Position

	g.Edges = append(g.Edges, Edge{
		ID:       id,
		WallID:   w.ID,
		Vertices: [2]string{g.Vertices[v1].ID, g.Vertices[v2].ID},
		Wall:     piece,
	})
	g.Vertices[v1].Edges = append(g.Vertices[v1].Edges, id)
	g.Vertices[v2].Edges = append(g.Vertices[v2].Edges, id)
}

func (g *Graph) findOrCreateVertex(p geometry.Point) int {
	for i, v := range g.Vertices {
		if g.tol.Coincident(p, v.Position) {
			return i
		}
	}
	id := fmt.Sprintf("v%d", len(g.Vertices)+1)
	g.vertex[id] = len(g.Vertices)
	g.Vertices = append(g.Vertices, Vertex{ID: id, Position: p, Edges: []string{}})
	return len(g.Vertices) - 1
}

// Vertex looks up a vertex by ID.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	i, ok := g.vertex[id]
	if !ok {
		return Vertex{}, false
	}
	return g.Vertices[i], true
}

// Walls returns the edge pieces as walls.
func (g *Graph) Walls() []geometry.Wall {
	out := make([]geometry.Wall, len(g.Edges))
	for i, e := range g.Edges {
		out[i] = e.Wall
	}
	return out
}
