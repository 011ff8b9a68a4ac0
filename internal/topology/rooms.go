package topology

import (
	"fmt"
	"math"
	"sort"

	"planner/internal/geometry"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ============================================================
// Rooms
// ============================================================

// Room is a bounded face of the wall graph. Vertices and Polygon run
// counter-clockwise and describe the outer boundary. Islands lists the
// rooms of separate wall groups standing directly inside this one; Area
// and Centroid exclude them.
type Room struct {
	ID       string           `json:"id"`
	Vertices []string         `json:"vertices"`
	Polygon  []geometry.Point `json:"polygon"`
	Area     float64          `json:"area"`
	Centroid geometry.Point   `json:"centroid"`
	Islands  []string         `json:"islands,omitempty"`
}

// face is a traced room before islands are subtracted.
type face struct {
	ring   orb.Ring
	group  int
	sample orb.Point
	area   float64
	center orb.Point
}

// Rooms returns the enclosed areas of the graph, numbered r1, r2, ... in
// discovery order. Dangling walls never bound a room.
func (g *Graph) Rooms() []Room {
	adj := g.prunedAdjacency()

	// Neighbours of every vertex sorted counter-clockwise by angle.
	order := make([][]int, len(g.Vertices))
	for v, ns := range adj {
		list := make([]int, 0, len(ns))
		for n := range ns {
			list = append(list, n)
		}
		origin := g.Vertices[v].Position
		sort.Slice(list, func(i, j int) bool {
			ai, aj := g.angle(origin, list[i]), g.angle(origin, list[j])
			if ai != aj {
				return ai < aj
			}
			return list[i] < list[j]
		})
		order[v] = list
	}

	visited := make(map[[2]int]bool)
	groups := g.groups()
	rooms := []Room{}
	faces := []face{}
	for u := range g.Vertices {
		for _, v := range order[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			cycle := g.traceFace(u, v, order, visited)
			if room, f, ok := g.room(cycle, len(rooms)+1); ok {
				f.group = groups[cycle[0]]
				rooms = append(rooms, room)
				faces = append(faces, f)
			}
		}
	}
	subtractIslands(rooms, faces)
	return rooms
}

// subtractIslands removes from every room the rooms of other wall groups
// that stand directly inside it. A room nested two levels deep belongs to
// the island around it, not to the outer room.
func subtractIslands(rooms []Room, faces []face) {
	inside := func(inner, outer int) bool {
		return faces[inner].group != faces[outer].group &&
			planar.RingContains(faces[outer].ring, faces[inner].sample)
	}

	for r := range rooms {
		area := faces[r].area
		mx := faces[r].center.X() * area
		my := faces[r].center.Y() * area
		for s := range rooms {
			if s == r || !inside(s, r) {
				continue
			}
			direct := true
			for t := range rooms {
				if t != r && t != s && inside(t, r) && inside(s, t) {
					direct = false
					break
				}
			}
			if !direct {
				continue
			}
			rooms[r].Islands = append(rooms[r].Islands, rooms[s].ID)
			area -= faces[s].area
			mx -= faces[s].center.X() * faces[s].area
			my -= faces[s].center.Y() * faces[s].area
		}
		if len(rooms[r].Islands) > 0 && area > 0 {
			rooms[r].Area = area
			rooms[r].Centroid = geometry.Pt(mx/area, my/area)
		}
	}
}

// traceFace walks half-edges starting with u->v, always taking the
// neighbour immediately clockwise from the edge it arrived on. Bounded
// faces come out counter-clockwise.
func (g *Graph) traceFace(u, v int, order [][]int, visited map[[2]int]bool) []int {
	var cycle []int
	a, b := u, v
	for steps := 0; steps <= 2*len(g.Edges); steps++ {
		visited[[2]int{a, b}] = true
		cycle = append(cycle, a)

		ns := order[b]
		i := indexOf(ns, a)
		c := ns[(i-1+len(ns))%len(ns)]
		a, b = b, c
		if a == u && b == v {
			break
		}
	}
	return cycle
}

func (g *Graph) room(cycle []int, n int) (Room, face, bool) {
	if len(cycle) < 3 {
		return Room{}, face{}, false
	}
	polygon := make([]geometry.Point, len(cycle))
	ids := make([]string, len(cycle))
	for i, v := range cycle {
		polygon[i] = g.Vertices[v].Position
		ids[i] = g.Vertices[v].ID
	}

	ring := geometry.Ring(polygon)
	if ring.Orientation() != orb.CCW {
		return Room{}, face{}, false
	}
	centroid, area := planar.CentroidArea(ring)
	area = math.Abs(area)
	if area <= g.tol.Eps() {
		return Room{}, face{}, false
	}
	room := Room{
		ID:       fmt.Sprintf("r%d", n),
		Vertices: ids,
		Polygon:  polygon,
		Area:     area,
		Centroid: geometry.FromOrb(centroid),
	}
	return room, face{ring: ring, sample: ring[0], area: area, center: centroid}, true
}

// groups labels every vertex with the smallest vertex index of its
// connected wall group.
func (g *Graph) groups() []int {
	parent := make([]int, len(g.Vertices))
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
	for _, e := range g.Edges {
		a, b := find(g.vertex[e.Vertices[0]]), find(g.vertex[e.Vertices[1]])
		if a < b {
			parent[b] = a
		} else if b < a {
			parent[a] = b
		}
	}
	out := make([]int, len(parent))
	for i := range parent {
		out[i] = find(i)
	}
	return out
}

// prunedAdjacency returns the vertex adjacency with dangling chains
// repeatedly stripped.
func (g *Graph) prunedAdjacency() []map[int]bool {
	adj := make([]map[int]bool, len(g.Vertices))
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for _, e := range g.Edges {
		a, b := g.vertex[e.Vertices[0]], g.vertex[e.Vertices[1]]
		adj[a][b] = true
		adj[b][a] = true
	}

	var queue []int
	for v, ns := range adj {
		if len(ns) == 1 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for n := range adj[v] {
			delete(adj[n], v)
			delete(adj[v], n)
			if len(adj[n]) == 1 {
				queue = append(queue, n)
			}
		}
	}
	return adj
}

func (g *Graph) angle(origin geometry.Point, to int) float64 {
	d := g.Vertices[to].Position.Sub(origin)
	return math.Atan2(d.Y, d.X)
}

func indexOf(list []int, v int) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}
