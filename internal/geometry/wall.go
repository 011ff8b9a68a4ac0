package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// ============================================================
// Elements
// ============================================================

// Element is the closed set of plan elements the engine understands.
// Hosts switch on the concrete type instead of probing fields.
type Element interface {
	Bounds() orb.Bound
	Endpoints() []Point
	element()
}

// Wall is a straight partition modelled by its centerline.
type Wall struct {
	ID        string  `json:"id"`
	Start     Point   `json:"start"`
	End       Point   `json:"end"`
	Thickness float64 `json:"thickness"`
	Height    float64 `json:"height"`
	Material  string  `json:"material,omitempty"`
}

func (w Wall) element() {}

func (w Wall) Direction() Point {
	return w.End.Sub(w.Start)
}

func (w Wall) Length() float64 {
	return w.Start.Dist(w.End)
}

func (w Wall) Midpoint() Point {
	return w.Start.Mid(w.End)
}

// IsDegenerate reports a zero-length wall.
func (w Wall) IsDegenerate(tol Tolerance) bool {
	return tol.Coincident(w.Start, w.End)
}

func (w Wall) Endpoints() []Point {
	return []Point{w.Start, w.End}
}

// Bounds returns the bound of the centerline.
func (w Wall) Bounds() orb.Bound {
	return orb.Bound{Min: w.Start.Orb(), Max: w.Start.Orb()}.Extend(w.End.Orb())
}

// SameGeometry reports whether w and o cover the same segment, ignoring
// direction and non-geometric fields.
func (w Wall) SameGeometry(o Wall, tol Tolerance) bool {
	if tol.Coincident(w.Start, o.Start) && tol.Coincident(w.End, o.End) {
		return true
	}
	return tol.Coincident(w.Start, o.End) && tol.Coincident(w.End, o.Start)
}

// AngleDegrees returns the direction of the wall in [0, 360).
func (w Wall) AngleDegrees() float64 {
	d := w.Direction()
	deg := math.Atan2(d.Y, d.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Rect is a generic axis-aligned rectangular element such as a stair or a
// furniture block.
type Rect struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) element() {}

func (r Rect) Bounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.Width, r.Y + r.Height},
	}
}

// Endpoints returns the four corners counter-clockwise from (X, Y).
func (r Rect) Endpoints() []Point {
	return []Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

type OpeningKind string

const (
	Door   OpeningKind = "door"
	Window OpeningKind = "window"
)

// Opening is a door or window hosted by a wall. Offset is the parametric
// position of its center along the host wall, Start and End are resolved
// centerline points.
type Opening struct {
	ID     string      `json:"id"`
	Kind   OpeningKind `json:"kind"`
	WallID string      `json:"wallId"`
	Offset float64     `json:"offset"`
	Width  float64     `json:"width"`
	Start  Point       `json:"start"`
	End    Point       `json:"end"`
}

func (o Opening) element() {}

func (o Opening) Bounds() orb.Bound {
	return orb.Bound{Min: o.Start.Orb(), Max: o.Start.Orb()}.Extend(o.End.Orb())
}

func (o Opening) Endpoints() []Point {
	return []Point{o.Start, o.End}
}

// Extent returns the union bound of all elements.
func Extent(elements []Element) orb.Bound {
	if len(elements) == 0 {
		return orb.Bound{}
	}
	b := elements[0].Bounds()
	for _, e := range elements[1:] {
		b = b.Union(e.Bounds())
	}
	return b
}

// Elements adapts a wall slice to the element set.
func Elements(walls []Wall) []Element {
	out := make([]Element, len(walls))
	for i, w := range walls {
		out[i] = w
	}
	return out
}
