package editor

import (
	"errors"
	"math"

	"planner/internal/geometry"

	"github.com/google/uuid"
)

// ============================================================
// Errors
// ============================================================

var (
	ErrCannotSplitAtEndpoint = errors.New("cannot split wall at its endpoint")
	ErrPointNotOnWall        = errors.New("point is not on the wall")
	ErrZeroLengthWall        = errors.New("wall has zero length")
	ErrNotCollinear          = errors.New("walls are not collinear")
	ErrMaterialMismatch      = errors.New("walls have different materials")
	ErrNotContiguous         = errors.New("walls do not touch or overlap")
	ErrTooFarApart           = errors.New("walls are too far apart to join")
	ErrWallsDoNotIntersect   = errors.New("walls do not intersect")
	ErrWallsAreParallel      = errors.New("walls are parallel")
)

// Warning is a non-fatal remark attached to a successful join.
type Warning string

const (
	WarnThicknessMismatch Warning = "ThicknessMismatch"
	WarnHeightMismatch    Warning = "HeightMismatch"
)

// ============================================================
// Editor
// ============================================================

const DefaultMaxJoinDistance = 50.0

// Editor produces new wall values from existing ones. It never mutates its
// inputs and holds no plan state.
type Editor struct {
	tol                geometry.Tolerance
	newID              func() string
	maxJoinDistance    float64
	thicknessTolerance float64
}

type Option func(*Editor)

// WithIDGenerator overrides the ID source for split and merge results.
func WithIDGenerator(f func() string) Option {
	return func(e *Editor) {
		if f != nil {
			e.newID = f
		}
	}
}

// WithMaxJoinDistance sets how far an endpoint may be moved by Join.
func WithMaxJoinDistance(d float64) Option {
	return func(e *Editor) {
		if d > 0 {
			e.maxJoinDistance = d
		}
	}
}

// WithThicknessTolerance sets the thickness difference Join tolerates
// without a warning.
func WithThicknessTolerance(d float64) Option {
	return func(e *Editor) {
		if d >= 0 {
			e.thicknessTolerance = d
		}
	}
}

func New(tol geometry.Tolerance, opts ...Option) *Editor {
	e := &Editor{
		tol:                tol,
		newID:              uuid.NewString,
		maxJoinDistance:    DefaultMaxJoinDistance,
		thicknessTolerance: tol.Eps(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ============================================================
// Split
// ============================================================

// SplitAt cuts w in two at p. Both halves keep every non-geometric field
// of w, get fresh IDs and meet exactly at p.
func (e *Editor) SplitAt(w geometry.Wall, p geometry.Point) (geometry.Wall, geometry.Wall, error) {
	ax, ok := geometry.AxisOf(w, e.tol)
	if !ok {
		return geometry.Wall{}, geometry.Wall{}, ErrZeroLengthWall
	}
	if e.tol.Coincident(p, w.Start) || e.tol.Coincident(p, w.End) {
		return geometry.Wall{}, geometry.Wall{}, ErrCannotSplitAtEndpoint
	}
	if !e.tol.Zero(ax.Offset(p)) {
		return geometry.Wall{}, geometry.Wall{}, ErrPointNotOnWall
	}
	if s := ax.Project(p); s < 0 || s > w.Length() {
		return geometry.Wall{}, geometry.Wall{}, ErrPointNotOnWall
	}

	first, second := w, w
	first.ID, second.ID = e.newID(), e.newID()
	first.End = p
	second.Start = p
	return first, second, nil
}

// ============================================================
// Merge
// ============================================================

// Merge joins two collinear walls that touch or overlap into one wall
// spanning both. The result runs in the direction of a and takes its
// non-geometric fields from a. Merge(a, b) and Merge(b, a) cover the same
// segment.
func (e *Editor) Merge(a, b geometry.Wall) (geometry.Wall, error) {
	if a.IsDegenerate(e.tol) || b.IsDegenerate(e.tol) {
		return geometry.Wall{}, ErrZeroLengthWall
	}
	if !geometry.CollinearWalls(a, b, e.tol) {
		return geometry.Wall{}, ErrNotCollinear
	}
	if a.Material != b.Material {
		return geometry.Wall{}, ErrMaterialMismatch
	}

	ax, _ := geometry.AxisOf(a, e.tol)
	aLo, aHi := ax.Interval(a)
	bLo, bHi := ax.Interval(b)
	if math.Max(aLo, bLo)-math.Min(aHi, bHi) > e.tol.Eps() {
		return geometry.Wall{}, ErrNotContiguous
	}

	// Keep original endpoint coordinates rather than re-deriving them from
	// the axis so a split/merge round trip is exact.
	candidates := []geometry.Point{a.Start, a.End, b.Start, b.End}
	start, end := candidates[0], candidates[0]
	lo, hi := ax.Project(start), ax.Project(start)
	for _, p := range candidates[1:] {
		s := ax.Project(p)
		if s < lo-e.tol.Eps() {
			start, lo = p, s
		}
		if s > hi+e.tol.Eps() {
			end, hi = p, s
		}
	}

	merged := a
	merged.ID = e.newID()
	merged.Start = start
	merged.End = end
	return merged, nil
}

// ============================================================
// Join
// ============================================================

// JoinResult holds modified copies of both walls.
type JoinResult struct {
	A        geometry.Wall `json:"a"`
	B        geometry.Wall `json:"b"`
	Warnings []Warning     `json:"warnings"`
}

// Join moves the endpoint of each wall nearest to at onto at.
func (e *Editor) Join(a, b geometry.Wall, at geometry.Point) (JoinResult, error) {
	ja, err := e.snapNearestEndpoint(a, at)
	if err != nil {
		return JoinResult{}, err
	}
	jb, err := e.snapNearestEndpoint(b, at)
	if err != nil {
		return JoinResult{}, err
	}

	res := JoinResult{A: ja, B: jb, Warnings: []Warning{}}
	if math.Abs(a.Thickness-b.Thickness) > e.thicknessTolerance {
		res.Warnings = append(res.Warnings, WarnThicknessMismatch)
	}
	if !e.tol.Equal(a.Height, b.Height) {
		res.Warnings = append(res.Warnings, WarnHeightMismatch)
	}
	return res, nil
}

// JoinAtIntersection joins a and b at the point where their centerlines
// meet.
func (e *Editor) JoinAtIntersection(a, b geometry.Wall) (JoinResult, error) {
	h := geometry.IntersectDetail(a, b, e.tol)
	switch h.Outcome {
	case geometry.Crossing:
		return e.Join(a, b, h.Point)
	case geometry.Parallel, geometry.Collinear:
		return JoinResult{}, ErrWallsAreParallel
	default:
		return JoinResult{}, ErrWallsDoNotIntersect
	}
}

func (e *Editor) snapNearestEndpoint(w geometry.Wall, at geometry.Point) (geometry.Wall, error) {
	ds, de := w.Start.Dist(at), w.End.Dist(at)
	if math.Min(ds, de) > e.maxJoinDistance {
		return geometry.Wall{}, ErrTooFarApart
	}
	if ds <= de {
		w.Start = at
	} else {
		w.End = at
	}
	if w.IsDegenerate(e.tol) {
		return geometry.Wall{}, ErrZeroLengthWall
	}
	return w, nil
}
