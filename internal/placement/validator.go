package placement

import (
	"math"

	"planner/internal/geometry"
)

// ============================================================
// Messages
// ============================================================

const (
	MsgThickness = "Wall thickness must be greater than 0"
	MsgHeight    = "Wall height must be greater than 0"
	MsgTooShort  = "Wall length is too short"
	MsgTooLong   = "Wall length is too long"
	MsgOverlap   = "Wall overlaps with existing wall"

	MsgSpacing      = "Wall is closer than minimum spacing to an existing wall"
	MsgDisconnected = "Wall is not connected to any existing wall"
)

// ============================================================
// Rules
// ============================================================

// Rules holds the placement thresholds, in plan units.
type Rules struct {
	MinLength     float64   `json:"minLength" yaml:"min_length"`
	MaxLength     float64   `json:"maxLength" yaml:"max_length"`
	MinSpacing    float64   `json:"minSpacing" yaml:"min_spacing"`
	SnapTolerance float64   `json:"snapTolerance" yaml:"snap_tolerance"`
	AllowedAngles []float64 `json:"allowedAngles" yaml:"allowed_angles"`
}

// DefaultRules returns the thresholds used by the drawing tool. Allowed
// angles are the 15 degree drafting increments; they are advisory only.
func DefaultRules() Rules {
	angles := make([]float64, 0, 24)
	for a := 0.0; a < 360; a += 15 {
		angles = append(angles, a)
	}
	return Rules{
		MinLength:     10,
		MaxLength:     10000,
		MinSpacing:    5,
		SnapTolerance: 10,
		AllowedAngles: angles,
	}
}

// ============================================================
// Results
// ============================================================

type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type OverlapResult struct {
	HasOverlap    bool    `json:"hasOverlap"`
	OverlapLength float64 `json:"overlapLength"`
}

type Constraints struct {
	MinLength     float64          `json:"minLength"`
	MaxLength     float64          `json:"maxLength"`
	MinSpacing    float64          `json:"minSpacing"`
	AllowedAngles []float64        `json:"allowedAngles"`
	SnapTolerance float64          `json:"snapTolerance"`
	SnapPoints    []geometry.Point `json:"snapPoints"`
}

// ============================================================
// Validator
// ============================================================

// Validator answers read-only placement queries. It keeps no state between
// calls.
type Validator struct {
	tol   geometry.Tolerance
	rules Rules
}

func New(tol geometry.Tolerance, rules Rules) *Validator {
	return &Validator{tol: tol, rules: rules}
}

func (v *Validator) Rules() Rules {
	return v.rules
}

// ValidatePlacement collects every error and warning for candidate against
// the existing walls.
func (v *Validator) ValidatePlacement(candidate geometry.Wall, existing []geometry.Wall) ValidationResult {
	res := ValidationResult{Errors: []string{}, Warnings: []string{}}

	if candidate.Thickness <= 0 {
		res.Errors = append(res.Errors, MsgThickness)
	}
	if candidate.Height <= 0 {
		res.Errors = append(res.Errors, MsgHeight)
	}

	length := candidate.Length()
	if candidate.IsDegenerate(v.tol) || length < v.rules.MinLength {
		res.Errors = append(res.Errors, MsgTooShort)
	}
	if v.rules.MaxLength > 0 && length > v.rules.MaxLength {
		res.Errors = append(res.Errors, MsgTooLong)
	}

	for _, w := range existing {
		if candidate.ID != "" && w.ID == candidate.ID {
			continue
		}
		if v.CheckOverlap(candidate, w).HasOverlap {
			res.Errors = append(res.Errors, MsgOverlap)
			break
		}
	}

	if !v.CheckMinSpacing(candidate, existing, v.rules.MinSpacing) {
		res.Warnings = append(res.Warnings, MsgSpacing)
	}
	if len(existing) > 0 && !v.connectsToAny(candidate, existing) {
		res.Warnings = append(res.Warnings, MsgDisconnected)
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// CheckOverlap measures the shared length of two collinear walls. Any other
// pair reports no overlap.
func (v *Validator) CheckOverlap(a, b geometry.Wall) OverlapResult {
	_, lo, hi, ok := geometry.SharedInterval(a, b, v.tol)
	if !ok {
		return OverlapResult{}
	}
	return OverlapResult{HasOverlap: true, OverlapLength: hi - lo}
}

// CheckMinSpacing reports false when the candidate centerline comes closer
// than minSpacing to an existing wall it is not attached to. Walls sharing
// an endpoint with the candidate or crossing it are attached.
func (v *Validator) CheckMinSpacing(candidate geometry.Wall, existing []geometry.Wall, minSpacing float64) bool {
	if minSpacing <= 0 {
		return true
	}
	for _, w := range existing {
		if candidate.ID != "" && w.ID == candidate.ID {
			continue
		}
		if v.adjacent(candidate, w) {
			continue
		}
		if geometry.SegmentDistance(candidate, w, v.tol) < minSpacing {
			return false
		}
	}
	return true
}

// ValidateAngle normalises degrees into [0, 360). Every angle is accepted;
// NaN and infinities normalise to 0.
func (v *Validator) ValidateAngle(degrees float64) float64 {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return 0
	}
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 || a == 0 {
		return 0
	}
	return a
}

// FindNearby returns the walls whose centerline lies within radius of
// point, in input order.
func (v *Validator) FindNearby(point geometry.Point, walls []geometry.Wall, radius float64) []geometry.Wall {
	out := make([]geometry.Wall, 0)
	if len(walls) > geometry.IndexThreshold {
		for _, i := range geometry.NewIndex(walls, v.tol).Near(point, radius) {
			out = append(out, walls[i])
		}
		return out
	}
	for _, w := range walls {
		if geometry.DistanceToWall(point, w) <= radius {
			out = append(out, w)
		}
	}
	return out
}

// ValidateConnection reports whether a and b share an endpoint, and where.
func (v *Validator) ValidateConnection(a, b geometry.Wall) (bool, *geometry.Point) {
	p, ok := geometry.SharedPoint(a, b, v.tol.Eps())
	if !ok {
		return false, nil
	}
	return true, &p
}

// Constraints aggregates the rules with the snap points of existing.
func (v *Validator) Constraints(existing []geometry.Wall) Constraints {
	angles := make([]float64, len(v.rules.AllowedAngles))
	copy(angles, v.rules.AllowedAngles)
	return Constraints{
		MinLength:     v.rules.MinLength,
		MaxLength:     v.rules.MaxLength,
		MinSpacing:    v.rules.MinSpacing,
		AllowedAngles: angles,
		SnapTolerance: v.rules.SnapTolerance,
		SnapPoints:    geometry.SnapPoints(existing, true, v.tol),
	}
}

func (v *Validator) adjacent(a, b geometry.Wall) bool {
	if geometry.Connected(a, b, v.tol.Eps()) {
		return true
	}
	_, ok := geometry.Intersect(a, b, v.tol)
	return ok
}

func (v *Validator) connectsToAny(candidate geometry.Wall, existing []geometry.Wall) bool {
	for _, w := range existing {
		if candidate.ID != "" && w.ID == candidate.ID {
			continue
		}
		if v.adjacent(candidate, w) {
			return true
		}
	}
	return false
}
