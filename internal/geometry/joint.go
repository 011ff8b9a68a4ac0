package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Joint classifier
// ============================================================

type JointType int

const (
	Cross JointType = iota
	TJunction
	Corner
	Overlap
)

func (t JointType) String() string {
	switch t {
	case Cross:
		return "cross"
	case TJunction:
		return "t-junction"
	case Corner:
		return "corner"
	case Overlap:
		return "overlap"
	default:
		return "unknown"
	}
}

func (t JointType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "unknown" {
		return nil, fmt.Errorf("invalid joint type %d", int(t))
	}
	return []byte(s), nil
}

func (t *JointType) UnmarshalText(b []byte) error {
	for _, c := range []JointType{Cross, TJunction, Corner, Overlap} {
		if c.String() == string(b) {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("invalid joint type %q", string(b))
}

// Joint is a classified meeting of two walls. Angle is the unsigned angle
// between the wall directions in degrees.
type Joint struct {
	Position Point     `json:"position"`
	WallIDs  []string  `json:"wallIds"`
	Type     JointType `json:"type"`
	Angle    float64   `json:"angle"`
}

// Classify labels a point intersection of a and b. It never returns Overlap:
// collinear overlaps have no point intersection.
func Classify(ix Intersection, a, b Wall, tol Tolerance) JointType {
	atA := IsEndpoint(ix.Point, a, tol)
	atB := IsEndpoint(ix.Point, b, tol)
	switch {
	case atA && atB:
		return Corner
	case atA || atB:
		return TJunction
	default:
		return Cross
	}
}

// IsEndpoint reports whether p is within epsilon of an endpoint of w.
func IsEndpoint(p Point, w Wall, tol Tolerance) bool {
	return tol.Coincident(p, w.Start) || tol.Coincident(p, w.End)
}

// Joints classifies every wall pair that meets. Point intersections yield
// Cross, TJunction or Corner; collinear walls touching end to end yield a
// Corner; collinear walls sharing a positive length yield an Overlap placed
// at the middle of the shared interval.
func Joints(walls []Wall, tol Tolerance) []Joint {
	out := make([]Joint, 0)
	forEachPair(walls, tol, func(a, b Wall) {
		ids := []string{a.ID, b.ID}
		h := IntersectDetail(a, b, tol)
		switch h.Outcome {
		case Crossing:
			ix := Intersection{Point: h.Point, WallAID: a.ID, WallBID: b.ID}
			out = append(out, Joint{
				Position: h.Point,
				WallIDs:  ids,
				Type:     Classify(ix, a, b, tol),
				Angle:    AngleBetween(a, b),
			})
		case Collinear:
			if ax, lo, hi, ok := SharedInterval(a, b, tol); ok {
				out = append(out, Joint{
					Position: ax.At((lo + hi) / 2),
					WallIDs:  ids,
					Type:     Overlap,
				})
			} else if p, ok := SharedPoint(a, b, tol.eps()); ok {
				out = append(out, Joint{
					Position: p,
					WallIDs:  ids,
					Type:     Corner,
					Angle:    AngleBetween(a, b),
				})
			}
		}
	})
	return out
}

// AngleBetween returns the unsigned angle between the directions of a and
// b in [0, 180] degrees.
func AngleBetween(a, b Wall) float64 {
	dA, dB := a.Direction(), b.Direction()
	la, lb := dA.Len(), dB.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	c := dA.Dot(dB) / (la * lb)
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}
