package topology

import (
	"errors"

	"planner/internal/geometry"

	"github.com/google/uuid"
)

// ============================================================
// Openings
// ============================================================

var (
	ErrNoHostWall         = errors.New("no wall to host the opening")
	ErrOpeningTooWide     = errors.New("opening does not fit in the wall")
	ErrUnknownOpeningKind = errors.New("unknown opening kind")
)

const (
	DefaultDoorWidth   = 80.0
	DefaultWindowWidth = 90.0
)

// PlaceOpening hosts a door or window on the wall nearest to at. Offset is
// the parametric position 0..1 of the opening center along the host. A
// non-positive width takes the default for the kind.
func PlaceOpening(walls []geometry.Wall, kind geometry.OpeningKind, at geometry.Point, width float64, tol geometry.Tolerance) (geometry.Opening, error) {
	switch kind {
	case geometry.Door:
		if width <= 0 {
			width = DefaultDoorWidth
		}
	case geometry.Window:
		if width <= 0 {
			width = DefaultWindowWidth
		}
	default:
		return geometry.Opening{}, ErrUnknownOpeningKind
	}

	host, ok := nearestWall(walls, at, tol)
	if !ok {
		return geometry.Opening{}, ErrNoHostWall
	}

	offset, _ := geometry.ClosestParam(at, host)
	length := host.Length()
	half := width / 2 / length
	if offset-half < -tol.Eps()/length || offset+half > 1+tol.Eps()/length {
		return geometry.Opening{}, ErrOpeningTooWide
	}

	return geometry.Opening{
		ID:     uuid.NewString(),
		Kind:   kind,
		WallID: host.ID,
		Offset: offset,
		Width:  width,
		Start:  host.Start.Lerp(host.End, offset-half),
		End:    host.Start.Lerp(host.End, offset+half),
	}, nil
}

// nearestWall returns the non-degenerate wall closest to p. Ties go to the
// earlier wall.
func nearestWall(walls []geometry.Wall, p geometry.Point, tol geometry.Tolerance) (geometry.Wall, bool) {
	var best geometry.Wall
	bestDist, found := 0.0, false
	for _, w := range walls {
		if w.IsDegenerate(tol) {
			continue
		}
		d := geometry.DistanceToWall(p, w)
		if !found || d < bestDist {
			best, bestDist, found = w, d, true
		}
	}
	return best, found
}
