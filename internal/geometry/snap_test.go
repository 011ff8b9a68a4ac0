package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapPoints_CornerNoiseCollapses(t *testing.T) {
	walls := []Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 1e-9, -1e-9, 0, 100),
		wall("c", 0, 1e-10, -100, 0),
	}

	points := SnapPoints(walls, false, DefaultTolerance())
	assert.Equal(t, []Point{Pt(0, 0), Pt(100, 0), Pt(0, 100), Pt(-100, 0)}, points)

	withMid := SnapPoints(walls, true, DefaultTolerance())
	assert.Len(t, withMid, 7)
}

func TestSnapPoints_IncludesCrossPoint(t *testing.T) {
	walls := []Wall{wall("a", 0, 0, 100, 0), wall("b", 50, -50, 50, 50)}

	points := SnapPoints(walls, false, DefaultTolerance())
	require.Len(t, points, 5)
	assert.Equal(t, Pt(50, 0), points[4])

	// Both midpoints coincide with the crossing.
	assert.Len(t, SnapPoints(walls, true, DefaultTolerance()), 5)
}

func TestSnapPoints_OverlapAddsNothing(t *testing.T) {
	walls := []Wall{wall("a", 0, 0, 100, 0), wall("b", 50, 0, 150, 0)}

	points := SnapPoints(walls, false, DefaultTolerance())
	assert.Equal(t, []Point{Pt(0, 0), Pt(100, 0), Pt(50, 0), Pt(150, 0)}, points)
}

func TestSnap(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}

	p, ok := Snap(Pt(9, 1), points, 3)
	require.True(t, ok)
	assert.Equal(t, Pt(10, 0), p)

	_, ok = Snap(Pt(50, 50), points, 3)
	assert.False(t, ok)

	p, ok = Snap(Pt(5, 0), points, 5)
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), p, "ties go to the earlier point")
}

func TestDedupe(t *testing.T) {
	tol := Tolerance{Epsilon: 0.5}
	got := Dedupe([]Point{Pt(0, 0), Pt(0.2, 0.2), Pt(1, 1), Pt(1.1, 1)}, tol)
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1)}, got)
}
