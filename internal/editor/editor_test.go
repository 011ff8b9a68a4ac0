package editor

import (
	"fmt"
	"testing"

	"planner/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(opts ...Option) *Editor {
	n := 0
	ids := WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})
	return New(geometry.DefaultTolerance(), append([]Option{ids}, opts...)...)
}

func wall(id string, x1, y1, x2, y2 float64) geometry.Wall {
	return geometry.Wall{
		ID:        id,
		Start:     geometry.Pt(x1, y1),
		End:       geometry.Pt(x2, y2),
		Thickness: 10,
		Height:    280,
		Material:  "brick",
	}
}

func TestSplitAt(t *testing.T) {
	e := newTestEditor()
	w := wall("w", 0, 0, 100, 0)

	first, second, err := e.SplitAt(w, geometry.Pt(40, 0))
	require.NoError(t, err)

	assert.Equal(t, geometry.Wall{ID: "new-1", Start: geometry.Pt(0, 0), End: geometry.Pt(40, 0), Thickness: 10, Height: 280, Material: "brick"}, first)
	assert.Equal(t, geometry.Wall{ID: "new-2", Start: geometry.Pt(40, 0), End: geometry.Pt(100, 0), Thickness: 10, Height: 280, Material: "brick"}, second)
	assert.Equal(t, geometry.Pt(100, 0), w.End, "input is untouched")
}

func TestSplitAt_Errors(t *testing.T) {
	e := newTestEditor()
	tests := []struct {
		name  string
		wall  geometry.Wall
		point geometry.Point
		want  error
	}{
		{"zero length", wall("z", 5, 5, 5, 5), geometry.Pt(5, 5), ErrZeroLengthWall},
		{"at start", wall("w", 0, 0, 100, 0), geometry.Pt(0, 0), ErrCannotSplitAtEndpoint},
		{"near end", wall("w", 0, 0, 100, 0), geometry.Pt(100+1e-9, 0), ErrCannotSplitAtEndpoint},
		{"off the line", wall("w", 0, 0, 100, 0), geometry.Pt(50, 1), ErrPointNotOnWall},
		{"beyond the end", wall("w", 0, 0, 100, 0), geometry.Pt(150, 0), ErrPointNotOnWall},
		{"before the start", wall("w", 0, 0, 100, 0), geometry.Pt(-10, 0), ErrPointNotOnWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.SplitAt(tt.wall, tt.point)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	e := newTestEditor()
	for _, w := range []geometry.Wall{
		wall("h", 0, 0, 100, 0),
		wall("d", 0, 0, 30, 40),
		wall("r", 100, 100, -20, 7),
	} {
		t.Run(w.ID, func(t *testing.T) {
			first, second, err := e.SplitAt(w, w.Midpoint())
			require.NoError(t, err)

			merged, err := e.Merge(first, second)
			require.NoError(t, err)
			assert.True(t, merged.SameGeometry(w, geometry.DefaultTolerance()))
			assert.Equal(t, w.Start, merged.Start)
			assert.Equal(t, w.End, merged.End)
			assert.Equal(t, w.Material, merged.Material)
		})
	}
}

func TestMerge_Commutative(t *testing.T) {
	e := newTestEditor()
	tol := geometry.DefaultTolerance()
	pairs := [][2]geometry.Wall{
		{wall("a", 0, 0, 100, 0), wall("b", 150, 0, 50, 0)},
		{wall("a", 0, 0, 100, 0), wall("b", 100, 0, 200, 0)},
		{wall("a", 0, 0, 100, 100), wall("b", 25, 25, 75, 75)},
	}

	for i, p := range pairs {
		ab, err := e.Merge(p[0], p[1])
		require.NoError(t, err, i)
		ba, err := e.Merge(p[1], p[0])
		require.NoError(t, err, i)
		assert.True(t, ab.SameGeometry(ba, tol), "pair %d: %v vs %v", i, ab, ba)
	}

	ab, _ := e.Merge(pairs[0][0], pairs[0][1])
	assert.Equal(t, geometry.Pt(0, 0), ab.Start)
	assert.Equal(t, geometry.Pt(150, 0), ab.End)
}

func TestMerge_FloatingPointDrift(t *testing.T) {
	e := newTestEditor()
	a := wall("a", 0, 0.3, 100, 0.3)
	b := wall("b", 100, 0.1+0.2, 200, 0.3)

	merged, err := e.Merge(a, b)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(0, 0.3), merged.Start)
	assert.Equal(t, geometry.Pt(200, 0.3), merged.End)
}

func TestMerge_Errors(t *testing.T) {
	e := newTestEditor()
	other := wall("b", 100, 0, 200, 0)
	other.Material = "glass"

	tests := []struct {
		name string
		a, b geometry.Wall
		want error
	}{
		{"parallel offset", wall("a", 0, 0, 100, 0), wall("b", 100, 10, 200, 10), ErrNotCollinear},
		{"perpendicular", wall("a", 0, 0, 100, 0), wall("b", 100, 0, 100, 100), ErrNotCollinear},
		{"material", wall("a", 0, 0, 100, 0), other, ErrMaterialMismatch},
		{"gap", wall("a", 0, 0, 100, 0), wall("b", 120, 0, 200, 0), ErrNotContiguous},
		{"zero length", wall("a", 0, 0, 100, 0), wall("b", 50, 0, 50, 0), ErrZeroLengthWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Merge(tt.a, tt.b)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJoin(t *testing.T) {
	e := newTestEditor()
	a := wall("a", 0, 0, 95, 0)
	b := wall("b", 100, 5, 100, 100)
	b.Thickness = 20

	res, err := e.Join(a, b, geometry.Pt(100, 0))
	require.NoError(t, err)

	assert.Equal(t, geometry.Pt(0, 0), res.A.Start)
	assert.Equal(t, geometry.Pt(100, 0), res.A.End)
	assert.Equal(t, geometry.Pt(100, 0), res.B.Start)
	assert.Equal(t, geometry.Pt(100, 100), res.B.End)
	assert.Equal(t, []Warning{WarnThicknessMismatch}, res.Warnings)

	assert.Equal(t, geometry.Pt(95, 0), a.End, "originals untouched")
	assert.Equal(t, geometry.Pt(100, 5), b.Start, "originals untouched")
}

func TestJoin_Errors(t *testing.T) {
	e := newTestEditor(WithMaxJoinDistance(10))

	_, err := e.Join(wall("a", 0, 0, 50, 0), wall("b", 100, 0, 100, 100), geometry.Pt(100, 0))
	assert.ErrorIs(t, err, ErrTooFarApart)

	_, err = e.Join(wall("a", 5, 5, 5, 5), wall("b", 5, 5, 5, 100), geometry.Pt(5, 5))
	assert.ErrorIs(t, err, ErrZeroLengthWall)
}

func TestJoinAtIntersection(t *testing.T) {
	e := newTestEditor()

	res, err := e.JoinAtIntersection(wall("a", 0, 0, 100, 0), wall("b", 80, -20, 80, 50))
	require.NoError(t, err)
	assert.Equal(t, res.A.End, res.B.Start)
	assert.InDelta(t, 80, res.A.End.X, 1e-9)
	assert.InDelta(t, 0, res.A.End.Y, 1e-9)
	assert.Equal(t, geometry.Pt(0, 0), res.A.Start)
	assert.Equal(t, geometry.Pt(80, 50), res.B.End)
	assert.Empty(t, res.Warnings)

	_, err = e.JoinAtIntersection(wall("a", 0, 0, 100, 0), wall("b", 0, 10, 100, 10))
	assert.ErrorIs(t, err, ErrWallsAreParallel)

	_, err = e.JoinAtIntersection(wall("a", 0, 0, 100, 0), wall("b", 0, 0, 50, 0))
	assert.ErrorIs(t, err, ErrWallsAreParallel)

	_, err = e.JoinAtIntersection(wall("a", 0, 0, 10, 0), wall("b", 50, -5, 50, 5))
	assert.ErrorIs(t, err, ErrWallsDoNotIntersect)
}

func TestNew_DefaultIDsAreUUIDs(t *testing.T) {
	e := New(geometry.DefaultTolerance())
	first, second, err := e.SplitAt(wall("w", 0, 0, 100, 0), geometry.Pt(50, 0))
	require.NoError(t, err)
	assert.Len(t, first.ID, 36)
	assert.NotEqual(t, first.ID, second.ID)
}
