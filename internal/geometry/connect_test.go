package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnected(t *testing.T) {
	tests := []struct {
		name string
		a, b Wall
		tol  float64
		want bool
	}{
		{"shared corner", wall("a", 0, 0, 100, 0), wall("b", 100, 0, 100, 100), 1e-6, true},
		{"start to start", wall("a", 0, 0, 100, 0), wall("b", 0, 0, 0, 100), 1e-6, true},
		{"within tolerance", wall("a", 0, 0, 100, 0), wall("b", 100.5, 0, 100.5, 100), 1, true},
		{"outside tolerance", wall("a", 0, 0, 100, 0), wall("b", 102, 0, 102, 100), 1, false},
		{"crossing mid-span", wall("a", 0, 0, 100, 0), wall("b", 50, -50, 50, 50), 1e-6, false},
		{"t-junction is not endpoint adjacency", wall("a", 0, 0, 100, 0), wall("b", 50, 0, 50, 50), 1e-6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Connected(tt.a, tt.b, tt.tol))
			assert.Equal(t, tt.want, Connected(tt.b, tt.a, tt.tol))
		})
	}
}

func TestSharedPoint(t *testing.T) {
	p, ok := SharedPoint(wall("a", 0, 0, 100, 0), wall("b", 100, 0, 100, 100), 1e-6)
	require.True(t, ok)
	assert.Equal(t, Pt(100, 0), p)

	_, ok = SharedPoint(wall("a", 0, 0, 100, 0), wall("b", 0, 10, 100, 10), 1e-6)
	assert.False(t, ok)
}

func TestChain(t *testing.T) {
	walls := []Wall{
		wall("a", 0, 0, 100, 0),
		wall("x", 500, 500, 600, 500),
		wall("b", 100, 0, 100, 100),
		wall("c", 100, 100, 0, 100),
	}

	groups := Chain(walls, 1e-6)
	require.Len(t, groups, 2)

	ids := func(ws []Wall) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(groups[0]))
	assert.Equal(t, []string{"x"}, ids(groups[1]))
	assert.Empty(t, Chain(nil, 1))
}
