package geometry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tol := DefaultTolerance()
	tests := []struct {
		name string
		a, b Wall
		want JointType
		at   Point
	}{
		{"cross", wall("a", 0, 0, 100, 0), wall("b", 50, -50, 50, 50), Cross, Pt(50, 0)},
		{"t-junction", wall("a", 0, 0, 100, 0), wall("b", 50, 0, 50, 50), TJunction, Pt(50, 0)},
		{"t-junction stem first", wall("a", 50, 0, 50, 50), wall("b", 0, 0, 100, 0), TJunction, Pt(50, 0)},
		{"corner", wall("a", 0, 0, 100, 0), wall("b", 100, 0, 100, 100), Corner, Pt(100, 0)},
		{"corner reversed walls", wall("a", 100, 0, 0, 0), wall("b", 100, 100, 100, 0), Corner, Pt(100, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ixs := FindAll([]Wall{tt.a, tt.b}, tol)
			require.Len(t, ixs, 1)
			assert.Equal(t, tt.at, ixs[0].Point)
			assert.Equal(t, tt.want, Classify(ixs[0], tt.a, tt.b, tol))
		})
	}
}

func TestJoints(t *testing.T) {
	tol := DefaultTolerance()
	walls := []Wall{
		wall("a", 0, 0, 100, 0),
		wall("b", 100, 0, 100, 100),
		wall("c", 50, 0, 150, 0),
		wall("d", 150, 0, 250, 0),
	}

	joints := Joints(walls, tol)

	byPair := make(map[string]Joint)
	for _, j := range joints {
		byPair[j.WallIDs[0]+j.WallIDs[1]] = j
	}

	require.Contains(t, byPair, "ab")
	assert.Equal(t, Corner, byPair["ab"].Type)
	assert.InDelta(t, 90, byPair["ab"].Angle, 1e-9)

	require.Contains(t, byPair, "ac")
	assert.Equal(t, Overlap, byPair["ac"].Type)
	assert.Equal(t, Pt(75, 0), byPair["ac"].Position)

	require.Contains(t, byPair, "bc")
	assert.Equal(t, TJunction, byPair["bc"].Type)
	assert.Equal(t, Pt(100, 0), byPair["bc"].Position)

	require.Contains(t, byPair, "cd")
	assert.Equal(t, Corner, byPair["cd"].Type)
	assert.Equal(t, Pt(150, 0), byPair["cd"].Position)
	assert.InDelta(t, 0, byPair["cd"].Angle, 1e-9)

	assert.NotContains(t, byPair, "ad")
	assert.NotContains(t, byPair, "bd")
}

func TestJointType_JSON(t *testing.T) {
	data, err := json.Marshal(Joint{Position: Pt(1, 2), WallIDs: []string{"a", "b"}, Type: TJunction, Angle: 90})
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":{"x":1,"y":2},"wallIds":["a","b"],"type":"t-junction","angle":90}`, string(data))

	var j Joint
	require.NoError(t, json.Unmarshal(data, &j))
	assert.Equal(t, TJunction, j.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"weird"}`), &j))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 45, AngleBetween(wall("a", 0, 0, 10, 0), wall("b", 0, 0, 10, 10)), 1e-9)
	assert.InDelta(t, 180, AngleBetween(wall("a", 0, 0, 10, 0), wall("b", 0, 0, -10, 0)), 1e-9)
	assert.Equal(t, 0.0, AngleBetween(wall("a", 0, 0, 0, 0), wall("b", 0, 0, 10, 0)))
}
