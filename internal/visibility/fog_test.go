package visibility

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFogObserve(t *testing.T) {
	f := NewFog(gg.RGB(1, 0, 0))
	assert.Equal(t, StateHidden, f.State())

	f.Observe(false)
	assert.Equal(t, StateHidden, f.State())

	f.Observe(true)
	assert.True(t, f.Visible)
	assert.True(t, f.Discovered)
	assert.Equal(t, StateVisible, f.State())

	for i := 0; i < 5; i++ {
		f.Observe(false)
		assert.False(t, f.Visible)
		assert.True(t, f.Discovered, "discovered must never revert")
	}
	assert.Equal(t, StateDiscovered, f.State())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateHidden, "hidden"},
		{StateDiscovered, "discovered"},
		{StateVisible, "visible"},
		{State(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, expected %q", tc.s, got, tc.want)
		}
	}
}

func TestClassifySingleWall(t *testing.T) {
	obs := upObserver(1000, math.Pi)
	walls := Obstacles{Rect(V(0, 500), 100, 20)}

	objects := []Object{
		{Position: V(0, 600), Fog: NewFog(gg.RGB(0, 1, 0))},  // behind the wall
		{Position: V(0, 400), Fog: NewFog(gg.RGB(0, 0, 1))},  // in front of it
		{Position: V(0, -10), Fog: NewFog(gg.RGB(1, 1, 0))},  // behind the observer
		{Position: V(0, 1200), Fog: NewFog(gg.RGB(1, 1, 1))}, // out of range
	}

	var c Classifier
	boundary := NewSampler().Compute(obs, walls)
	visible := c.Classify(obs.Position, boundary, objects)

	assert.Equal(t, 1, visible)
	assert.False(t, objects[0].Fog.Visible, "object behind the wall")
	assert.True(t, objects[1].Fog.Visible, "object in front of the wall")
	assert.False(t, objects[2].Fog.Visible, "object behind the observer")
	assert.False(t, objects[3].Fog.Visible, "object beyond range")

	assert.True(t, c.Sees(V(0, 400)))
	assert.False(t, c.Sees(V(0, 600)))
}

func TestClassifyFullTurnBackSeam(t *testing.T) {
	obs := upObserver(1000, 2*math.Pi)
	var c Classifier
	boundary := NewSampler().Compute(obs, Obstacles(nil))
	c.Fan(obs.Position, boundary)

	// The first and last rays overlap straight behind the observer; the
	// seam is a fan edge and follows the half-open boundary rule.
	assert.False(t, c.Sees(V(0, -300)), "point on the back seam")
	assert.True(t, c.Sees(V(-0.001, -300)), "point just beside the seam")
	assert.True(t, c.Sees(V(300, 0)))
	assert.True(t, c.Sees(V(-300, 0)))
}

func TestClassifyDiscoveryPersists(t *testing.T) {
	objects := []Object{{Position: V(0, 300), Fog: NewFog(gg.RGB(1, 0, 0))}}
	var c Classifier
	s := NewSampler()

	facing := upObserver(1000, math.Pi/2)
	c.Classify(facing.Position, s.Compute(facing, Obstacles(nil)), objects)
	require.True(t, objects[0].Fog.Visible)

	away := facing
	away.Cone.Direction = V(0, -1)
	for i := 0; i < 3; i++ {
		c.Classify(away.Position, s.Compute(away, Obstacles(nil)), objects)
		assert.False(t, objects[0].Fog.Visible)
		assert.True(t, objects[0].Fog.Discovered)
	}
}

func TestClassifyEmptyBoundary(t *testing.T) {
	objects := []Object{{Position: V(1, 1)}}
	var c Classifier
	assert.Equal(t, 0, c.Classify(V(0, 0), nil, objects))
	assert.False(t, objects[0].Fog.Discovered)
}

func TestFanStartsAtObserver(t *testing.T) {
	var c Classifier
	boundary := Polygon{V(1, 1), V(0, 2), V(-1, 1)}
	fan := c.Fan(V(0, 0), boundary)
	require.Len(t, fan, 4)
	assert.Equal(t, V(0, 0), fan[0])
	assert.Equal(t, boundary, fan[1:])
}
