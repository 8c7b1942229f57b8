package visibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upObserver(rng, angle float64) Observer {
	return Observer{
		Position: V(0, 0),
		Cone:     Cone{Range: rng, Angle: angle, Direction: V(0, 1)},
	}
}

func TestComputeNoObstacles(t *testing.T) {
	s := NewSampler()
	poly := s.Compute(upObserver(1000, math.Pi/2), Obstacles(nil))

	// 17 uniform deltas, both cone bounds merged into the first and last.
	require.Len(t, poly, DefaultUniformSamples+1)

	for _, p := range poly {
		assert.InDelta(t, 1000, p.Len(), 1e-9)
	}

	mid := poly[len(poly)/2]
	assert.InDelta(t, 0, mid.X, 1e-9)
	assert.InDelta(t, 1000, mid.Y, 1e-9)

	// Start bound is clockwise of the bisector (45 degrees), end bound counter-clockwise (135).
	assert.InDelta(t, math.Pi/4, poly[0].Angle(), 1e-9)
	assert.InDelta(t, 3*math.Pi/4, poly[len(poly)-1].Angle(), 1e-9)

	classifier := &Classifier{}
	assert.Len(t, classifier.Fan(V(0, 0), poly), DefaultUniformSamples+2)
}

func TestComputeDeterministic(t *testing.T) {
	obstacles := Obstacles{
		Rect(V(0, 500), 100, 20),
		Rect(V(-300, 300), 60, 60),
		{Anchor: V(250, 250), Vertices: []Vec2{V(0, 0), V(40, 10), V(10, 60)}},
	}
	obs := upObserver(1000, math.Pi)

	s := NewSampler()
	first := s.Compute(obs, obstacles)
	second := s.Compute(obs, obstacles)
	assert.Equal(t, first, second)
}

func TestComputeContainmentAndCoverage(t *testing.T) {
	obstacles := Obstacles{
		Rect(V(0, 500), 100, 20),
		Rect(V(200, 200), 50, 50),
		Rect(V(-600, 700), 300, 40),
	}
	for _, angle := range []float64{math.Pi / 6, math.Pi / 2, math.Pi, 2 * math.Pi} {
		obs := upObserver(800, angle)
		s := NewSampler()
		poly := s.Compute(obs, obstacles)
		require.NotEmpty(t, poly)

		for _, p := range poly {
			assert.LessOrEqual(t, p.Dist(obs.Position), obs.Cone.Range+1e-9)
		}

		deltas := s.Deltas()
		require.Len(t, deltas, len(poly))
		assert.Equal(t, -angle/2, deltas[0])
		assert.Equal(t, angle/2, deltas[len(deltas)-1])
		for i := 1; i < len(deltas); i++ {
			assert.Greater(t, deltas[i], deltas[i-1], "deltas must be strictly increasing")
		}
	}
}

func TestComputeCornerBracket(t *testing.T) {
	wall := Rect(V(0, 500), 100, 20)
	s := NewSampler()
	poly := s.Compute(upObserver(1000, math.Pi), Obstacles{wall})

	// Near corner (50, 490): the sample just clockwise slips past the wall
	// to the range limit, the one just counter-clockwise lands on its face.
	corner := V(50, 490)
	d := NormalizeAngle(corner.Angle() - math.Pi/2)

	var outside, inside Vec2
	var foundOutside, foundInside bool
	for i, delta := range s.Deltas() {
		switch {
		case math.Abs(delta-(d-DefaultCornerEpsilon)) < 1e-12:
			outside, foundOutside = poly[i], true
		case math.Abs(delta-(d+DefaultCornerEpsilon)) < 1e-12:
			inside, foundInside = poly[i], true
		}
	}
	require.True(t, foundOutside, "missing corner-minus-epsilon sample")
	require.True(t, foundInside, "missing corner-plus-epsilon sample")

	assert.InDelta(t, 1000, outside.Len(), 1e-6)
	assert.InDelta(t, 490, inside.Y, 1e-6)
	assert.InDelta(t, corner.X, inside.X, 1e-2)
}

func TestComputeIgnoresCornersOutsideCone(t *testing.T) {
	behind := Rect(V(0, -300), 40, 40)
	far := Rect(V(0, 5000), 40, 40)
	s := NewSampler()
	poly := s.Compute(upObserver(1000, math.Pi/2), Obstacles{behind, far})
	assert.Len(t, poly, DefaultUniformSamples+1)
}

func TestComputeDegenerateObstacle(t *testing.T) {
	// Two-vertex obstacle sitting across the bisector: no edges, no occlusion.
	line := Obstacle{Anchor: V(0, 300), Vertices: []Vec2{V(-50, 0), V(50, 0)}}
	s := NewSampler()
	poly := s.Compute(upObserver(1000, math.Pi/2), Obstacles{line})

	require.Len(t, poly, len(s.Deltas()))
	for _, p := range poly {
		assert.InDelta(t, 1000, p.Len(), 1e-9)
	}

	// The two vertices were still sampled, so rays aimed straight at them exist.
	for _, v := range []Vec2{V(-50, 300), V(50, 300)} {
		d := NormalizeAngle(v.Angle() - math.Pi/2)
		assert.Contains(t, s.Deltas(), d)
	}
}

func TestComputeDegenerateCone(t *testing.T) {
	s := NewSampler()

	zeroAngle := s.Compute(upObserver(1000, 0), Obstacles(nil))
	require.Len(t, zeroAngle, 1)
	assert.InDelta(t, 1000, zeroAngle[0].Y, 1e-9)

	zeroRange := s.Compute(upObserver(0, math.Pi/2), Obstacles{Rect(V(0, 10), 4, 4)})
	require.NotEmpty(t, zeroRange)
	for _, p := range zeroRange {
		assert.InDelta(t, 0, p.Len(), 1e-12)
	}
}

func TestComputeZeroLengthEdge(t *testing.T) {
	// Repeated vertex produces a zero-length edge that must be skipped.
	o := Obstacle{Anchor: V(0, 400), Vertices: []Vec2{V(-50, 0), V(50, 0), V(50, 0), V(0, 40)}}
	s := NewSampler()
	poly := s.Compute(upObserver(1000, math.Pi/2), Obstacles{o})
	require.NotEmpty(t, poly)

	idx := -1
	for i, d := range s.Deltas() {
		if d == 0 {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx, "bisector sample missing")
	assert.InDelta(t, 400, poly[idx].Y, 1e-6)
}
