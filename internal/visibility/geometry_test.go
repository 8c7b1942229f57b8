package visibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaySegmentIntersection(t *testing.T) {
	tests := []struct {
		name   string
		origin Vec2
		dir    Vec2
		a, b   Vec2
		want   Vec2
		hit    bool
	}{
		{
			name:   "straight hit",
			origin: V(0, 0), dir: V(0, 1),
			a: V(-10, 5), b: V(10, 5),
			want: V(0, 5), hit: true,
		},
		{
			name:   "segment behind ray",
			origin: V(0, 0), dir: V(0, 1),
			a: V(-10, -5), b: V(10, -5),
		},
		{
			name:   "ray misses segment span",
			origin: V(0, 0), dir: V(0, 1),
			a: V(1, 5), b: V(10, 5),
		},
		{
			name:   "hit exactly on endpoint",
			origin: V(0, 0), dir: V(1, 1).Normalize(),
			a: V(5, 5), b: V(10, 5),
			want: V(5, 5), hit: true,
		},
		{
			name:   "parallel",
			origin: V(0, 0), dir: V(1, 0),
			a: V(0, 1), b: V(10, 1),
		},
		{
			name:   "collinear",
			origin: V(0, 0), dir: V(1, 0),
			a: V(2, 0), b: V(10, 0),
		},
		{
			name:   "zero length segment",
			origin: V(0, 0), dir: V(1, 0),
			a: V(5, 0), b: V(5, 0),
		},
		{
			name:   "origin on segment",
			origin: V(0, 0), dir: V(0, 1),
			a: V(-1, 0), b: V(1, 0),
			want: V(0, 0), hit: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RaySegmentIntersection(tc.origin, tc.dir, tc.a, tc.b)
			require.Equal(t, tc.hit, ok)
			if tc.hit {
				assert.InDelta(t, tc.want.X, got.X, 1e-9)
				assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
		{1000*2*math.Pi + 0.25, 0.25},
		{-1000*2*math.Pi - 0.25, -0.25},
	}

	for _, tc := range tests {
		got := NormalizeAngle(tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "NormalizeAngle(%v)", tc.in)
		assert.True(t, got > -math.Pi && got <= math.Pi, "NormalizeAngle(%v) = %v out of range", tc.in, got)
	}
}

func TestNormalizeAngleHugeInput(t *testing.T) {
	got := NormalizeAngle(1e12)
	assert.True(t, got > -math.Pi && got <= math.Pi)
}

func TestPointInPolygon(t *testing.T) {
	square := []Vec2{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}
	concave := []Vec2{V(0, 0), V(10, 0), V(10, 10), V(5, 4), V(0, 10)}

	tests := []struct {
		name string
		p    Vec2
		poly []Vec2
		want bool
	}{
		{"center of square", V(5, 5), square, true},
		{"outside square", V(15, 5), square, false},
		{"below square", V(5, -1), square, false},
		{"concave pocket", V(5, 8), concave, false},
		{"concave body", V(5, 2), concave, true},
		{"concave left lobe", V(1, 8), concave, true},
		{"two vertices", V(0, 0), []Vec2{V(-1, -1), V(1, 1)}, false},
		{"empty", V(0, 0), nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PointInPolygon(tc.p, tc.poly))
		})
	}
}

func TestObstacleEdges(t *testing.T) {
	o := Rect(V(100, 50), 20, 10)
	require.Equal(t, 4, o.EdgeCount())

	a, b := o.Edge(3)
	assert.Equal(t, V(90, 55), a)
	assert.Equal(t, V(90, 45), b, "last edge wraps to the first vertex")

	assert.True(t, o.Contains(V(100, 50)))
	assert.False(t, o.Contains(V(120, 50)))

	line := Obstacle{Vertices: []Vec2{V(0, 0), V(1, 1)}}
	assert.Equal(t, 0, line.EdgeCount())
	assert.False(t, line.Contains(V(0.5, 0.5)))
}
