// Package visibility computes what an observer can see through a vision cone
// among polygonal obstacles, and tracks fog-of-war memory for world objects.
//
// The package is pure: no I/O, no logging, no engine types. Callers feed it
// plain slices once per tick in the order sample -> classify -> project.
package visibility

import "math"

// ParallelTolerance is the determinant magnitude below which a ray and a
// segment are treated as parallel (no intersection).
const ParallelTolerance = 1e-6

// Vec2 is a point or vector in world space.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (perp-dot) v.X*w.Y - v.Y*w.X.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(w Vec2) float64 {
	return v.Sub(w).Len()
}

// Normalize returns the unit vector in the direction of v, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns atan2(v.Y, v.X).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns v rotated counter-clockwise by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// RaySegmentIntersection intersects the ray origin + t1*dir (t1 >= 0) with the
// segment a + t2*(b-a) (0 <= t2 <= 1).
//
// It returns false when the two are parallel within ParallelTolerance, which
// includes zero-length segments and a zero direction.
func RaySegmentIntersection(origin, dir, a, b Vec2) (Vec2, bool) {
	seg := b.Sub(a)
	det := dir.Cross(seg)
	if math.Abs(det) < ParallelTolerance {
		return Vec2{}, false
	}

	diff := a.Sub(origin)
	t1 := diff.Cross(seg) / det
	t2 := diff.Cross(dir) / det

	if t1 < 0 || t2 < 0 || t2 > 1 {
		return Vec2{}, false
	}
	return origin.Add(dir.Mul(t1)), true
}

// NormalizeAngle wraps angle into (-Pi, Pi] using a single modulo step, so
// inputs many turns away from the canonical range cost the same as any other.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// PointInPolygon reports whether p lies inside poly using the even-odd rule
// with a horizontal ray. Polygons with fewer than 3 vertices contain nothing.
//
// Points exactly on an edge are not special-cased; the half-open crossing
// test decides them.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			crossX := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
