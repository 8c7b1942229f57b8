package visibility

import (
	"math"
	"sort"
)

// Sampler defaults.
const (
	// DefaultUniformSamples is the number of equal intervals the cone is split
	// into; the fill therefore contributes DefaultUniformSamples+1 deltas,
	// both cone bounds included.
	DefaultUniformSamples = 16

	// DefaultCornerEpsilon brackets every visible obstacle corner.
	DefaultCornerEpsilon = 1e-5
)

// Cone is the angular and range-bounded region an observer can potentially see.
type Cone struct {
	Range     float64 // world units
	Angle     float64 // full aperture in radians
	Direction Vec2    // unit bisector
}

// Observer is a position plus the cone it looks through.
type Observer struct {
	Position Vec2
	Cone     Cone
}

// Polygon is the ordered, open boundary of the visible region: one point per
// cast ray, from the cone's start bound to its end bound.
type Polygon []Vec2

// Sampler casts rays through a cone and collects the nearest hits.
// A Sampler reuses its scratch buffers between calls and is meant to be
// owned by a single tick loop.
type Sampler struct {
	UniformSamples int
	CornerEpsilon  float64

	deltas []float64
}

// NewSampler returns a Sampler with the default sampling parameters.
func NewSampler() *Sampler {
	return &Sampler{
		UniformSamples: DefaultUniformSamples,
		CornerEpsilon:  DefaultCornerEpsilon,
	}
}

// Deltas returns the angle deltas, relative to the cone bisector, used by the
// most recent Compute call. The slice is only valid until the next call.
func (s *Sampler) Deltas() []float64 {
	return s.deltas
}

// Compute returns the visibility polygon for one observer and obstacle snapshot.
//
// A zero cone angle degenerates to a single ray; a zero range puts every
// sample on the observer. Neither is an error.
func (s *Sampler) Compute(obs Observer, obstacles Catalog) Polygon {
	center := obs.Cone.Direction.Angle()
	half := obs.Cone.Angle / 2

	s.collectDeltas(obs, obstacles, center, half)

	out := make(Polygon, 0, len(s.deltas))
	for _, d := range s.deltas {
		out = append(out, castRay(obs, obstacles, center+d))
	}
	return out
}

// collectDeltas fills s.deltas with sorted, deduplicated angle offsets.
func (s *Sampler) collectDeltas(obs Observer, obstacles Catalog, center, half float64) {
	s.deltas = s.deltas[:0]
	eps := s.CornerEpsilon

	// Corner triads. Only corners inside range and inside the cone count.
	for i := 0; i < obstacles.Len(); i++ {
		o := obstacles.At(i)
		for v := range o.Vertices {
			corner := o.WorldVertex(v)
			to := corner.Sub(obs.Position)
			if to.Len() > obs.Cone.Range {
				continue
			}
			d := NormalizeAngle(to.Angle() - center)
			if math.Abs(d) > half {
				continue
			}
			s.addBounded(d-eps, half)
			s.addBounded(d, half)
			s.addBounded(d+eps, half)
		}
	}

	s.deltas = append(s.deltas, -half, half)

	if n := s.UniformSamples; n > 0 {
		step := obs.Cone.Angle / float64(n)
		for i := 0; i <= n; i++ {
			s.deltas = append(s.deltas, -half+float64(i)*step)
		}
	}

	sort.Float64s(s.deltas)
	s.dedup(eps / 2)
}

// addBounded appends d if it stays within the cone bounds.
func (s *Sampler) addBounded(d, half float64) {
	if d < -half || d > half {
		return
	}
	s.deltas = append(s.deltas, d)
}

// dedup removes sorted neighbours closer than tol to the last kept value.
// tol must stay below the corner epsilon or the corner brackets collapse.
func (s *Sampler) dedup(tol float64) {
	if len(s.deltas) == 0 {
		return
	}
	kept := s.deltas[:1]
	for _, d := range s.deltas[1:] {
		if d-kept[len(kept)-1] < tol {
			continue
		}
		kept = append(kept, d)
	}
	s.deltas = kept
}

// castRay returns the nearest obstacle hit along angle, or the range limit.
func castRay(obs Observer, obstacles Catalog, angle float64) Vec2 {
	dir := FromAngle(angle)
	best := obs.Position.Add(dir.Mul(obs.Cone.Range))
	bestDist := obs.Cone.Range

	for i := 0; i < obstacles.Len(); i++ {
		o := obstacles.At(i)
		for e := 0; e < o.EdgeCount(); e++ {
			a, b := o.Edge(e)
			hit, ok := RaySegmentIntersection(obs.Position, dir, a, b)
			if !ok {
				continue
			}
			if d := hit.Dist(obs.Position); d < bestDist {
				best, bestDist = hit, d
			}
		}
	}
	return best
}

// Compute runs a default Sampler once. Prefer a long-lived Sampler in tick loops.
func Compute(obs Observer, obstacles Catalog) Polygon {
	return NewSampler().Compute(obs, obstacles)
}
