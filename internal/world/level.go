package world

import (
	"github.com/gogpu/gg"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/visibility"
)

// Appearance used when a level object has no colour of its own.
var (
	DefaultLootColor     = gg.Hex("#e5c07b")
	DefaultLandmarkColor = gg.Hex("#61afef")
)

// vec converts a level-file point.
func vec(v config.Vec) visibility.Vec2 {
	return visibility.V(v.X, v.Y)
}

// buildObstacle converts a level obstacle, expanding the rect shorthand.
func buildObstacle(o config.ObstacleConfig) visibility.Obstacle {
	if o.Rect != nil {
		return visibility.Rect(visibility.V(o.Rect.X, o.Rect.Y), o.Rect.W, o.Rect.H)
	}
	verts := make([]visibility.Vec2, len(o.Vertices))
	for i, v := range o.Vertices {
		verts[i] = vec(v)
	}
	return visibility.Obstacle{Anchor: vec(o.Anchor), Vertices: verts}
}

// buildObject converts a level object into its fog record and metadata.
func buildObject(o config.ObjectConfig) (visibility.Object, Meta) {
	m := Meta{Name: o.Name, Count: o.Count}
	appearance := DefaultLandmarkColor
	if o.Kind == config.KindLoot {
		m.Kind = KindLoot
		appearance = DefaultLootColor
		if m.Count <= 0 {
			m.Count = 1
		}
	}
	if o.Color != "" {
		appearance = gg.Hex(o.Color)
	}
	return visibility.Object{Position: vec(o.Position), Fog: visibility.NewFog(appearance)}, m
}

// Bounds is the walkable area of a level.
type Bounds struct {
	Min, Max visibility.Vec2
}

// boundsOf converts a centre-and-size level rect.
func boundsOf(r config.RectConfig) Bounds {
	hw, hh := r.W/2, r.H/2
	return Bounds{
		Min: visibility.V(r.X-hw, r.Y-hh),
		Max: visibility.V(r.X+hw, r.Y+hh),
	}
}

// Contains reports whether p lies inside the bounds shrunk by margin.
func (b Bounds) Contains(p visibility.Vec2, margin float64) bool {
	return p.X >= b.Min.X+margin && p.X <= b.Max.X-margin &&
		p.Y >= b.Min.Y+margin && p.Y <= b.Max.Y-margin
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }
