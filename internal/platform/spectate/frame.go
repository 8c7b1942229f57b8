// Package spectate streams live visibility frames to websocket spectators.
package spectate

import (
	"math"

	"github.com/vovakirdan/fogscout/internal/visibility"
	"github.com/vovakirdan/fogscout/internal/world"
)

// Point is a world-space position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func point(v visibility.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Cone is the observer's vision cone with the aperture in degrees.
type Cone struct {
	Range    float64 `json:"range"`
	AngleDeg float64 `json:"angle_deg"`
	Facing   Point   `json:"facing"`
}

// Obstacle is one wall polygon in world space.
type Obstacle struct {
	Name     string  `json:"name,omitempty"`
	Vertices []Point `json:"vertices"`
}

// Object is one tracked object with its fog state and display tint.
// Tint is empty for hidden objects.
type Object struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	State string  `json:"state"`
	Tint  string  `json:"tint,omitempty"`
	Alpha float64 `json:"alpha"`
}

// Frame is one tick of world state as seen by spectators.
type Frame struct {
	Type      string     `json:"type"`
	Tick      int        `json:"tick"`
	Observer  Point      `json:"observer"`
	Cone      Cone       `json:"cone"`
	Boundary  []Point    `json:"boundary"`
	Obstacles []Obstacle `json:"obstacles"`
	Objects   []Object   `json:"objects"`
}

// NewFrame captures the world after a tick. Boundary is the ordered, open
// visibility polygon; spectators close it through Observer to draw the fan.
func NewFrame(w *world.World, tick int) Frame {
	obs := w.Observer()
	f := Frame{
		Type:     "frame",
		Tick:     tick,
		Observer: point(obs.Position),
		Cone: Cone{
			Range:    obs.Cone.Range,
			AngleDeg: obs.Cone.Angle * 180 / math.Pi,
			Facing:   point(obs.Cone.Direction),
		},
	}

	boundary := w.Boundary()
	f.Boundary = make([]Point, len(boundary))
	for i, p := range boundary {
		f.Boundary[i] = point(p)
	}

	f.Obstacles = make([]Obstacle, w.Len())
	for i := range w.Len() {
		verts := w.At(i).WorldVertices()
		o := Obstacle{Name: w.ObstacleName(i), Vertices: make([]Point, len(verts))}
		for j, v := range verts {
			o.Vertices[j] = point(v)
		}
		f.Obstacles[i] = o
	}

	entries := w.Objects()
	f.Objects = make([]Object, len(entries))
	for i, e := range entries {
		o := Object{
			ID:    e.ID.String(),
			Kind:  e.Kind.String(),
			Name:  e.Name,
			X:     e.Position.X,
			Y:     e.Position.Y,
			State: e.Fog.State().String(),
		}
		if e.Fog.State() != visibility.StateHidden {
			tint := visibility.Tint(e.Fog)
			o.Tint = visibility.Hex(tint)
			o.Alpha = tint.A
		}
		f.Objects[i] = o
	}
	return f
}
