package visibility

import "github.com/gogpu/gg"

// Fog is the fog-of-war memory of one tracked object.
//
// Discovered never goes back to false, and after Observe, Visible implies
// Discovered. Appearance is opaque to the classifier and only read by Tint.
type Fog struct {
	Visible    bool
	Discovered bool
	Appearance gg.RGBA
}

// NewFog creates undiscovered fog state for an object drawn with appearance.
func NewFog(appearance gg.RGBA) Fog {
	return Fog{Appearance: appearance}
}

// Observe records this tick's visibility.
func (f *Fog) Observe(visible bool) {
	f.Visible = visible
	if visible {
		f.Discovered = true
	}
}

// State is the three-tier memory level derived from a Fog.
type State int

const (
	StateHidden     State = iota // never seen
	StateDiscovered              // seen before, not now
	StateVisible                 // inside the current fan
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateDiscovered:
		return "discovered"
	case StateVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// State returns the memory tier.
func (f Fog) State() State {
	switch {
	case f.Visible:
		return StateVisible
	case f.Discovered:
		return StateDiscovered
	default:
		return StateHidden
	}
}

// Object is an owned, fog-tracked object record.
type Object struct {
	Position Vec2
	Fog      Fog
}

// Classifier tests tracked objects against the observer's visibility fan.
type Classifier struct {
	fan Polygon
}

// Fan returns the apex-anchored fan: the observer followed by the boundary.
// The closing edge back to the apex is implicit in the parity test.
// The returned slice is reused by the next call.
func (c *Classifier) Fan(observer Vec2, boundary Polygon) Polygon {
	c.fan = append(c.fan[:0], observer)
	c.fan = append(c.fan, boundary...)
	return c.fan
}

// Classify updates every object's fog from the current fan and returns the
// number of objects visible this tick. It must run every tick; nothing is
// cached between calls.
func (c *Classifier) Classify(observer Vec2, boundary Polygon, objects []Object) int {
	fan := c.Fan(observer, boundary)
	visible := 0
	for i := range objects {
		in := PointInPolygon(objects[i].Position, fan)
		objects[i].Fog.Observe(in)
		if in {
			visible++
		}
	}
	return visible
}

// Sees reports whether p is inside the fan built by the last Classify or Fan call.
func (c *Classifier) Sees(p Vec2) bool {
	return PointInPolygon(p, c.fan)
}
