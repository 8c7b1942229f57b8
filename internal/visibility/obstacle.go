package visibility

// Obstacle is a simple polygon stored as local vertices around a world anchor.
// World vertex i is Anchor + Vertices[i]. Edges run between consecutive
// vertices and wrap from the last vertex back to the first.
type Obstacle struct {
	Anchor   Vec2
	Vertices []Vec2
}

// Rect builds an axis-aligned rectangle obstacle of size w x h centred on center.
func Rect(center Vec2, w, h float64) Obstacle {
	hw, hh := w/2, h/2
	return Obstacle{
		Anchor: center,
		Vertices: []Vec2{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
		},
	}
}

// WorldVertex returns vertex i in world space.
func (o Obstacle) WorldVertex(i int) Vec2 {
	return o.Anchor.Add(o.Vertices[i])
}

// WorldVertices returns all vertices in world space.
func (o Obstacle) WorldVertices() []Vec2 {
	out := make([]Vec2, len(o.Vertices))
	for i := range o.Vertices {
		out[i] = o.WorldVertex(i)
	}
	return out
}

// EdgeCount returns the number of edges that take part in ray tests.
// Degenerate obstacles (fewer than 3 vertices) have none.
func (o Obstacle) EdgeCount() int {
	if len(o.Vertices) < 3 {
		return 0
	}
	return len(o.Vertices)
}

// Edge returns edge i in world space, from vertex i to vertex i+1 (wrapping).
func (o Obstacle) Edge(i int) (Vec2, Vec2) {
	j := i + 1
	if j == len(o.Vertices) {
		j = 0
	}
	return o.WorldVertex(i), o.WorldVertex(j)
}

// Contains reports whether p is inside the obstacle.
func (o Obstacle) Contains(p Vec2) bool {
	if len(o.Vertices) < 3 {
		return false
	}
	return PointInPolygon(p.Sub(o.Anchor), o.Vertices)
}

// Catalog is a read-only view of the obstacles in effect for one visibility
// computation. Implementations must not change while a computation runs.
type Catalog interface {
	Len() int
	At(i int) Obstacle
}

// Obstacles is a slice-backed Catalog.
type Obstacles []Obstacle

// Len implements Catalog.
func (o Obstacles) Len() int { return len(o) }

// At implements Catalog.
func (o Obstacles) At(i int) Obstacle { return o[i] }
