package scout

import "math"

// Snapshot contains the observable game state for determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Score     int
	State     string
	Collected int
	TicksLeft int

	PlayerX, PlayerY float64
	FacingX, FacingY float64
	Stamina          float64

	// Fog state per tracked object in spawn order (each object is 2 ints:
	// Visible, Discovered)
	ObjectCount int
	FogData     []int

	BoundaryLen int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:     g.score,
		State:     g.state,
		Collected: g.collected,
		TicksLeft: g.ticksLeft,
	}
	if g.world == nil {
		return snap
	}

	p := g.world.Player()
	snap.PlayerX, snap.PlayerY = p.Position.X, p.Position.Y
	snap.FacingX, snap.FacingY = p.Facing.X, p.Facing.Y
	snap.Stamina = p.Stamina

	objects := g.world.Objects()
	snap.ObjectCount = len(objects)
	snap.FogData = make([]int, len(objects)*2)
	for i, e := range objects {
		if e.Fog.Visible {
			snap.FogData[i*2] = 1
		}
		if e.Fog.Discovered {
			snap.FogData[i*2+1] = 1
		}
	}
	snap.BoundaryLen = len(g.world.Boundary())
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TicksLeft) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, f := range []float64{snap.PlayerX, snap.PlayerY, snap.FacingX, snap.FacingY, snap.Stamina} {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + uint64(snap.ObjectCount) //#nosec G115 -- hash computation
	for _, v := range snap.FogData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.BoundaryLen) //#nosec G115 -- hash computation
	return h
}
