// Package world owns one scouting scene: the player whose cone drives
// visibility, the obstacle catalog and every fog-tracked object. Objects
// live in an arena behind generational handles, and each Tick runs
// movement, aim, sampling, classification and pickup in that order.
package world

import (
	"math"
	"sort"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/visibility"
)

// Intent is the player's input for one tick.
type Intent struct {
	Move     visibility.Vec2 // desired direction, any length
	Run      bool
	Aim      visibility.Vec2 // world point to turn toward
	HasAim   bool
	Turn     float64 // immediate rotation in radians, counter-clockwise
	Cycle    bool    // advance the pickup selection
	Interact bool    // pick up the selected candidate
}

// Pickup describes loot removed from the world during a tick.
type Pickup struct {
	ID    ObjectID
	Name  string
	Count int
}

// TickReport summarises what changed during a tick.
type TickReport struct {
	Tick       int
	Visible    int
	Discovered []ObjectID // objects seen for the first time
	Picked     []Pickup
}

// World is a single scouting scene.
type World struct {
	cfg    config.PlayerConfig
	bounds Bounds

	obstacles     visibility.Obstacles
	obstacleNames []string

	objects arena
	player  Player
	cone    visibility.Cone

	sampler    *visibility.Sampler
	classifier visibility.Classifier
	observer   visibility.Vec2
	boundary   visibility.Polygon

	candidates []ObjectID
	selected   int

	ticks      int
	discovered int
}

// New builds a world from a level and the scouting config. The visibility
// boundary stays empty until the first Tick.
func New(lvl config.LevelConfig, cfg config.ScoutConfig) *World {
	w := &World{
		cfg:     cfg.Player,
		bounds:  boundsOf(lvl.Bounds),
		sampler: visibility.NewSampler(),
	}
	if cfg.Sampler.UniformSamples > 0 {
		w.sampler.UniformSamples = cfg.Sampler.UniformSamples
	}
	if cfg.Sampler.CornerEpsilon > 0 {
		w.sampler.CornerEpsilon = cfg.Sampler.CornerEpsilon
	}

	for _, o := range lvl.Obstacles {
		w.obstacles = append(w.obstacles, buildObstacle(o))
		w.obstacleNames = append(w.obstacleNames, o.Name)
	}
	for _, o := range lvl.Objects {
		obj, m := buildObject(o)
		w.objects.spawn(obj, m)
	}

	facing := vec(lvl.Facing).Normalize()
	if facing == (visibility.Vec2{}) {
		facing = visibility.V(0, 1)
	}
	w.player = Player{
		Position: vec(lvl.Spawn),
		Facing:   facing,
		Radius:   cfg.Player.Radius,
		Speed:    cfg.Player.WalkSpeed,
		Stamina:  cfg.Player.StaminaMax,
	}
	w.cone = visibility.Cone{
		Range:     cfg.Cone.Range,
		Angle:     cfg.Cone.AngleDeg * math.Pi / 180,
		Direction: facing,
	}
	w.observer = w.player.Position
	return w
}

// Len implements visibility.Catalog.
func (w *World) Len() int { return len(w.obstacles) }

// At implements visibility.Catalog.
func (w *World) At(i int) visibility.Obstacle { return w.obstacles[i] }

// ObstacleName returns the level name of obstacle i.
func (w *World) ObstacleName(i int) string { return w.obstacleNames[i] }

// Bounds returns the walkable area.
func (w *World) Bounds() Bounds { return w.bounds }

// Player returns a copy of the player state.
func (w *World) Player() Player { return w.player }

// Cone returns the current vision cone.
func (w *World) Cone() visibility.Cone { return w.cone }

// SetCone changes the cone's range and full aperture in radians.
// It takes effect on the next Tick.
func (w *World) SetCone(rng, angle float64) {
	w.cone.Range = rng
	w.cone.Angle = angle
}

// Observer returns the observer used by the next visibility computation.
func (w *World) Observer() visibility.Observer {
	return visibility.Observer{Position: w.player.Position, Cone: w.cone}
}

// Boundary returns the visibility boundary of the last Tick. It is replaced,
// not mutated, by later ticks.
func (w *World) Boundary() visibility.Polygon { return w.boundary }

// Fan returns a fresh copy of the last tick's fan: the observer position
// followed by the boundary.
func (w *World) Fan() visibility.Polygon {
	fan := make(visibility.Polygon, 0, len(w.boundary)+1)
	fan = append(fan, w.observer)
	return append(fan, w.boundary...)
}

// Spawn adds a tracked object and returns its handle.
func (w *World) Spawn(obj visibility.Object, m Meta) ObjectID {
	return w.objects.spawn(obj, m)
}

// Remove deletes a tracked object together with its fog state.
// It returns false for stale handles.
func (w *World) Remove(id ObjectID) bool {
	return w.objects.remove(id)
}

// Object looks up a tracked object by handle.
func (w *World) Object(id ObjectID) (Entry, bool) {
	i, ok := w.objects.lookup(id)
	if !ok {
		return Entry{}, false
	}
	return w.objects.entry(i), true
}

// Objects returns copies of all tracked objects in spawn order.
func (w *World) Objects() []Entry {
	out := make([]Entry, w.objects.len())
	for i := range out {
		out[i] = w.objects.entry(i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// CountKind returns how many live objects of kind k exist and how many of
// them have been discovered.
func (w *World) CountKind(k Kind) (total, discovered int) {
	for i := range w.objects.meta {
		if w.objects.meta[i].Kind != k {
			continue
		}
		total++
		if w.objects.objects[i].Fog.Discovered {
			discovered++
		}
	}
	return total, discovered
}

// Candidates returns the loot currently in pickup range, in spawn order.
func (w *World) Candidates() []ObjectID {
	return append([]ObjectID(nil), w.candidates...)
}

// Selected returns the highlighted pickup candidate.
func (w *World) Selected() (ObjectID, bool) {
	if len(w.candidates) == 0 {
		return ObjectID{}, false
	}
	return w.candidates[w.selected], true
}

// TickCount returns the number of ticks run so far.
func (w *World) TickCount() int { return w.ticks }

// DiscoveredCount returns how many objects have ever been discovered,
// including loot that has since been picked up.
func (w *World) DiscoveredCount() int { return w.discovered }

// Tick advances the world by dt seconds.
func (w *World) Tick(in Intent, dt float64) TickReport {
	w.ticks++
	rep := TickReport{Tick: w.ticks}

	w.move(in, dt)
	w.aim(in, dt)

	w.observer = w.player.Position
	w.boundary = w.sampler.Compute(w.Observer(), w)

	before := make([]bool, w.objects.len())
	for i := range w.objects.objects {
		before[i] = w.objects.objects[i].Fog.Discovered
	}
	rep.Visible = w.classifier.Classify(w.observer, w.boundary, w.objects.objects)
	for i := range w.objects.objects {
		if !before[i] && w.objects.objects[i].Fog.Discovered {
			rep.Discovered = append(rep.Discovered, w.objects.ids[i])
		}
	}
	w.discovered += len(rep.Discovered)

	w.detectPickups()
	if in.Cycle && len(w.candidates) > 0 {
		w.selected = (w.selected + 1) % len(w.candidates)
	}
	if in.Interact {
		if id, ok := w.Selected(); ok {
			e, _ := w.Object(id)
			w.objects.remove(id)
			rep.Picked = append(rep.Picked, Pickup{ID: id, Name: e.Name, Count: e.Count})
			w.detectPickups()
		}
	}
	return rep
}

// move applies stamina and per-axis movement. An axis step is rejected when
// it would leave the bounds or put the player centre inside an obstacle.
func (w *World) move(in Intent, dt float64) {
	dir := in.Move.Normalize()
	moving := dir != (visibility.Vec2{})
	w.player.updateStamina(w.cfg, in.Run, moving, dt)
	if !moving {
		return
	}

	step := dir.Mul(w.player.Speed * dt)
	for _, d := range []visibility.Vec2{{X: step.X}, {Y: step.Y}} {
		if d == (visibility.Vec2{}) {
			continue
		}
		next := w.player.Position.Add(d)
		if w.blocked(next) {
			continue
		}
		w.player.Position = next
	}
}

func (w *World) blocked(p visibility.Vec2) bool {
	if !w.bounds.Contains(p, w.player.Radius) {
		return true
	}
	for _, o := range w.obstacles {
		if o.Contains(p) {
			return true
		}
	}
	return false
}

// aim applies the keyboard nudge, then turns toward the aim point at the
// configured turn rate. The cone always looks along the facing.
func (w *World) aim(in Intent, dt float64) {
	if in.Turn != 0 {
		w.player.Facing = w.player.Facing.Rotate(in.Turn).Normalize()
	}
	if in.HasAim {
		maxStep := w.cfg.TurnRateDeg * math.Pi / 180 * dt
		w.player.Facing = turnToward(w.player.Facing, in.Aim.Sub(w.player.Position), maxStep)
	}
	w.cone.Direction = w.player.Facing
}

// detectPickups rebuilds the candidate list: discovered loot within pickup
// range, in spawn order. The selection resets whenever the set changes.
func (w *World) detectPickups() {
	type cand struct {
		id  ObjectID
		seq uint64
	}
	var found []cand
	for i := range w.objects.objects {
		m := w.objects.meta[i]
		obj := w.objects.objects[i]
		if m.Kind != KindLoot || !obj.Fog.Discovered {
			continue
		}
		if obj.Position.Dist(w.player.Position) <= w.cfg.PickupRadius {
			found = append(found, cand{id: w.objects.ids[i], seq: m.seq})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })

	changed := len(found) != len(w.candidates)
	if !changed {
		for i := range found {
			if found[i].id != w.candidates[i] {
				changed = true
				break
			}
		}
	}
	if !changed {
		return
	}

	w.candidates = w.candidates[:0]
	for _, c := range found {
		w.candidates = append(w.candidates, c.id)
	}
	w.selected = 0
}
