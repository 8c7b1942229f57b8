package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/visibility"
)

const dt = 1.0 / 60

// testLevel has one wall across the line of sight at y=490..510.
func testLevel() config.LevelConfig {
	return config.LevelConfig{
		ID:     "test",
		Bounds: config.RectConfig{W: 2000, H: 2000},
		Facing: config.Vec{Y: 1},
		Obstacles: []config.ObstacleConfig{
			{Name: "wall", Rect: &config.RectConfig{X: 0, Y: 500, W: 200, H: 20}},
		},
		Objects: []config.ObjectConfig{
			{Kind: config.KindLandmark, Name: "Front", Position: config.Vec{X: 10, Y: 300}},
			{Kind: config.KindLandmark, Name: "Behind", Position: config.Vec{X: 10, Y: 700}},
			{Kind: config.KindLoot, Name: "Coin", Position: config.Vec{X: 30, Y: 0}},
			{Kind: config.KindLoot, Name: "Gem", Count: 3, Position: config.Vec{X: 20, Y: 40}, Color: "#00ff00"},
		},
	}
}

func byName(t *testing.T, w *World, name string) Entry {
	t.Helper()
	for _, e := range w.Objects() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no object named %q", name)
	return Entry{}
}

func TestNewWorld(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())

	assert.Equal(t, 1, w.Len())
	assert.Equal(t, "wall", w.ObstacleName(0))
	assert.Empty(t, w.Boundary(), "boundary is empty before the first tick")
	assert.Equal(t, visibility.V(0, 1), w.Player().Facing)
	assert.InDelta(t, math.Pi/2, w.Cone().Angle, 1e-12)
	assert.Equal(t, 100.0, w.Player().Stamina)

	objs := w.Objects()
	require.Len(t, objs, 4)
	assert.Equal(t, "Front", objs[0].Name)
	assert.Equal(t, KindLoot, objs[3].Kind)
	assert.Equal(t, 1, objs[2].Count, "loot count defaults to 1")
	assert.Equal(t, 3, objs[3].Count)
	assert.Equal(t, visibility.StateHidden, objs[0].Fog.State())
}

func TestTickClassifiesThroughWalls(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())
	rep := w.Tick(Intent{}, dt)

	assert.Equal(t, 1, rep.Tick)
	assert.Equal(t, 2, rep.Visible)
	assert.Len(t, rep.Discovered, 2)

	assert.Equal(t, visibility.StateVisible, byName(t, w, "Front").Fog.State())
	assert.Equal(t, visibility.StateHidden, byName(t, w, "Behind").Fog.State(), "wall blocks sight")
	assert.Equal(t, visibility.StateHidden, byName(t, w, "Coin").Fog.State(), "outside the cone")
	assert.Equal(t, visibility.StateVisible, byName(t, w, "Gem").Fog.State())

	assert.Equal(t, 2, w.DiscoveredCount())
	total, seen := w.CountKind(KindLandmark)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, seen)
}

func TestDiscoveryPersists(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())
	w.Tick(Intent{}, dt)

	rep := w.Tick(Intent{Turn: math.Pi}, dt)
	assert.Empty(t, rep.Discovered)
	assert.Equal(t, 0, rep.Visible)

	front := byName(t, w, "Front")
	assert.False(t, front.Fog.Visible)
	assert.True(t, front.Fog.Discovered)
	assert.Equal(t, visibility.StateDiscovered, front.Fog.State())
	assert.Equal(t, 2, w.DiscoveredCount())
}

func TestFan(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())
	w.Tick(Intent{}, dt)

	fan := w.Fan()
	require.Len(t, fan, len(w.Boundary())+1)
	assert.Equal(t, w.Player().Position, fan[0])

	fan[0] = visibility.V(9, 9)
	assert.Equal(t, w.Player().Position, w.Fan()[0], "Fan returns a copy")
}

func TestPickupRequiresDiscovery(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())
	w.Tick(Intent{}, dt)

	gem := byName(t, w, "Gem")
	assert.Equal(t, []ObjectID{gem.ID}, w.Candidates(), "undiscovered coin is not a candidate")

	sel, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, gem.ID, sel)

	rep := w.Tick(Intent{Interact: true}, dt)
	require.Len(t, rep.Picked, 1)
	assert.Equal(t, Pickup{ID: gem.ID, Name: "Gem", Count: 3}, rep.Picked[0])

	_, ok = w.Object(gem.ID)
	assert.False(t, ok)
	assert.False(t, w.Remove(gem.ID), "handle is stale after pickup")
	assert.Empty(t, w.Candidates())
	assert.Len(t, w.Objects(), 3)
	assert.Equal(t, 2, w.DiscoveredCount(), "picked loot still counts as discovered")
}

func TestPickupCycle(t *testing.T) {
	lvl := testLevel()
	lvl.Objects = append(lvl.Objects, config.ObjectConfig{
		Kind: config.KindLoot, Name: "Ring", Position: config.Vec{X: -20, Y: 40},
	})
	w := New(lvl, config.DefaultScoutConfig())
	w.Tick(Intent{}, dt)

	gem, ring := byName(t, w, "Gem"), byName(t, w, "Ring")
	require.Equal(t, []ObjectID{gem.ID, ring.ID}, w.Candidates())

	w.Tick(Intent{Cycle: true}, dt)
	sel, _ := w.Selected()
	assert.Equal(t, ring.ID, sel)

	// Unchanged candidate set keeps the selection.
	w.Tick(Intent{}, dt)
	sel, _ = w.Selected()
	assert.Equal(t, ring.ID, sel)

	rep := w.Tick(Intent{Interact: true}, dt)
	require.Len(t, rep.Picked, 1)
	assert.Equal(t, "Ring", rep.Picked[0].Name)

	sel, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, gem.ID, sel, "selection resets when the set changes")

	w.Tick(Intent{Cycle: true}, dt)
	sel, _ = w.Selected()
	assert.Equal(t, gem.ID, sel, "cycling a single candidate wraps")
}

func TestMovementBlocked(t *testing.T) {
	tests := []struct {
		name  string
		spawn config.Vec
		move  visibility.Vec2
		want  visibility.Vec2
	}{
		{"free", config.Vec{}, visibility.V(0, 1), visibility.V(0, 8.5)},
		{"wall", config.Vec{Y: 485}, visibility.V(0, 1), visibility.V(0, 485)},
		{"slide along wall", config.Vec{Y: 485}, visibility.V(1, 1), visibility.V(8.5/math.Sqrt2, 485)},
		{"bounds", config.Vec{X: 965}, visibility.V(1, 0), visibility.V(965, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := testLevel()
			lvl.Spawn = tc.spawn
			w := New(lvl, config.DefaultScoutConfig())
			w.Tick(Intent{Move: tc.move}, 0.1)

			got := w.Player().Position
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestStamina(t *testing.T) {
	cfg := config.DefaultScoutConfig()
	cfg.Player.StaminaDrain = 50
	cfg.Player.StaminaRegen = 50
	lvl := testLevel()
	lvl.Bounds = config.RectConfig{W: 100000, H: 100000}
	lvl.Obstacles = nil
	w := New(lvl, cfg)

	run := Intent{Move: visibility.V(1, 0), Run: true}

	w.Tick(run, 1)
	p := w.Player()
	assert.True(t, p.Running)
	assert.Equal(t, 50.0, p.Stamina)
	assert.InDelta(t, 170, p.Position.X, 1e-9)

	w.Tick(run, 1)
	p = w.Player()
	assert.Equal(t, StatusExhausted, p.Status)
	assert.False(t, p.Running)
	assert.Equal(t, 0.0, p.Stamina)
	assert.InDelta(t, 255, p.Position.X, 1e-9, "exhaustion drops to walk speed")

	// Exhausted players cannot run and recover to full first.
	w.Tick(run, 1)
	p = w.Player()
	assert.False(t, p.Running)
	assert.Equal(t, StatusExhausted, p.Status)
	assert.Equal(t, 50.0, p.Stamina)

	w.Tick(Intent{}, 1)
	p = w.Player()
	assert.Equal(t, StatusNormal, p.Status)
	assert.Equal(t, 100.0, p.Stamina)

	// Holding run without moving does not drain.
	w.Tick(Intent{Run: true}, 1)
	assert.Equal(t, 100.0, w.Player().Stamina)
}

func TestAimTurnRate(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())

	in := Intent{Aim: visibility.V(1000, 0), HasAim: true}
	w.Tick(in, 0.125) // 360 deg/s -> 45 deg per tick
	assert.InDelta(t, math.Pi/4, w.Player().Facing.Angle(), 1e-9)
	assert.Equal(t, w.Player().Facing, w.Cone().Direction)

	w.Tick(in, 0.125)
	assert.InDelta(t, 0, w.Player().Facing.Angle(), 1e-9)

	// Aligned: direction is refreshed, not changed.
	w.Tick(in, 0.125)
	assert.InDelta(t, 0, w.Player().Facing.Angle(), 1e-9)

	w.Tick(Intent{Turn: -math.Pi / 2}, dt)
	assert.InDelta(t, -math.Pi/2, w.Player().Facing.Angle(), 1e-9)

	// Aiming at the player's own position keeps the facing.
	w.Tick(Intent{Aim: w.Player().Position, HasAim: true}, dt)
	assert.InDelta(t, -math.Pi/2, w.Player().Facing.Angle(), 1e-9)
}

func TestSetCone(t *testing.T) {
	w := New(testLevel(), config.DefaultScoutConfig())
	w.SetCone(200, math.Pi/2)
	rep := w.Tick(Intent{}, dt)

	assert.Equal(t, 1, rep.Visible, "only the gem is within 200 units")
	for _, p := range w.Boundary() {
		assert.LessOrEqual(t, p.Dist(w.Player().Position), 200+1e-9)
	}
}

func TestArenaHandles(t *testing.T) {
	w := New(config.LevelConfig{Bounds: config.RectConfig{W: 10, H: 10}}, config.DefaultScoutConfig())

	var zero ObjectID
	assert.True(t, zero.IsZero())
	_, ok := w.Object(zero)
	assert.False(t, ok)

	a := w.Spawn(visibility.Object{Position: visibility.V(1, 0)}, Meta{Name: "a"})
	b := w.Spawn(visibility.Object{Position: visibility.V(2, 0)}, Meta{Name: "b"})
	c := w.Spawn(visibility.Object{Position: visibility.V(3, 0)}, Meta{Name: "c"})
	assert.False(t, a.IsZero())

	require.True(t, w.Remove(a))
	assert.False(t, w.Remove(a))

	// c was swapped into a's dense slot and must still resolve.
	e, ok := w.Object(c)
	require.True(t, ok)
	assert.Equal(t, "c", e.Name)
	assert.Equal(t, visibility.V(3, 0), e.Position)

	d := w.Spawn(visibility.Object{}, Meta{Name: "d"})
	assert.NotEqual(t, a, d, "reused slot gets a new generation")
	_, ok = w.Object(a)
	assert.False(t, ok)

	names := []string{}
	for _, e := range w.Objects() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"b", "c", "d"}, names)

	e, ok = w.Object(b)
	require.True(t, ok)
	assert.Equal(t, "b", e.Name)
}

func TestBuiltinLevels(t *testing.T) {
	for _, id := range []string{"proving_grounds", "warehouse", "courtyard"} {
		t.Run(id, func(t *testing.T) {
			lvl, err := config.LoadLevel(id)
			require.NoError(t, err)

			w := New(lvl, config.DefaultScoutConfig())
			rep := w.Tick(Intent{}, dt)

			assert.Equal(t, len(lvl.Obstacles), w.Len())
			assert.NotEmpty(t, w.Boundary())
			assert.Equal(t, rep.Visible, len(rep.Discovered), "first tick discovers exactly what is visible")
			assert.True(t, w.Bounds().Contains(w.Player().Position, 0))
		})
	}
}

func TestTurnToward(t *testing.T) {
	up := visibility.V(0, 1)

	got := turnToward(up, visibility.V(-1, 0), math.Pi/4)
	assert.InDelta(t, 3*math.Pi/4, got.Angle(), 1e-9, "turns counter-clockwise toward the left")

	got = turnToward(up, visibility.V(1, 0), math.Pi/4)
	assert.InDelta(t, math.Pi/4, got.Angle(), 1e-9)

	got = turnToward(up, visibility.V(0, -1), math.Pi)
	assert.InDelta(t, -math.Pi/2, got.Angle(), 1e-9)
}
