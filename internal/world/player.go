package world

import (
	"math"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/visibility"
)

// Status is the player's stamina state.
type Status int

const (
	StatusNormal Status = iota
	StatusExhausted
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Player is the observer the vision cone belongs to.
type Player struct {
	Position visibility.Vec2
	Facing   visibility.Vec2 // unit vector, the cone bisector
	Radius   float64
	Speed    float64
	Stamina  float64
	Status   Status
	Running  bool
}

// updateStamina applies one tick of running and recovery. Running needs
// movement and a normal status; draining to zero exhausts the player, who
// then recovers to full before running again.
func (p *Player) updateStamina(cfg config.PlayerConfig, run, moving bool, dt float64) {
	p.Running = run && moving && p.Status == StatusNormal
	if p.Running {
		p.Speed = cfg.RunSpeed
		p.Stamina = math.Max(p.Stamina-cfg.StaminaDrain*dt, 0)
		if p.Stamina == 0 {
			p.Status = StatusExhausted
			p.Speed = cfg.WalkSpeed
			p.Running = false
		}
		return
	}

	p.Speed = cfg.WalkSpeed
	p.Stamina = math.Min(p.Stamina+cfg.StaminaRegen*dt, cfg.StaminaMax)
	if p.Status == StatusExhausted && p.Stamina >= cfg.StaminaMax {
		p.Status = StatusNormal
	}
}

// turnToward rotates facing toward dir by at most maxStep radians.
// A zero dir leaves facing unchanged.
func turnToward(facing, dir visibility.Vec2, maxStep float64) visibility.Vec2 {
	want := dir.Normalize()
	if want == (visibility.Vec2{}) {
		return facing
	}
	cos := math.Max(-1, math.Min(1, facing.Dot(want)))
	angle := math.Acos(cos)
	if angle <= maxStep {
		return want
	}
	if facing.Cross(want) < 0 {
		maxStep = -maxStep
	}
	return facing.Rotate(maxStep).Normalize()
}
