package dodge

import (
	"github.com/vovakirdan/astrododge/internal/config"
	"github.com/vovakirdan/astrododge/internal/core"
)

// Held is the set of directional inputs held during a tick.
type Held struct {
	Up, Down, Left, Right bool
}

// HeldFrom extracts the directional actions from an input frame.
func HeldFrom(in core.InputFrame) Held {
	return Held{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Tuning holds the player handling parameters.
type Tuning struct {
	Step    float64 // Velocity change per tick
	Max     float64 // Per-axis limit
	Damping float64 // Decay multiplier with no input
}

// TuningFrom builds handling parameters from the player config.
func TuningFrom(p config.PlayerConfig) Tuning {
	return Tuning{Step: p.AccelStep, Max: p.MaxSpeed, Damping: p.Damping}
}

// Steer returns the player velocity for this tick given the held directions
// and last tick's velocity. Each axis accelerates by Step toward the held
// direction up to Max, or decays by Damping when released. The negative sense
// wins when both are held.
func Steer(h Held, prev core.Vec2, t Tuning) core.Vec2 {
	return core.Vec2{
		X: steerAxis(h.Left, h.Right, prev.X, t),
		Y: steerAxis(h.Up, h.Down, prev.Y, t),
	}
}

func steerAxis(neg, pos bool, v float64, t Tuning) float64 {
	switch {
	case neg:
		return core.ClampF(v-t.Step, -t.Max, t.Max)
	case pos:
		return core.ClampF(v+t.Step, -t.Max, t.Max)
	default:
		return v * t.Damping
	}
}
