package dodge

import (
	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/engine"
)

// Pursuer is a homing enemy.
type Pursuer struct {
	Body engine.Body
}

// Chase returns a velocity of the given speed aimed from one point at another.
// Coincident points give a zero velocity.
func Chase(from, to core.Vec2, speed float64) core.Vec2 {
	return to.Sub(from).Normalize().Scale(speed)
}

// steerPursuers re-aims every active pursuer at the player's current center
// using the shared target speed.
func (g *Game) steerPursuers() {
	if !g.session.Playing() {
		return
	}
	target := g.player.Body.Pos
	g.pursuers.Each(func(_ engine.Handle, p *Pursuer) {
		p.Body.Vel = Chase(p.Body.Pos, target, g.pursuerSpeed)
	})
}
