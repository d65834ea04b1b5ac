package dodge

import "github.com/vovakirdan/astrododge/internal/engine"

// HitKind records what ended a round.
type HitKind int

const (
	HitNone HitKind = iota
	HitObstacle
	HitPursuer
)

// String returns the name used in logs.
func (k HitKind) String() string {
	switch k {
	case HitObstacle:
		return "obstacle"
	case HitPursuer:
		return "pursuer"
	default:
		return "none"
	}
}

// resolveCollisions ends the round on the first overlap between the player
// and any live obstacle or pursuer. The struck entity is removed. Both kinds
// of hit end the round the same way.
func (g *Game) resolveCollisions() {
	if !g.session.Playing() {
		return
	}
	player := g.player.Body

	if h, ok := g.obstacles.Find(func(_ engine.Handle, o *Obstacle) bool {
		return engine.Overlaps(player, o.Body)
	}); ok {
		g.obstacles.Kill(h)
		g.endRound(HitObstacle)
		return
	}

	if h, ok := g.pursuers.Find(func(_ engine.Handle, p *Pursuer) bool {
		return engine.Overlaps(player, p.Body)
	}); ok {
		g.pursuers.Kill(h)
		g.endRound(HitPursuer)
	}
}

// endRound performs the Playing -> GameOver side effects outside the session:
// physics stops and the player is marked dead.
func (g *Game) endRound(kind HitKind) {
	if !g.session.End() {
		return
	}
	g.world.Pause()
	g.player.Alive = false
	g.lastHit = kind

	g.logger.Info("round over",
		"hit", kind,
		"score", g.session.Score,
		"high_score", g.session.HighScore,
		"ticks", g.tick,
	)
}
