package dodge

import "time"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick            uint64
	Now             time.Duration
	State           State
	Score           int
	HighScore       int
	PlayerX         float64
	PlayerY         float64
	VelX            float64
	VelY            float64
	Obstacles       int
	Pursuers        int
	PursuerSpeed    float64
	PursuerInterval time.Duration
	Paused          bool
	Struck          bool
	Overlay         bool
	LastHit         HitKind
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		Now:             g.clock.Now(),
		State:           g.session.State,
		Score:           g.session.Score,
		HighScore:       g.session.HighScore,
		PlayerX:         g.player.Body.Pos.X,
		PlayerY:         g.player.Body.Pos.Y,
		VelX:            g.player.Body.Vel.X,
		VelY:            g.player.Body.Vel.Y,
		Obstacles:       g.obstacles.ActiveCount(),
		Pursuers:        g.pursuers.ActiveCount(),
		PursuerSpeed:    g.pursuerSpeed,
		PursuerInterval: g.pursuerInterval,
		Paused:          g.paused,
		Struck:          g.session.Struck,
		Overlay:         g.session.Overlay,
		LastHit:         g.lastHit,
	}
}
