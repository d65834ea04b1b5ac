package dodge

import (
	"time"

	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/engine"
)

// Variant is the display size of an obstacle. It does not affect speed.
type Variant int

const (
	VariantLarge Variant = iota
	VariantSmall
)

// Obstacle is a ballistic asteroid. Its velocity is fixed at spawn.
type Obstacle struct {
	Body    engine.Body
	Variant Variant
}

// Edge is one side of the arena.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// edgePosition picks a uniformly random edge, then a uniformly random point
// along it, so entities always enter from the boundary.
func (g *Game) edgePosition() core.Vec2 {
	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height

	switch Edge(g.rng.Pick(4)) {
	case EdgeTop:
		return core.Vec2{X: float64(g.rng.Between(0, int(w))), Y: 0}
	case EdgeBottom:
		return core.Vec2{X: float64(g.rng.Between(0, int(w))), Y: h}
	case EdgeLeft:
		return core.Vec2{X: 0, Y: float64(g.rng.Between(0, int(h)))}
	default:
		return core.Vec2{X: w, Y: float64(g.rng.Between(0, int(h)))}
	}
}

// armSpawners schedules the obstacle and pursuer timers for a fresh round.
// Timers are never cancelled; each callback checks the session instead.
func (g *Game) armSpawners() {
	g.sched.Every(g.cfg.Obstacles.SpawnInterval(), g.spawnObstacles)

	pc := g.cfg.Pursuers
	g.sched.After(pc.FirstDelay(), g.spawnPursuer)
	g.pursuerInterval = time.Duration(g.rng.Between(pc.MinIntervalMs, pc.MaxIntervalMs)) * time.Millisecond
	g.sched.Every(g.pursuerInterval, g.spawnPursuer)
}

// spawnObstacles tops the asteroid population up to the score-dependent cap
// in one burst. Stops early if the pool cannot provide a slot.
func (g *Game) spawnObstacles() {
	if !g.session.Playing() {
		return
	}
	limit := g.difficulty.ObstacleCap(g.session.Score)
	for g.obstacles.ActiveCount() < limit {
		if !g.spawnObstacle() {
			return
		}
	}
}

// spawnObstacle places one asteroid on an edge, aimed at the arena center.
func (g *Game) spawnObstacle() bool {
	oc := g.cfg.Obstacles
	pos := g.edgePosition()

	variant := Variant(g.rng.Pick(2))
	size := oc.LargeSize
	if variant == VariantSmall {
		size = oc.SmallSize
	}

	center := g.world.Center()
	angle := core.AngleBetween(pos.X, pos.Y, center.X, center.Y)
	speed := g.difficulty.Speed(float64(g.rng.Between(oc.MinSpeed, oc.MaxSpeed)))

	h, ok := g.obstacles.Spawn(Obstacle{
		Body: engine.Body{
			Pos: pos,
			Vel: core.FromAngle(angle, speed),
			W:   size,
			H:   size,
		},
		Variant: variant,
	})
	if !ok {
		return false
	}

	g.logger.Debug("obstacle spawned", "slot", h, "x", pos.X, "y", pos.Y, "speed", speed, "active", g.obstacles.ActiveCount())
	return true
}

// spawnPursuer places one pursuer on an edge and re-rolls the speed shared by
// all pursuers. A full pool leaves the speed untouched.
func (g *Game) spawnPursuer() {
	if !g.session.Playing() {
		return
	}
	pc := g.cfg.Pursuers
	pos := g.edgePosition()

	h, ok := g.pursuers.Spawn(Pursuer{
		Body: engine.Body{Pos: pos, W: pc.Size, H: pc.Size},
	})
	if !ok {
		return
	}
	g.pursuerSpeed = g.difficulty.Speed(float64(g.rng.Between(pc.MinSpeed, pc.MaxSpeed)))

	g.logger.Debug("pursuer spawned", "slot", h, "x", pos.X, "y", pos.Y, "speed", g.pursuerSpeed, "active", g.pursuers.ActiveCount())
}

// cullObstacles recycles asteroids that have flown well past the arena.
func (g *Game) cullObstacles() {
	margin := g.cfg.Obstacles.CullMargin
	g.obstacles.Each(func(h engine.Handle, o *Obstacle) {
		if g.world.Outside(o.Body, margin) {
			g.obstacles.Kill(h)
		}
	})
}
