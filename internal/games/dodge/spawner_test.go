package dodge

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/astrododge/internal/config"
	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/engine"
)

func TestEdgePositionOnBoundary(t *testing.T) {
	g := newTestGame(t, config.DefaultDodgeConfig(), 21)
	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height

	edges := map[Edge]bool{}
	for i := 0; i < 2000; i++ {
		p := g.edgePosition()
		switch {
		case p.Y == 0 && p.X >= 0 && p.X <= w:
			edges[EdgeTop] = true
		case p.Y == h && p.X >= 0 && p.X <= w:
			edges[EdgeBottom] = true
		case p.X == 0 && p.Y >= 0 && p.Y <= h:
			edges[EdgeLeft] = true
		case p.X == w && p.Y >= 0 && p.Y <= h:
			edges[EdgeRight] = true
		default:
			t.Fatalf("spawn position %+v is not on the arena boundary", p)
		}
	}
	assert.Len(t, edges, 4, "every edge is used")
}

func TestObstacleAimedAtCenter(t *testing.T) {
	g := newTestGame(t, config.DefaultDodgeConfig(), 8)
	center := g.world.Center()

	variants := map[Variant]bool{}
	for i := 0; i < 500; i++ {
		g.obstacles.Reset()
		require.True(t, g.spawnObstacle())

		o := g.obstacles.Get(0)
		require.NotNil(t, o)
		variants[o.Variant] = true

		speed := o.Body.Vel.Len()
		assert.GreaterOrEqual(t, speed, 100-1e-9)
		assert.LessOrEqual(t, speed, 200+1e-9)

		toCenter := center.Sub(o.Body.Pos)
		if toCenter.Len() == 0 {
			continue
		}
		cross := toCenter.X*o.Body.Vel.Y - toCenter.Y*o.Body.Vel.X
		dot := toCenter.X*o.Body.Vel.X + toCenter.Y*o.Body.Vel.Y
		assert.InDelta(t, 0, cross/(toCenter.Len()*speed), 1e-9, "velocity points along the bearing to the center")
		assert.Greater(t, dot, 0.0)

		expectedSize := g.cfg.Obstacles.LargeSize
		if o.Variant == VariantSmall {
			expectedSize = g.cfg.Obstacles.SmallSize
		}
		assert.Equal(t, expectedSize, o.Body.W)
	}
	assert.Len(t, variants, 2, "both variants appear")
}

func TestObstacleVelocityIsFixed(t *testing.T) {
	g := newTestGame(t, bigArena(), 8)
	first := *g.obstacles.Get(0)

	run(g, 500)
	o := g.obstacles.Get(0)
	require.NotNil(t, o)
	assert.Equal(t, first.Body.Vel, o.Body.Vel, "asteroids are ballistic")
	assert.NotEqual(t, first.Body.Pos, o.Body.Pos)
}

func TestSpawnersInertDuringGameOver(t *testing.T) {
	g := newTestGame(t, bigArena(), 3)
	run(g, 1500)
	crash(t, g)

	obstacles := g.obstacles.ActiveCount()
	pursuers := g.pursuers.ActiveCount()
	speed := g.pursuerSpeed

	g.spawnObstacles()
	g.spawnPursuer()

	assert.Equal(t, obstacles, g.obstacles.ActiveCount())
	assert.Equal(t, pursuers, g.pursuers.ActiveCount())
	assert.Equal(t, speed, g.pursuerSpeed)
}

func TestSpawnToleratesExhaustedPool(t *testing.T) {
	g := newTestGame(t, bigArena(), 3)
	g.obstacles = engine.NewPool[Obstacle](1)
	g.session.Score = 25 // cap 3, but only one slot

	assert.NotPanics(t, g.spawnObstacles)
	assert.Equal(t, 1, g.obstacles.ActiveCount())

	g.pursuers = engine.NewPool[Pursuer](0)
	g.pursuerSpeed = 123
	assert.NotPanics(t, g.spawnPursuer)
	assert.Equal(t, 123.0, g.pursuerSpeed, "a failed spawn does not re-roll the speed")
}

func TestFirstPursuerAtTwentySeconds(t *testing.T) {
	cfg := bigArena()
	// Push the repeating timer past the one-shot so only the one-shot can fire.
	cfg.Pursuers.MinIntervalMs = 30000
	cfg.Pursuers.MaxIntervalMs = 30000
	g := newTestGame(t, cfg, 13)

	run(g, 1999)
	assert.Equal(t, 19990*time.Millisecond, g.clock.Now())
	assert.Equal(t, 0, g.pursuers.ActiveCount())
	assert.Zero(t, g.pursuerSpeed)

	run(g, 1)
	assert.Equal(t, 1, g.pursuers.ActiveCount())
	assert.GreaterOrEqual(t, g.pursuerSpeed, 100.0)
	assert.LessOrEqual(t, g.pursuerSpeed, 225.0)

	run(g, 999) // t = 29990
	assert.Equal(t, 1, g.pursuers.ActiveCount())
	run(g, 1) // t = 30000, repeating timer
	assert.Equal(t, 2, g.pursuers.ActiveCount())

	run(g, 1000) // t = 40000: the first-delay timer does not repeat
	assert.Equal(t, 2, g.pursuers.ActiveCount())
}

func TestPursuerIntervalSampledOncePerRound(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGame(t, bigArena(), seed)
		interval := g.pursuerInterval

		assert.GreaterOrEqual(t, interval, 8*time.Second)
		assert.LessOrEqual(t, interval, 16*time.Second)
		assert.Zero(t, interval%time.Millisecond)

		run(g, 60*testTickRate)
		assert.Equal(t, interval, g.pursuerInterval, "the period is not re-sampled per firing")

		expected := 1 + int(60*time.Second/interval)
		assert.Equal(t, expected, g.pursuers.ActiveCount(), "seed %d interval %v", seed, interval)
	}
}

func TestPursuerSpeedShared(t *testing.T) {
	g := newTestGame(t, bigArena(), 17)
	run(g, 40*testTickRate)
	require.GreaterOrEqual(t, g.pursuers.ActiveCount(), 2)

	g.pursuers.Each(func(_ engine.Handle, p *Pursuer) {
		assert.InDelta(t, g.pursuerSpeed, p.Body.Vel.Len(), 1e-9)
	})
}

func TestSteerPursuers(t *testing.T) {
	g := newTestGame(t, bigArena(), 1)
	h, ok := g.pursuers.Spawn(Pursuer{Body: engine.Body{Pos: core.Vec2{X: 0, Y: 0}, W: 32, H: 32}})
	require.True(t, ok)
	g.pursuerSpeed = 150

	g.steerPursuers()

	v := g.pursuers.Get(h).Body.Vel
	assert.InDelta(t, 150/math.Sqrt2, v.X, 1e-9)
	assert.InDelta(t, 150/math.Sqrt2, v.Y, 1e-9)

	// Re-aim follows the player.
	g.player.Body.Pos = core.Vec2{X: 0, Y: 500}
	g.steerPursuers()
	v = g.pursuers.Get(h).Body.Vel
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 150, v.Y, 1e-9)
}

func TestChaseCoincident(t *testing.T) {
	p := core.Vec2{X: 10, Y: 10}
	assert.Equal(t, core.Vec2{}, Chase(p, p, 200))
}

func TestCullObstacles(t *testing.T) {
	g := newTestGame(t, config.DefaultDodgeConfig(), 1)
	g.obstacles.Reset()

	inside, _ := g.obstacles.Spawn(Obstacle{Body: engine.Body{Pos: core.Vec2{X: -60, Y: 100}}})
	gone, _ := g.obstacles.Spawn(Obstacle{Body: engine.Body{Pos: core.Vec2{X: 2000, Y: 100}}})

	g.cullObstacles()
	assert.True(t, g.obstacles.Active(inside), "within the margin the rock is kept")
	assert.False(t, g.obstacles.Active(gone))
}
