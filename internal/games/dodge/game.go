// Package dodge implements Astro Dodge: steer a craft around an open arena
// while asteroids stream in from the edges and pursuers home in. The score is
// the number of whole seconds survived; one hit ends the round.
package dodge

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/astrododge/internal/config"
	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/engine"
)

// Player is the craft under user control.
type Player struct {
	Body  engine.Body
	Alive bool
}

// Game implements the Astro Dodge rules on top of the engine host.
type Game struct {
	cfg        config.DodgeConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	tuning     Tuning
	baseLogger *log.Logger
	logger     *log.Logger // baseLogger scoped to the current round

	rng   *engine.RNG
	clock *engine.Clock
	sched *engine.Scheduler
	world *engine.World
	dt    time.Duration

	player    Player
	obstacles *engine.Pool[Obstacle]
	pursuers  *engine.Pool[Pursuer]

	pursuerSpeed    float64       // Shared by every active pursuer
	pursuerInterval time.Duration // Sampled once per round

	session *Session
	paused  bool
	tick    uint64
	roundID string
	lastHit HitKind

	restartButton core.Rect // Screen-space hit area, set by Render
}

// New creates a game with the given configuration. A nil logger discards output.
func New(cfg config.DodgeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		tuning:     TuningFrom(cfg.Player),
		baseLogger: logger,
		logger:     logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Astro Dodge"
}

// Reset initializes the game for a runtime configuration and starts a round.
// The high score of earlier rounds is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = engine.TickInterval(runtime.TickRate)
	g.rng = engine.NewRNG(runtime.Seed)
	g.world = engine.NewWorld(g.cfg.Arena.Width, g.cfg.Arena.Height)

	highScore := 0
	if g.session != nil {
		highScore = g.session.HighScore
	}
	g.session = NewSession(0)
	g.session.HighScore = highScore
	g.newRound()
}

// Restart begins a new round after game over. It is the only way out of
// GameOver and does nothing while a round is live.
func (g *Game) Restart() bool {
	if g.session == nil || g.session.Playing() {
		return false
	}
	g.newRound()
	return true
}

// newRound rebuilds the scene: fresh clock and timers, empty pools,
// the player back at the center at rest. The world is kept and resumed.
func (g *Game) newRound() {
	g.clock = &engine.Clock{}
	g.sched = engine.NewScheduler(g.clock)
	g.world.Resume()

	g.player = Player{
		Body: engine.Body{
			Pos:   g.world.Center(),
			W:     g.cfg.Player.Width,
			H:     g.cfg.Player.Height,
			Clamp: true,
		},
		Alive: true,
	}
	g.obstacles = engine.NewPool[Obstacle](g.difficulty.MaxObstacles())
	g.pursuers = engine.NewPool[Pursuer](g.cfg.Pursuers.MaxActive)
	g.pursuerSpeed = 0
	g.paused = false
	g.tick = 0
	g.lastHit = HitNone

	// No-op on the first round, which Reset already started at zero.
	g.session.Restart(g.clock.Now())

	g.roundID = uuid.NewString()
	g.logger = g.baseLogger.With("round", g.roundID)

	g.spawnObstacles()
	g.armSpawners()

	g.logger.Info("round started",
		"high_score", g.session.HighScore,
		"pursuer_interval", g.pursuerInterval,
		"timers", g.sched.Pending(),
		"obstacle_slots", g.obstacles.Cap(),
		"pursuer_slots", g.pursuers.Cap(),
		"seed", g.runtime.Seed,
	)
}

// Step advances the game by one tick.
// Order: timers, input to velocity, score, pursuer aim, integration, collisions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.session.Playing() {
		if in.Has(core.ActionRestart) {
			g.Restart()
			return core.StepResult{State: g.State()}
		}
		// Timers keep running; their callbacks see GameOver and return.
		g.clock.Advance(g.dt)
		g.sched.Run()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock.Advance(g.dt)
	g.session.Tick(g.clock.Now())
	g.sched.Run()

	g.player.Body.Vel = Steer(HeldFrom(in), g.player.Body.Vel, g.tuning)
	g.steerPursuers()

	g.integrate()
	g.resolveCollisions()

	return core.StepResult{State: g.State()}
}

// integrate moves every body one tick and recycles lost asteroids.
func (g *Game) integrate() {
	g.world.Integrate(&g.player.Body, g.dt)
	g.obstacles.Each(func(_ engine.Handle, o *Obstacle) {
		g.world.Integrate(&o.Body, g.dt)
	})
	g.pursuers.Each(func(_ engine.Handle, p *Pursuer) {
		g.world.Integrate(&p.Body, g.dt)
	})
	g.cullObstacles()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score,
		HighScore: g.session.HighScore,
		GameOver:  !g.session.Playing(),
		Paused:    g.paused,
	}
}

// RestartButton returns the screen area of the restart button drawn by the
// last Render, or an empty rect when it is hidden.
func (g *Game) RestartButton() core.Rect {
	if !g.session.Overlay {
		return core.Rect{}
	}
	return g.restartButton
}
