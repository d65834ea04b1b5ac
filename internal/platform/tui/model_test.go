package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/astrododge/internal/config"
	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/games/dodge"
)

// fakeClock is a controllable wall clock for held-key timing.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1000, 0)} }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func newTestModel(t *testing.T, cfg config.DodgeConfig) (Model, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	m := NewModel(dodge.New(cfg, nil), core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     7,
	}, Options{})
	m.now = clock.Now
	return m, clock
}

// instantCrash makes the craft as large as the arena so the first asteroid
// hits it on the first tick.
func instantCrash() config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Player.Width = cfg.Arena.Width
	cfg.Player.Height = cfg.Arena.Height
	return cfg
}

func TestNewModelStartsRound(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultDodgeConfig())

	assert.False(t, m.State().GameOver)
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 23, m.screen.Height(), "one row is kept for help")
	assert.NotNil(t, m.Init())
}

func TestHeldKeySteersUntilWindowExpires(t *testing.T) {
	m, clock := newTestModel(t, config.DefaultDodgeConfig())

	m, _ = update(m, runeKey('d'))
	m, _ = update(m, TickMsg{})
	assert.Equal(t, 10.0, m.game.Snapshot().VelX)

	clock.Advance(100 * time.Millisecond)
	m, _ = update(m, TickMsg{})
	assert.Equal(t, 20.0, m.game.Snapshot().VelX, "still held inside the window")

	clock.Advance(DefaultFirstHold)
	m, _ = update(m, TickMsg{})
	assert.InDelta(t, 18.0, m.game.Snapshot().VelX, 1e-9, "released keys damp")
}

// openArena keeps every hazard far from the player for the first seconds.
func openArena() config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Arena.Width = 60000
	cfg.Arena.Height = 60000
	return cfg
}

func TestHeldKeyBridgesRepeatDelay(t *testing.T) {
	m, clock := newTestModel(t, openArena())
	start := clock.Now()
	tick := 10 * time.Millisecond

	// One press, then the terminal stays silent until auto-repeat starts at
	// 500 ms and sends a repeat every 30 ms until 980 ms.
	isKeyEvent := func(at time.Duration) bool {
		if at == 0 {
			return true
		}
		return at >= 500*time.Millisecond && at <= 980*time.Millisecond && (at-500*time.Millisecond)%(30*time.Millisecond) == 0
	}

	prev := 0.0
	for at := time.Duration(0); at <= time.Second; at += tick {
		clock.t = start.Add(at)
		if isKeyEvent(at) {
			m, _ = update(m, runeKey('d'))
		}
		m, _ = update(m, TickMsg{})

		vel := m.game.Snapshot().VelX
		require.GreaterOrEqual(t, vel, prev, "t=%v: key still held but VelX fell", at)
		prev = vel
	}
	require.False(t, m.State().GameOver)
	assert.Equal(t, 300.0, prev, "steady acceleration reaches max speed")

	// After the last repeat at 980 ms the key is released one repeat window later.
	clock.t = start.Add(980*time.Millisecond + DefaultRepeatHold + tick)
	m, _ = update(m, TickMsg{})
	assert.InDelta(t, 270.0, m.game.Snapshot().VelX, 1e-9, "released key damps")
}

func TestRestartKeyIgnoredWhilePlaying(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultDodgeConfig())

	m, _ = update(m, runeKey('r'))
	assert.False(t, m.inputFrame.Has(core.ActionRestart))
}

func TestRestartKeyAfterGameOver(t *testing.T) {
	m, _ := newTestModel(t, instantCrash())

	m, _ = update(m, TickMsg{})
	require.True(t, m.State().GameOver)

	m, _ = update(m, runeKey('r'))
	m, _ = update(m, TickMsg{})
	assert.False(t, m.State().GameOver)
	assert.Equal(t, 0, m.State().Score)
}

func TestMouseRestart(t *testing.T) {
	m, _ := newTestModel(t, instantCrash())

	m, _ = update(m, TickMsg{})
	require.True(t, m.State().GameOver)

	view := m.View()
	require.Contains(t, view, "GAME OVER")
	btn := m.game.RestartButton()
	require.Positive(t, btn.W)

	// A click elsewhere does nothing.
	m, _ = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(m, TickMsg{})
	require.True(t, m.State().GameOver)

	// Right button and releases are ignored.
	m, _ = update(m, tea.MouseMsg{X: btn.X, Y: btn.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = update(m, tea.MouseMsg{X: btn.X, Y: btn.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(m, TickMsg{})
	require.True(t, m.State().GameOver)

	m, _ = update(m, tea.MouseMsg{X: btn.X + btn.W/2, Y: btn.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(m, TickMsg{})
	assert.False(t, m.State().GameOver)
}

func TestPauseKey(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultDodgeConfig())

	m, _ = update(m, runeKey('p'))
	m, _ = update(m, TickMsg{})
	assert.True(t, m.State().Paused)
	assert.Contains(t, m.View(), "PAUSED")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(m, TickMsg{})
	assert.False(t, m.State().Paused)
}

func TestResize(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultDodgeConfig())

	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 40)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultDodgeConfig())

	m, cmd := update(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestBlurReleasesHeldKeys(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultDodgeConfig())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(m, tea.BlurMsg{})
	m, _ = update(m, TickMsg{})
	assert.Zero(t, m.game.Snapshot().VelY)
}
