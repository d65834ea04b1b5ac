// Package tui runs Astro Dodge inside a Bubble Tea program. It owns the
// terminal loop: ticks, key and mouse input, and drawing the game screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astrododge/internal/engine"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(engine.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
