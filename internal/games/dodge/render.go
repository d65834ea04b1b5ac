package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/astrododge/internal/core"
	"github.com/vovakirdan/astrododge/internal/engine"
)

// Visual characters for rendering
const (
	PlayerChar    = '@'
	LargeRockChar = '▓'
	SmallRockChar = '░'
	PursuerChar   = '◆'
	RestartLabel  = "[ Restart ]"
)

// Layout limits
const (
	minRenderWidth  = 24
	minRenderHeight = 10
	hudRows         = 1
)

// viewport maps arena coordinates onto the screen cells inside the border.
type viewport struct {
	area   core.Rect
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	area := core.NewRect(1, hudRows+1, dst.Width()-2, dst.Height()-hudRows-2)
	return viewport{
		area: area,
		sx:   float64(area.W) / g.cfg.Arena.Width,
		sy:   float64(area.H) / g.cfg.Arena.Height,
	}
}

// cells converts a world box to the screen cells it covers (at least one).
func (v viewport) cells(b core.RectF) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right()*v.sx)) - 1
	y1 := int(math.Ceil(b.Bottom()*v.sy)) - 1
	return core.NewRect(v.area.X+x0, v.area.Y+y0, core.Max(1, x1-x0+1), core.Max(1, y1-y0+1))
}

// fill draws r clipped to the arena area.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if v.area.Contains(x, y) {
				dst.SetColor(x, y, ch, c)
			}
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.restartButton = core.Rect{}

	if dst.Width() < minRenderWidth || dst.Height() < minRenderHeight {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	vp := g.viewport(dst)
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), core.ColorGray)

	g.obstacles.Each(func(_ engine.Handle, o *Obstacle) {
		ch, color := LargeRockChar, core.ColorOrange
		if o.Variant == VariantSmall {
			ch, color = SmallRockChar, core.ColorYellow
		}
		vp.fill(dst, vp.cells(o.Body.Box()), ch, color)
	})
	g.pursuers.Each(func(_ engine.Handle, p *Pursuer) {
		vp.fill(dst, vp.cells(p.Body.Box()), PursuerChar, core.ColorMagenta)
	})

	playerColor := core.ColorCyan
	if g.session.Struck {
		playerColor = core.ColorBrightRed
	}
	vp.fill(dst, vp.cells(g.player.Body.Box()), PlayerChar, playerColor)

	// HUD
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.session.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", g.session.HighScore)
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorGray)

	switch {
	case g.session.Overlay:
		g.drawGameOver(dst)
	case g.paused:
		g.drawMessage(dst, []string{"PAUSED", "", "Press P to resume"}, core.ColorYellow)
	}
}

// drawGameOver draws the final score panel and records the restart button area.
func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final Score: %d", g.session.Score),
		fmt.Sprintf("High Score: %d", g.session.HighScore),
		"",
		RestartLabel,
	}
	box := g.drawMessage(dst, lines, core.ColorRed)

	row := box.Y + 1 + len(lines) - 1
	x := box.X + (box.W-len(RestartLabel))/2
	dst.DrawTextColor(x, row, RestartLabel, core.ColorBrightWhite)
	g.restartButton = core.NewRect(x, row, len(RestartLabel), 1)
}

// drawMessage draws a centered box with one line of text per row and returns
// its outline. The first line is the colored title.
func (g *Game) drawMessage(dst *core.Screen, lines []string, titleColor core.Color) core.Rect {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	boxW := width + 6
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, titleColor)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = titleColor
		}
		dst.DrawTextColor(box.X+(boxW-len(l))/2, box.Y+1+i, l, color)
	}
	return box
}
