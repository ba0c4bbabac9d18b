package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/render"
)

const (
	overlayMinWidth = 34
	overlayPaddingX = 2
)

// OverlayRenderer draws the game over and paused panels over the play field
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	sim := ctx.Sim
	if sim == nil {
		return
	}

	switch {
	case sim.GameOver():
		r.drawPanel(ctx.View, screen, parameter.TextGameOver, []string{
			fmt.Sprintf(parameter.TextFinalScore, sim.Score()),
			fmt.Sprintf(parameter.TextHighestScore, sim.HighScore()),
			"",
			parameter.TextRestartHint,
		}, render.RgbOverlayBg)
	case sim.Paused():
		r.drawPanel(ctx.View, screen, parameter.TextPaused, []string{
			parameter.TextResumeHint,
		}, render.RgbPausedBg)
	}
}

// drawPanel draws a bordered box centered on the play field with a title and centered lines
func (r *OverlayRenderer) drawPanel(v render.Viewport, screen tcell.Screen, title string, lines []string, bg tcell.Color) {
	width := overlayMinWidth
	for _, line := range lines {
		width = max(width, len([]rune(line))+2*overlayPaddingX+2)
	}
	height := len(lines) + 4 // border, title, blank, lines, border

	startX := (v.ScreenWidth - width) / 2
	startY := v.FieldY + (v.FieldHeight-height)/2
	startX = max(startX, 0)
	startY = max(startY, v.FieldY)

	bodyStyle := tcell.StyleDefault.Background(bg).Foreground(render.RgbOverlayText)
	borderStyle := bodyStyle.Foreground(render.RgbOverlayBorder)

	render.FillRect(screen, startX, startY, startX+width-1, startY+height-1, ' ', bodyStyle)
	r.drawBorder(screen, startX, startY, width, height, borderStyle)

	centered := func(y int, s string, style tcell.Style) {
		x := startX + (width-len([]rune(s)))/2
		render.DrawText(screen, x, y, s, style)
	}

	centered(startY+1, title, bodyStyle.Foreground(render.RgbOverlayTitle).Bold(true))
	for i, line := range lines {
		centered(startY+3+i, line, bodyStyle)
	}
}

func (r *OverlayRenderer) drawBorder(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	// Corners
	screen.SetContent(x, y, '╔', nil, style)
	screen.SetContent(x+w-1, y, '╗', nil, style)
	screen.SetContent(x, y+h-1, '╚', nil, style)
	screen.SetContent(x+w-1, y+h-1, '╝', nil, style)

	// Horizontal lines
	for i := 1; i < w-1; i++ {
		screen.SetContent(x+i, y, '═', nil, style)
		screen.SetContent(x+i, y+h-1, '═', nil, style)
	}

	// Vertical lines
	for i := 1; i < h-1; i++ {
		screen.SetContent(x, y+i, '║', nil, style)
		screen.SetContent(x+w-1, y+i, '║', nil, style)
	}
}
