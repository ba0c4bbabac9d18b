package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/render"
	"github.com/lixenwraith/zombie-fighter/status"
)

// runIDPrefix is how much of the run id the status bar shows
const runIDPrefix = 8

// StatusBarRenderer draws the debug status line on the bottom row
type StatusBarRenderer struct {
	registry *status.Registry
	visible  bool
}

// NewStatusBarRenderer creates a status bar renderer, hidden unless debug is set
func NewStatusBarRenderer(registry *status.Registry, debug bool) *StatusBarRenderer {
	return &StatusBarRenderer{
		registry: registry,
		visible:  debug,
	}
}

// IsVisible implements VisibilityToggle
func (s *StatusBarRenderer) IsVisible() bool {
	return s.visible && s.registry != nil
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	y := ctx.View.ScreenHeight - 1
	if y < parameter.HUDRows {
		return
	}

	style := tcell.StyleDefault.Background(render.RgbHUDBg).Foreground(render.RgbDebugText)
	render.FillRect(screen, 0, y, ctx.View.ScreenWidth-1, y, ' ', style)

	x := parameter.HUDLeftPadding
	if ctx.Sim != nil {
		id := ctx.Sim.RunID()
		if len(id) > runIDPrefix {
			id = id[:runIDPrefix]
		}
		x = render.DrawText(screen, x, y, fmt.Sprintf(parameter.TextRunID, id), style) + 1
	}
	render.DrawText(screen, x, y, s.registry.Line(), style)
}
