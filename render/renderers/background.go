package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/render"
)

// groundSpacing places one ground dot every n cells on even field rows
const groundSpacing = 4

// BackgroundRenderer paints the HUD strip and the play field
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	v := ctx.View

	hudStyle := tcell.StyleDefault.Background(render.RgbHUDBg).Foreground(render.RgbHUDText)
	render.FillRect(screen, 0, 0, v.ScreenWidth-1, min(v.FieldY, v.ScreenHeight)-1, ' ', hudStyle)

	groundStyle := render.BaseStyle.Foreground(render.RgbGround)
	for y := v.FieldY; y < v.FieldY+v.FieldHeight; y++ {
		row := y - v.FieldY
		for x := 0; x < v.FieldWidth; x++ {
			ch := ' '
			if row%2 == 1 && (x+row)%groundSpacing == 0 {
				ch = parameter.GlyphGround
			}
			screen.SetContent(x, y, ch, nil, groundStyle)
		}
	}
}
