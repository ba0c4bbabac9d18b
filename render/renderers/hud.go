package renderers

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/render"
)

// HUDRenderer draws the health bar, HP, score, high score and sound state on the top rows
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	sim := ctx.Sim
	if sim == nil || ctx.View.ScreenHeight < 1 {
		return
	}

	hudStyle := tcell.StyleDefault.Background(render.RgbHUDBg).Foreground(render.RgbHUDText)
	player := sim.Player()
	maxHP := sim.Rules().MaxHP

	// Health bar
	x := parameter.HUDLeftPadding
	filled := HealthBarFill(player.HP, maxHP, parameter.HealthBarWidth)
	ratio := 0.0
	if maxHP > 0 {
		ratio = float64(player.HP) / float64(maxHP)
	}
	barStyle := hudStyle.Foreground(render.HealthColor(ratio))
	emptyStyle := hudStyle.Foreground(render.RgbBarEmpty)
	for i := 0; i < parameter.HealthBarWidth; i++ {
		if i < filled {
			screen.SetContent(x+i, 0, parameter.GlyphBarFilled, nil, barStyle)
		} else {
			screen.SetContent(x+i, 0, parameter.GlyphBarEmpty, nil, emptyStyle)
		}
	}
	x += parameter.HealthBarWidth
	x = render.DrawText(screen, x, 0, fmt.Sprintf(parameter.TextHP, player.HP, maxHP), hudStyle)

	// Scores
	x += 3
	x = render.DrawText(screen, x, 0, fmt.Sprintf(parameter.TextScore, sim.Score()), hudStyle.Foreground(render.RgbScore))
	x += 3
	render.DrawText(screen, x, 0, fmt.Sprintf(parameter.TextHighScore, sim.HighScore()), hudStyle.Foreground(render.RgbHighScore))

	// Sound state, right aligned
	soundText, soundColor := parameter.TextSoundOn, render.RgbAudioUnmuted
	if ctx.Muted {
		soundText, soundColor = parameter.TextSoundOff, render.RgbAudioMuted
	}
	render.DrawText(screen, ctx.View.ScreenWidth-len(soundText)-1, 0, soundText, hudStyle.Foreground(soundColor))

	// Divider with the active rule set
	if ctx.View.ScreenHeight < parameter.HUDRows {
		return
	}
	dividerStyle := hudStyle.Foreground(render.RgbGround)
	for dx := 0; dx < ctx.View.ScreenWidth; dx++ {
		screen.SetContent(dx, 1, '─', nil, dividerStyle)
	}
	render.DrawText(screen, parameter.HUDLeftPadding+1, 1, fmt.Sprintf(parameter.TextRules, sim.Rules().Preset), dividerStyle)
}

// HealthBarFill returns how many of width cells are filled for hp out of maxHP
func HealthBarFill(hp, maxHP, width int) int {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	if hp >= maxHP {
		return width
	}
	return int(math.Round(float64(hp) / float64(maxHP) * float64(width)))
}
