package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/render"
	"github.com/lixenwraith/zombie-fighter/vmath"
)

// lowHPRatio switches the player to the hurt color
const lowHPRatio = 0.25

// EntityRenderer draws health packs, zombies, bullets and the player, in that order
type EntityRenderer struct{}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

// Render implements SystemRenderer
func (r *EntityRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	sim := ctx.Sim
	if sim == nil {
		return
	}

	packStyle := render.BaseStyle.Foreground(render.RgbHealthPack).Background(render.RgbPackBg)
	for _, p := range sim.HealthPacks() {
		r.drawBlock(ctx.View, screen, p.Rect, parameter.GlyphHealthPack, packStyle)
	}

	zombieStyle := render.BaseStyle.Foreground(tcell.ColorBlack).Background(render.RgbZombie)
	for _, z := range sim.Zombies() {
		r.drawBlock(ctx.View, screen, z.Rect, parameter.GlyphZombie, zombieStyle)
	}

	bulletStyle := render.BaseStyle.Foreground(render.RgbBullet)
	for _, b := range sim.Bullets() {
		r.drawBlock(ctx.View, screen, b.Rect, parameter.GlyphBullet, bulletStyle)
	}

	player := sim.Player()
	playerColor := render.RgbPlayer
	if maxHP := sim.Rules().MaxHP; maxHP > 0 && float64(player.HP)/float64(maxHP) < lowHPRatio {
		playerColor = render.RgbPlayerHurt
	}
	playerStyle := render.BaseStyle.Foreground(tcell.ColorWhite).Background(playerColor)
	r.drawBlock(ctx.View, screen, player.Rect, parameter.GlyphPlayer, playerStyle)
}

// drawBlock fills the cells covered by rect with the glyph
func (r *EntityRenderer) drawBlock(v render.Viewport, screen tcell.Screen, rect vmath.Rect, glyph rune, style tcell.Style) {
	x0, y0, x1, y1, ok := v.Project(rect)
	if !ok {
		return
	}
	render.FillRect(screen, x0, y0, x1, y1, glyph, style)
}
