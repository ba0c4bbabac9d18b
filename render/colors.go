package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(45, 47, 64)    // Dim dots on the play field
	RgbHUDBg      = tcell.NewRGBColor(16, 17, 24)    // Darker strip behind the HUD
	RgbHUDText    = tcell.NewRGBColor(220, 220, 220) // Near white

	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPlayerHurt = tcell.NewRGBColor(255, 80, 80)   // Normal Red, low HP
	RgbZombie     = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbZombieDark = tcell.NewRGBColor(0, 130, 0)     // Dark Green edge
	RgbBullet     = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbHealthPack = tcell.NewRGBColor(255, 120, 120) // Bright Red cross
	RgbPackBg     = tcell.NewRGBColor(240, 240, 240) // White box

	RgbScore     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHighScore = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbBarEmpty  = tcell.NewRGBColor(60, 60, 60)    // Dark gray
	RgbDebugText = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbAudioMuted   = tcell.NewRGBColor(200, 50, 50) // Red
	RgbAudioUnmuted = tcell.NewRGBColor(0, 160, 0)   // Green

	RgbOverlayBg     = tcell.NewRGBColor(40, 0, 0)      // Very dark red
	RgbOverlayBorder = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbOverlayTitle  = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbOverlayText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbPausedBg      = tcell.NewRGBColor(15, 25, 50)    // Very dark blue
)

// healthGradient runs from empty to full
var healthGradient = [...]tcell.Color{
	tcell.NewRGBColor(200, 0, 0),
	tcell.NewRGBColor(230, 100, 0),
	tcell.NewRGBColor(240, 200, 0),
	tcell.NewRGBColor(120, 220, 0),
	tcell.NewRGBColor(0, 220, 0),
}

// HealthColor returns the bar color for a ratio in [0, 1]
func HealthColor(ratio float64) tcell.Color {
	if ratio <= 0 {
		return healthGradient[0]
	}
	if ratio >= 1 {
		return healthGradient[len(healthGradient)-1]
	}
	return healthGradient[int(ratio*float64(len(healthGradient)))]
}

// BaseStyle is the play field style every renderer starts from
var BaseStyle = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDText)
