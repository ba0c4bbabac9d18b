package parameter

// Surface
const (
	// FallbackSurfaceWidth/Height is used when the screen reports no usable size
	FallbackSurfaceWidth  = 800.0
	FallbackSurfaceHeight = 400.0

	// CellWidth/Height is how many surface units one terminal cell covers
	CellWidth  = 10.0
	CellHeight = 20.0
)

// HUD
const (
	// HUDRows is the number of terminal rows reserved above the play field
	HUDRows = 2

	// HealthBarWidth is the health bar length in cells
	HealthBarWidth = 30

	// HUDLeftPadding is the column where HUD text starts
	HUDLeftPadding = 1
)

// Glyphs
const (
	GlyphPlayer     = '@'
	GlyphZombie     = 'Z'
	GlyphBullet     = '━'
	GlyphHealthPack = '+'
	GlyphGround     = '·'
	GlyphBarFilled  = '█'
	GlyphBarEmpty   = '░'
)

// HUD text
const (
	TextHP        = " %d/%d"
	TextScore     = "Score: %d"
	TextHighScore = "High Score: %d"
	TextSoundOn   = "[snd]"
	TextSoundOff  = "[mute]"
	TextRules     = " rules: %s "
	TextRunID     = "run %s"
)

// Overlay text
const (
	TextGameOver     = "GAME OVER"
	TextPaused       = "PAUSED"
	TextRestartHint  = "r / Enter: restart   q: quit"
	TextResumeHint   = "p: resume"
	TextFinalScore   = "Final Score: %d"
	TextHighestScore = "Highest Score: %d"
)
