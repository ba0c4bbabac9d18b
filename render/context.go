package render

import (
	"github.com/lixenwraith/zombie-fighter/engine"
)

// RenderContext provides frame state for renderers, passed by value
// Sim is read only and must not be retained past Render
type RenderContext struct {
	Sim  *engine.Simulation
	View Viewport

	Muted bool
	Debug bool
}

// NewRenderContext creates a RenderContext for the current frame
func NewRenderContext(sim *engine.Simulation, view Viewport, muted, debug bool) RenderContext {
	return RenderContext{
		Sim:   sim,
		View:  view,
		Muted: muted,
		Debug: debug,
	}
}
