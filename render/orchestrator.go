package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Viewport builds the viewport for the current screen size
func (o *RenderOrchestrator) Viewport(cellWidth, cellHeight float64) Viewport {
	w, h := o.screen.Size()
	return NewViewport(w, h, cellWidth, cellHeight)
}

// Resize resyncs the screen after a terminal size change
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.screen.SetStyle(BaseStyle)
	o.screen.Clear()

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}

// DrawText writes s starting at (x, y) and returns the column after it
// Text past the screen edge is dropped
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	for _, ch := range s {
		if x >= 0 && x < w && y >= 0 && y < h {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// FillRect paints every cell of [x0,x1] x [y0,y1] with ch
func FillRect(screen tcell.Screen, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
