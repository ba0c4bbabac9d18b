package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	*r.log = append(*r.log, r.name)
	screen.SetContent(0, 0, rune(r.name[0]), nil, tcell.StyleDefault)
}

func (r *recordingRenderer) IsVisible() bool { return r.visible }

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	o := NewRenderOrchestrator(screen)

	var calls []string
	add := func(name string, p RenderPriority, visible bool) {
		o.Register(&recordingRenderer{name: name, log: &calls, visible: visible}, p)
	}
	add("overlay", PriorityOverlay, true)
	add("background", PriorityBackground, true)
	add("hud", PriorityUI, true)
	add("entities", PriorityEntities, true)
	add("entities2", PriorityEntities, true)
	add("debug", PriorityDebug, false)

	o.RenderFrame(RenderContext{View: o.Viewport(10, 20)})

	want := []string{"background", "entities", "entities2", "hud", "overlay"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, calls[i], want[i])
		}
	}

	// Last renderer wins the shared cell
	if ch, _, _, _ := screen.GetContent(0, 0); ch != 'o' {
		t.Errorf("cell (0,0) = %q, want 'o' from overlay", ch)
	}
}

func TestOrchestratorViewportTracksScreen(t *testing.T) {
	screen := newTestScreen(t, 80, 22)
	o := NewRenderOrchestrator(screen)

	w, h := o.Viewport(10, 20).SurfaceSize()
	if w != 800 || h != 400 {
		t.Fatalf("surface = %vx%v, want 800x400", w, h)
	}

	screen.SetSize(100, 32)
	w, h = o.Viewport(10, 20).SurfaceSize()
	if w != 1000 || h != 600 {
		t.Errorf("surface after resize = %vx%v, want 1000x600", w, h)
	}
}

func TestHealthColorBounds(t *testing.T) {
	if HealthColor(-1) != healthGradient[0] || HealthColor(0) != healthGradient[0] {
		t.Error("empty health must use the first gradient color")
	}
	if HealthColor(1) != healthGradient[len(healthGradient)-1] || HealthColor(2) != healthGradient[len(healthGradient)-1] {
		t.Error("full health must use the last gradient color")
	}
	if HealthColor(0.5) != healthGradient[2] {
		t.Error("half health must use the middle gradient color")
	}
}
