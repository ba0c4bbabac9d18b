// Package game runs the frame loop: it owns the simulation, drains the event
// queue between frames, plays sounds for what happened and renders
package game

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/audio"
	"github.com/lixenwraith/zombie-fighter/config"
	"github.com/lixenwraith/zombie-fighter/core"
	"github.com/lixenwraith/zombie-fighter/engine"
	"github.com/lixenwraith/zombie-fighter/event"
	"github.com/lixenwraith/zombie-fighter/input"
	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/render"
	"github.com/lixenwraith/zombie-fighter/render/renderers"
	"github.com/lixenwraith/zombie-fighter/status"
)

// Sounds is the audio surface the loop needs; *audio.SoundManager satisfies it
type Sounds interface {
	Play(t audio.SoundType)
	ToggleMute() bool
	IsMuted() bool
}

// Game wires the event queue, simulation, input, renderers and audio together
// Everything except Run's poller goroutine and the spawners runs on the loop goroutine
type Game struct {
	screen tcell.Screen
	cfg    *config.Config

	queue    *event.EventQueue
	sim      *engine.Simulation
	input    *input.Handler
	spawners []*engine.Spawner
	orch     *render.RenderOrchestrator
	sounds   Sounds
	registry *status.Registry

	// Cached metric pointers
	frames   *atomic.Int64
	events   *atomic.Int64
	kills    *atomic.Int64
	hits     *atomic.Int64
	pickups  *atomic.Int64
	entities *atomic.Int64
	runs     *atomic.Int64
	fps      *status.AtomicFloat
	muted    *atomic.Bool
	spawns   []*atomic.Int64 // parallel to spawners

	// FPS window
	fpsFrames int
	fpsSince  time.Time
}

// New builds a game on an initialized screen
// sounds may be nil, the game is then silent
func New(screen tcell.Screen, cfg *config.Config, sounds Sounds) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Game{
		screen:   screen,
		cfg:      cfg,
		queue:    event.NewEventQueue(),
		orch:     render.NewRenderOrchestrator(screen),
		sounds:   sounds,
		registry: status.NewRegistry(),
		fpsSince: time.Now(),
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	width, height := g.viewport().SurfaceSize()
	g.sim = engine.NewSimulation(cfg.Rules, width, height, seed)

	g.input = input.NewHandler(g.queue, g.sim.GameOver)
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		g.input.Rebind(override)
	}

	g.spawners = engine.NewSpawners(g.queue, cfg.Rules)

	g.orch.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	g.orch.Register(renderers.NewEntityRenderer(), render.PriorityEntities)
	g.orch.Register(renderers.NewHUDRenderer(), render.PriorityUI)
	g.orch.Register(renderers.NewOverlayRenderer(), render.PriorityOverlay)
	g.orch.Register(renderers.NewStatusBarRenderer(g.registry, cfg.Debug), render.PriorityDebug)

	g.frames = g.registry.Ints.Get(status.KeyFrames)
	g.events = g.registry.Ints.Get(status.KeyEvents)
	g.kills = g.registry.Ints.Get(status.KeyKills)
	g.hits = g.registry.Ints.Get(status.KeyHits)
	g.pickups = g.registry.Ints.Get(status.KeyPickups)
	g.entities = g.registry.Ints.Get(status.KeyEntities)
	g.runs = g.registry.Ints.Get(status.KeyRuns)
	g.fps = g.registry.Floats.Get(status.KeyFPS)
	g.muted = g.registry.Bools.Get(status.KeySoundsMuted)
	for _, sp := range g.spawners {
		g.spawns = append(g.spawns, g.registry.Ints.Get(status.KeySpawnerPrefix+sp.Kind().String()))
	}

	g.runs.Store(1)
	g.muted.Store(g.isMuted())

	log.Printf("game ready: rules=%s surface=%.0fx%.0f seed=%d run=%s",
		cfg.Rules.Preset, width, height, seed, g.sim.RunID())
	return g, nil
}

// Simulation exposes the simulation to the loop goroutine and tests
func (g *Game) Simulation() *engine.Simulation { return g.sim }

// Queue returns the event queue fed by input and spawners
func (g *Game) Queue() *event.EventQueue { return g.queue }

// Registry returns the metrics registry behind the debug status line
func (g *Game) Registry() *status.Registry { return g.registry }

// Run starts the spawners and the input poller and drives frames until quit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	for _, s := range g.spawners {
		s.Start()
	}
	defer func() {
		for _, s := range g.spawners {
			s.Stop()
		}
	}()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(g.cfg.Display.FrameInterval)
	defer frameTicker.Stop()

	g.Frame()
	for {
		select {
		case <-ctx.Done():
			log.Printf("loop stopped: %v", ctx.Err())
			return nil

		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				log.Printf("quit requested")
				return nil
			}

		case <-frameTicker.C:
			g.Frame()
		}
	}
}

// HandleEvent processes one terminal event, returns false when the game should quit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := g.input.HandleKey(ev)
		switch intent.Type {
		case input.IntentQuit:
			return false
		case input.IntentToggleMute:
			if g.sounds != nil {
				g.muted.Store(g.sounds.ToggleMute())
			}
		}

	case *tcell.EventResize:
		g.orch.Resize()
		width, height := g.viewport().SurfaceSize()
		g.queue.Push(event.GameEvent{
			Type:    event.EventResize,
			Payload: &event.ResizePayload{Width: width, Height: height},
		})
	}
	return true
}

// Frame applies queued events, advances the simulation one step and renders
func (g *Game) Frame() {
	pending := g.queue.Consume()
	for _, ev := range pending {
		g.sim.Apply(ev)
	}
	g.events.Add(int64(len(pending)))

	g.sim.Step()
	g.publish(g.sim.TakeReport())

	view := g.viewport()
	g.orch.RenderFrame(render.NewRenderContext(g.sim, view, g.isMuted(), g.cfg.Debug))
}

// publish turns a report into sounds and metrics
func (g *Game) publish(r engine.Report) {
	g.frames.Store(g.sim.Frame())
	g.entities.Store(int64(g.sim.EntityCount()))
	g.kills.Add(int64(r.Kills))
	g.hits.Add(int64(r.Hits))
	g.pickups.Add(int64(r.Pickups))
	if r.Reset {
		g.runs.Add(1)
	}
	for i, sp := range g.spawners {
		g.spawns[i].Store(int64(sp.Fired()))
	}

	g.fpsFrames++
	if elapsed := time.Since(g.fpsSince); elapsed >= time.Second {
		g.fps.Set(float64(g.fpsFrames) / elapsed.Seconds())
		g.fpsFrames = 0
		g.fpsSince = time.Now()
	}

	if g.sounds == nil || r.Empty() {
		return
	}
	if r.Fired > 0 {
		g.sounds.Play(audio.SoundFire)
	}
	if r.Kills > 0 {
		g.sounds.Play(audio.SoundKill)
	}
	if r.Hits > 0 {
		g.sounds.Play(audio.SoundHurt)
	}
	if r.Pickups > 0 {
		g.sounds.Play(audio.SoundHeal)
	}
	if r.GameOver {
		g.sounds.Play(audio.SoundGameOver)
	}
}

func (g *Game) viewport() render.Viewport {
	return g.orch.Viewport(g.cfg.Display.CellWidth, g.cfg.Display.CellHeight)
}

func (g *Game) isMuted() bool {
	return g.sounds != nil && g.sounds.IsMuted()
}
