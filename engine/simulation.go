package engine

import (
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/lixenwraith/zombie-fighter/component"
	"github.com/lixenwraith/zombie-fighter/config"
	"github.com/lixenwraith/zombie-fighter/event"
	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/vmath"
)

// Simulation owns the complete game state and advances it one frame at a time
// Not safe for concurrent use: only the frame loop goroutine calls into it,
// spawners and input reach it through the event queue
type Simulation struct {
	rules config.Rules

	// Logical surface in surface units
	width, height float64

	player      component.Player
	bullets     []component.Bullet
	zombies     []component.Zombie
	healthPacks []component.HealthPack

	score     int
	highScore int // survives Reset, never persisted
	gameOver  bool
	paused    bool

	frame  int64
	nextID component.EntityID
	runID  uuid.UUID
	rng    *rand.Rand

	// Accumulated since last TakeReport
	report Report

	// Per-frame removal marks, reused between frames
	deadBullets []bool
	deadZombies []bool
	deadPacks   []bool
}

// NewSimulation creates a simulation on a width x height surface with a fresh run
func NewSimulation(rules config.Rules, width, height float64, seed uint64) *Simulation {
	if width <= 0 || height <= 0 {
		width, height = parameter.FallbackSurfaceWidth, parameter.FallbackSurfaceHeight
	}
	// HP never exceeds the hard ceiling, whatever the rule set asks for
	rules.MaxHP = vmath.ClampInt(rules.MaxHP, 1, parameter.PlayerMaxHP)
	s := &Simulation{
		rules:  rules,
		width:  width,
		height: height,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.startRun()
	return s
}

// ===== Accessors =====
// Returned slices are owned by the simulation and valid until the next Apply or Step

func (s *Simulation) Player() component.Player            { return s.player }
func (s *Simulation) Bullets() []component.Bullet         { return s.bullets }
func (s *Simulation) Zombies() []component.Zombie         { return s.zombies }
func (s *Simulation) HealthPacks() []component.HealthPack { return s.healthPacks }
func (s *Simulation) Score() int                          { return s.score }
func (s *Simulation) HighScore() int                      { return s.highScore }
func (s *Simulation) GameOver() bool                      { return s.gameOver }
func (s *Simulation) Paused() bool                        { return s.paused }
func (s *Simulation) Frame() int64                        { return s.frame }
func (s *Simulation) Rules() config.Rules                 { return s.rules }
func (s *Simulation) RunID() string                       { return s.runID.String() }

// Size returns the logical surface dimensions
func (s *Simulation) Size() (width, height float64) {
	return s.width, s.height
}

// EntityCount returns the number of live non-player entities
func (s *Simulation) EntityCount() int {
	return len(s.bullets) + len(s.zombies) + len(s.healthPacks)
}

// TakeReport returns everything reported since the previous call and clears it
func (s *Simulation) TakeReport() Report {
	r := s.report
	s.report = Report{}
	return r
}

// ===== Events =====

// Apply mutates state for one queued event
// Game over accepts only Reset and Resize. Pause drops movement, fire and spawns
func (s *Simulation) Apply(ev event.GameEvent) {
	switch ev.Type {
	case event.EventReset:
		s.Reset()
		return
	case event.EventResize:
		if p, ok := ev.Payload.(*event.ResizePayload); ok {
			s.Resize(p.Width, p.Height)
		}
		return
	}

	if s.gameOver {
		return
	}

	if ev.Type == event.EventPauseToggle {
		s.paused = !s.paused
		return
	}

	if s.paused {
		return
	}

	switch ev.Type {
	case event.EventPlayerMove:
		if p, ok := ev.Payload.(*event.MovePayload); ok {
			s.MovePlayer(p.DX, p.DY)
		}
	case event.EventFire:
		s.Fire()
	case event.EventSpawnZombie:
		s.spawnZombie(s.randomY(parameter.ZombieHeight))
	case event.EventSpawnHealthPack:
		s.spawnHealthPack(s.randomY(parameter.HealthPackHeight))
	}
}

// MovePlayer translates the player by whole steps per axis, clamped to the surface
func (s *Simulation) MovePlayer(dx, dy int) {
	moved := s.player.Rect.Translate(
		float64(dx)*s.rules.PlayerStep,
		float64(dy)*s.rules.VerticalStep,
	)
	s.player.Rect = vmath.ClampInto(moved, s.width, s.height)
}

// Fire appends a bullet at the player's leading edge
func (s *Simulation) Fire() {
	s.bullets = append(s.bullets, component.Bullet{
		ID: s.newID(),
		Rect: vmath.Rect{
			X: s.player.Right(),
			Y: s.player.Y + parameter.BulletOffsetY,
			W: parameter.BulletWidth,
			H: parameter.BulletHeight,
		},
	})
	s.report.Fired++
}

// Resize changes the surface; the player is pulled back inside, others cull naturally
func (s *Simulation) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.player.Rect = vmath.ClampInto(s.player.Rect, width, height)
}

// Reset rebuilds the run from initial values and clears game over
func (s *Simulation) Reset() {
	s.startRun()
	s.report.Reset = true
	log.Printf("run %s started (high score %d)", s.RunID(), s.highScore)
}

func (s *Simulation) startRun() {
	start := vmath.Rect{
		X: parameter.PlayerStartX,
		Y: parameter.PlayerStartY,
		W: parameter.PlayerWidth,
		H: parameter.PlayerHeight,
	}
	s.player = component.Player{
		Rect: vmath.ClampInto(start, s.width, s.height),
		HP:   s.rules.MaxHP,
	}

	// Fresh slices so nothing from the previous run can alias into the new one
	s.bullets = nil
	s.zombies = nil
	s.healthPacks = nil

	s.score = 0
	s.gameOver = false
	s.paused = false
	s.frame = 0
	s.nextID = 0
	s.runID = uuid.New()
}

func (s *Simulation) spawnZombie(y float64) bool {
	if s.rules.MaxZombies > 0 && len(s.zombies) >= s.rules.MaxZombies {
		return false
	}
	s.zombies = append(s.zombies, component.Zombie{
		ID:   s.newID(),
		Rect: vmath.Rect{X: s.width, Y: y, W: parameter.ZombieWidth, H: parameter.ZombieHeight},
	})
	s.report.Spawned++
	return true
}

func (s *Simulation) spawnHealthPack(y float64) {
	s.healthPacks = append(s.healthPacks, component.HealthPack{
		ID:   s.newID(),
		Rect: vmath.Rect{X: s.width, Y: y, W: parameter.HealthPackWidth, H: parameter.HealthPackHeight},
	})
	s.report.Spawned++
}

// randomY picks a uniform top edge keeping an entity of height h on the surface
func (s *Simulation) randomY(h float64) float64 {
	return s.rng.Float64() * max(0, s.height-h)
}

func (s *Simulation) newID() component.EntityID {
	s.nextID++
	return s.nextID
}

// ===== Frame =====

// Step advances one frame: integrate, collide, remove, then check for game over
// Removals are marked during the scan and applied after it, so a removed entity
// is never tested again in the same frame and neighbors are never skipped
// No-op while paused or after game over
func (s *Simulation) Step() Report {
	var r Report
	if s.gameOver || s.paused {
		return r
	}
	s.frame++

	// Bullets
	s.deadBullets = marks(s.deadBullets, len(s.bullets))
	for i := range s.bullets {
		b := &s.bullets[i]
		b.X += s.rules.BulletSpeed
		if b.X > s.width {
			s.deadBullets[i] = true
		}
	}

	// Zombies: player contact first, then the first live bullet in order
	s.deadZombies = marks(s.deadZombies, len(s.zombies))
	for i := range s.zombies {
		z := &s.zombies[i]
		z.X -= s.rules.ZombieSpeed

		if vmath.Overlaps(z.Rect, s.player.Rect) {
			s.player.Damage(s.rules.ZombieDamage)
			s.deadZombies[i] = true
			r.Hits++
			continue
		}

		for j := range s.bullets {
			if s.deadBullets[j] {
				continue
			}
			if vmath.Overlaps(s.bullets[j].Rect, z.Rect) {
				s.deadBullets[j] = true
				s.deadZombies[i] = true
				s.score += s.rules.KillScore
				r.Kills++
				break
			}
		}
		if s.deadZombies[i] {
			continue
		}

		if z.Right() < 0 {
			s.deadZombies[i] = true
		}
	}
	s.bullets = compact(s.bullets, s.deadBullets)
	s.zombies = compact(s.zombies, s.deadZombies)

	// Health packs
	s.deadPacks = marks(s.deadPacks, len(s.healthPacks))
	for i := range s.healthPacks {
		p := &s.healthPacks[i]
		p.X -= s.rules.HealthPackSpeed

		if vmath.Overlaps(p.Rect, s.player.Rect) {
			s.player.Heal(s.rules.HealthPackHeal, s.rules.MaxHP)
			s.deadPacks[i] = true
			r.Pickups++
			continue
		}
		if p.Right() < 0 {
			s.deadPacks[i] = true
		}
	}
	s.healthPacks = compact(s.healthPacks, s.deadPacks)

	if !s.player.Alive() {
		s.enterGameOver()
		r.GameOver = true
	}

	s.report.merge(r)
	return r
}

func (s *Simulation) enterGameOver() {
	s.gameOver = true
	if s.score > s.highScore {
		s.highScore = s.score
	}
	log.Printf("run %s over: score=%d high=%d frames=%d", s.RunID(), s.score, s.highScore, s.frame)
}

// marks returns buf resized to n with every entry false
func marks(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// compact keeps unmarked items in order, reusing the backing array
func compact[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
