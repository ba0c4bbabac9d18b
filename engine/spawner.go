package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/zombie-fighter/config"
	"github.com/lixenwraith/zombie-fighter/core"
	"github.com/lixenwraith/zombie-fighter/event"
)

// Spawner is a fixed-interval timer that requests new entities
// It runs independently of the frame loop and only pushes events;
// placement, caps and game over handling happen when the event is applied
type Spawner struct {
	kind     event.EventType
	interval time.Duration
	queue    *event.EventQueue

	fired atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewSpawner creates a stopped spawner pushing kind events every interval
func NewSpawner(queue *event.EventQueue, kind event.EventType, interval time.Duration) *Spawner {
	return &Spawner{
		kind:     kind,
		interval: interval,
		queue:    queue,
		stopChan: make(chan struct{}),
	}
}

// NewSpawners creates the zombie and health pack spawners for a rule set
func NewSpawners(queue *event.EventQueue, rules config.Rules) []*Spawner {
	return []*Spawner{
		NewSpawner(queue, event.EventSpawnZombie, rules.ZombieSpawnInterval),
		NewSpawner(queue, event.EventSpawnHealthPack, rules.HealthPackSpawnInterval),
	}
}

// Start begins the timer loop; after Stop the loop exits immediately
func (s *Spawner) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
		log.Printf("spawner %s started (every %v)", s.kind, s.interval)
	}
}

// Stop halts the timer loop and waits for it to exit
func (s *Spawner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}

// Fired returns how many spawn events were pushed
func (s *Spawner) Fired() uint64 {
	return s.fired.Load()
}

// Kind returns the spawn event type
func (s *Spawner) Kind() event.EventType {
	return s.kind
}

func (s *Spawner) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.queue.PushType(s.kind)
			s.fired.Add(1)
		}
	}
}
