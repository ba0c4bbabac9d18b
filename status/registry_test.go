package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyKills)
	b := r.Ints.Get(KeyKills)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("shared metric = %d, want 3", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyFrames).Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyFrames).Load(); got != 50 {
		t.Errorf("frames = %d, want 50", got)
	}
	if n := r.Ints.Count(); n != 1 {
		t.Errorf("Ints.Count() = %d, want 1", n)
	}
}

func TestRegistryLine(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyKills).Store(4)
	r.Ints.Get(KeyFrames).Store(120)
	r.Floats.Get(KeyFPS).Set(59.94)
	r.Bools.Get(KeySoundsMuted).Store(true)

	want := "loop.frames=120 sim.kills=4 loop.fps=59.9 audio.muted=true"
	if got := r.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}
