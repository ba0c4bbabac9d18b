// Package status is a small lock-free metrics registry read by the debug status line
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyFrames      = "loop.frames"
	KeyFPS         = "loop.fps"
	KeyEvents      = "loop.events"
	KeyKills       = "sim.kills"
	KeyHits        = "sim.hits"
	KeyPickups     = "sim.pickups"
	KeyEntities    = "sim.entities"
	KeyRuns        = "sim.runs"
	KeySoundsMuted = "audio.muted"

	// KeySpawnerPrefix + event name counts spawn requests per spawner
	KeySpawnerPrefix = "spawner."
)

// Registry is the central metrics facade
// Writers cache pointers during init and update the atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Line renders every metric as "key=value" pairs in sorted order, ints first
func (r *Registry) Line() string {
	var sb strings.Builder
	sb.Grow(24 * (r.Ints.Count() + r.Floats.Count() + r.Bools.Count()))
	sep := func() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	}

	r.Ints.Range(func(key string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&sb, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		sep()
		fmt.Fprintf(&sb, "%s=%.1f", key, v.Get())
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		sep()
		fmt.Fprintf(&sb, "%s=%t", key, v.Load())
	})
	return sb.String()
}
