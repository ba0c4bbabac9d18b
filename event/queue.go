// Package event defines the state changes applied to the simulation between frames
// and the queue that carries them from the input and spawner goroutines to the frame loop
package event

import (
	"sync/atomic"

	"github.com/lixenwraith/zombie-fighter/parameter"
)

// EventQueue is a fixed-size ring of GameEvents with many writers and one reader
//
// Writers are the tcell poller (through input.Handler) and the two spawners.
// The only reader is the frame loop, which drains the ring once per frame
// before Step. A slot becomes readable only after its writer set the slot's
// ready flag, so the reader never sees a half-written event.
//
// When writers outrun the frame loop by more than EventQueueSize events the
// oldest unread events are dropped. Losing a stale spawn or key repeat is fine;
// blocking the input poller is not.
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool

	read  atomic.Uint64 // next slot the frame loop reads
	write atomic.Uint64 // next slot a writer claims
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next slot and stores ev in it; never blocks
func (q *EventQueue) Push(ev GameEvent) {
	for {
		claimed := q.write.Load()
		if !q.write.CompareAndSwap(claimed, claimed+1) {
			continue
		}

		slot := claimed & parameter.EventBufferMask
		q.slots[slot] = ev
		q.ready[slot].Store(true)

		// Writers lapped the reader: drop the oldest unread events
		if read := q.read.Load(); claimed+1-read > parameter.EventQueueSize {
			q.read.CompareAndSwap(read, claimed+1-parameter.EventQueueSize)
		}
		return
	}
}

// PushType queues an event without payload
func (q *EventQueue) PushType(t EventType) {
	q.Push(GameEvent{Type: t})
}

// Consume drains every readable event in push order
// Reading stops early at a slot whose writer has claimed it but not finished;
// that event is picked up on the next frame
func (q *EventQueue) Consume() []GameEvent {
	from := q.read.Load()
	to := q.write.Load()
	if from == to {
		return nil
	}
	if to-from > parameter.EventQueueSize {
		from = to - parameter.EventQueueSize
	}

	batch := make([]GameEvent, 0, to-from)
	for i := from; i < to; i++ {
		slot := i & parameter.EventBufferMask
		if !q.ready[slot].Load() {
			break
		}
		batch = append(batch, q.slots[slot])
		q.ready[slot].Store(false)
	}

	// A lapping writer may have moved read past us already; never move it back
	end := from + uint64(len(batch))
	for {
		cur := q.read.Load()
		if cur >= end || q.read.CompareAndSwap(cur, end) {
			break
		}
	}

	if len(batch) == 0 {
		return nil
	}
	return batch
}

// Len returns the number of unread events, at most EventQueueSize
// Approximate while writers are active
func (q *EventQueue) Len() int {
	read, write := q.read.Load(), q.write.Load()
	if write <= read {
		return 0
	}
	return int(min(write-read, parameter.EventQueueSize))
}
