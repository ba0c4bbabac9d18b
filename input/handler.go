package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/event"
)

// GameOverFunc reports whether the current run has ended
type GameOverFunc func() bool

// Handler parses key events into intents and pushes gameplay intents to the queue
// Loop-level intents (mute, quit) are only returned
type Handler struct {
	queue    *event.EventQueue
	keyTable *KeyTable
	gameOver GameOverFunc
}

// NewHandler creates a handler on the default key table
func NewHandler(queue *event.EventQueue, gameOver GameOverFunc) *Handler {
	return &Handler{
		queue:    queue,
		keyTable: DefaultKeyTable(),
		gameOver: gameOver,
	}
}

// Rebind merges override bindings into the handler's key table
func (h *Handler) Rebind(override *KeyTable) {
	h.keyTable.Merge(override)
}

// HandleKey resolves one key event, pushing the matching game event if any
func (h *Handler) HandleKey(ev *tcell.EventKey) Intent {
	entry, ok := h.keyTable.Lookup(ev)
	if !ok {
		return Intent{Type: IntentNone}
	}
	if entry.OnlyGameOver && (h.gameOver == nil || !h.gameOver()) {
		return Intent{Type: IntentNone}
	}

	intent := Intent{Type: entry.Intent, DX: entry.DX, DY: entry.DY}

	switch intent.Type {
	case IntentMove:
		h.queue.Push(event.GameEvent{
			Type:    event.EventPlayerMove,
			Payload: &event.MovePayload{DX: intent.DX, DY: intent.DY},
		})
	case IntentFire:
		h.queue.PushType(event.EventFire)
	case IntentReset:
		h.queue.PushType(event.EventReset)
	case IntentPause:
		h.queue.PushType(event.EventPauseToggle)
	}

	return intent
}
