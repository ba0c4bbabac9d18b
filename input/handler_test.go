package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/event"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKeyGameplay(t *testing.T) {
	tests := []struct {
		name      string
		ev        *tcell.EventKey
		intent    IntentType
		eventType event.EventType
		dx, dy    int
	}{
		{"h moves left", runeKey('h'), IntentMove, event.EventPlayerMove, -1, 0},
		{"l moves right", runeKey('l'), IntentMove, event.EventPlayerMove, 1, 0},
		{"k moves up", runeKey('k'), IntentMove, event.EventPlayerMove, 0, -1},
		{"j moves down", runeKey('j'), IntentMove, event.EventPlayerMove, 0, 1},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentMove, event.EventPlayerMove, -1, 0},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentMove, event.EventPlayerMove, 1, 0},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentMove, event.EventPlayerMove, 0, -1},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentMove, event.EventPlayerMove, 0, 1},
		{"space fires", runeKey(' '), IntentFire, event.EventFire, 0, 0},
		{"r resets", runeKey('r'), IntentReset, event.EventReset, 0, 0},
		{"p pauses", runeKey('p'), IntentPause, event.EventPauseToggle, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := event.NewEventQueue()
			h := NewHandler(q, func() bool { return false })

			got := h.HandleKey(tt.ev)
			if got.Type != tt.intent {
				t.Fatalf("intent = %s, want %s", got.Type, tt.intent)
			}

			events := q.Consume()
			if len(events) != 1 {
				t.Fatalf("pushed %d events, want 1", len(events))
			}
			if events[0].Type != tt.eventType {
				t.Errorf("event = %s, want %s", events[0].Type, tt.eventType)
			}
			if tt.eventType == event.EventPlayerMove {
				p, ok := events[0].Payload.(*event.MovePayload)
				if !ok {
					t.Fatalf("payload %T, want *MovePayload", events[0].Payload)
				}
				if p.DX != tt.dx || p.DY != tt.dy {
					t.Errorf("move (%d,%d), want (%d,%d)", p.DX, p.DY, tt.dx, tt.dy)
				}
			}
		})
	}
}

func TestHandleKeyLoopIntents(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		intent IntentType
	}{
		{"q quits", runeKey('q'), IntentQuit},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl+c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"m mutes", runeKey('m'), IntentToggleMute},
		{"unbound rune", runeKey('z'), IntentNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := event.NewEventQueue()
			h := NewHandler(q, func() bool { return false })

			if got := h.HandleKey(tt.ev); got.Type != tt.intent {
				t.Errorf("intent = %s, want %s", got.Type, tt.intent)
			}
			if q.Len() != 0 {
				t.Errorf("loop intent pushed %d events", q.Len())
			}
		})
	}
}

func TestEnterResetsOnlyAfterGameOver(t *testing.T) {
	over := false
	q := event.NewEventQueue()
	h := NewHandler(q, func() bool { return over })
	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	if got := h.HandleKey(enter); got.Type != IntentNone {
		t.Errorf("Enter during play = %s, want none", got.Type)
	}
	if q.Len() != 0 {
		t.Fatal("Enter during play pushed an event")
	}

	over = true
	if got := h.HandleKey(enter); got.Type != IntentReset {
		t.Errorf("Enter after game over = %s, want reset", got.Type)
	}
	events := q.Consume()
	if len(events) != 1 || events[0].Type != event.EventReset {
		t.Errorf("events = %v, want one reset", events)
	}
}

func TestRebind(t *testing.T) {
	override, err := LoadKeyConfig(map[string]string{
		"w":      "move_up",
		"space":  "none",
		"Enter":  "fire",
		"Ctrl-Q": "quit",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	q := event.NewEventQueue()
	h := NewHandler(q, func() bool { return false })
	h.Rebind(override)

	if got := h.HandleKey(runeKey('w')); got.Type != IntentMove || got.DY != -1 {
		t.Errorf("w = %+v, want move up", got)
	}
	if got := h.HandleKey(runeKey(' ')); got.Type != IntentNone {
		t.Errorf("space after unbind = %s, want none", got.Type)
	}
	if got := h.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); got.Type != IntentFire {
		t.Errorf("Enter = %s, want fire", got.Type)
	}
	if got := h.HandleKey(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)); got.Type != IntentQuit {
		t.Errorf("Ctrl-Q = %s, want quit", got.Type)
	}
	// Untouched bindings survive
	if got := h.HandleKey(runeKey('h')); got.Type != IntentMove {
		t.Errorf("h = %s, want move", got.Type)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"unknown action", map[string]string{"x": "teleport"}},
		{"unknown key", map[string]string{"Hyper-X": "fire"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig(tt.bindings); err == nil {
				t.Error("expected error")
			}
		})
	}
}
