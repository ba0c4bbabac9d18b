package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Input Event ===

	// EventPlayerMove translates the player by one step per axis unit
	// Trigger: arrow and h/j/k/l keys
	// Consumer: Simulation | Payload: *MovePayload
	EventPlayerMove

	// EventFire appends a bullet at the player's leading edge
	// Trigger: Space
	// Consumer: Simulation | Payload: nil
	EventFire

	// === Spawner Event ===

	// EventSpawnZombie appends a zombie at the right edge
	// Trigger: zombie Spawner tick
	// Consumer: Simulation | Payload: nil
	EventSpawnZombie

	// EventSpawnHealthPack appends a health pack at the right edge
	// Trigger: health pack Spawner tick
	// Consumer: Simulation | Payload: nil
	EventSpawnHealthPack

	// === Run Control Event ===

	// EventReset rebuilds all run state from initial values
	// Trigger: r, or Enter on the game over panel
	// Consumer: Simulation | Payload: nil
	EventReset

	// EventPauseToggle freezes or resumes the simulation
	// Trigger: p
	// Consumer: Simulation | Payload: nil
	EventPauseToggle

	// EventResize changes the logical surface dimensions
	// Trigger: terminal resize
	// Consumer: Simulation | Payload: *ResizePayload
	EventResize
)

var eventNames = map[EventType]string{
	EventNone:            "none",
	EventPlayerMove:      "player_move",
	EventFire:            "fire",
	EventSpawnZombie:     "spawn_zombie",
	EventSpawnHealthPack: "spawn_health_pack",
	EventReset:           "reset",
	EventPauseToggle:     "pause_toggle",
	EventResize:          "resize",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued state change applied between frames
type GameEvent struct {
	Type    EventType
	Payload any
}
