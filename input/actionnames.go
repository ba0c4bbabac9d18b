package input

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"move_left":  {Intent: IntentMove, DX: -1},
	"move_right": {Intent: IntentMove, DX: 1},
	"move_up":    {Intent: IntentMove, DY: -1},
	"move_down":  {Intent: IntentMove, DY: 1},

	"fire":           {Intent: IntentFire},
	"reset":          {Intent: IntentReset},
	"reset_gameover": {Intent: IntentReset, OnlyGameOver: true},
	"pause":          {Intent: IntentPause},
	"toggle_mute":    {Intent: IntentToggleMute},
	"quit":           {Intent: IntentQuit},
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}
