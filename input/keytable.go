package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does without function pointers
type KeyEntry struct {
	Intent IntentType
	DX, DY int

	// OnlyGameOver restricts the binding to the game over screen
	OnlyGameOver bool
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyUp:     {Intent: IntentMove, DY: -1},
			tcell.KeyDown:   {Intent: IntentMove, DY: 1},
			tcell.KeyLeft:   {Intent: IntentMove, DX: -1},
			tcell.KeyRight:  {Intent: IntentMove, DX: 1},
			tcell.KeyEnter:  {Intent: IntentReset, OnlyGameOver: true},
		},

		Runes: map[rune]KeyEntry{
			// Movement
			'h': {Intent: IntentMove, DX: -1},
			'j': {Intent: IntentMove, DY: 1},
			'k': {Intent: IntentMove, DY: -1},
			'l': {Intent: IntentMove, DX: 1},

			' ': {Intent: IntentFire},
			'r': {Intent: IntentReset},
			'p': {Intent: IntentPause},
			'm': {Intent: IntentToggleMute},
			'q': {Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}

// Merge applies the bindings of an override table on top of kt
// A zero entry unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, entry := range override.SpecialKeys {
		if entry == (KeyEntry{}) {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = entry
	}
	for r, entry := range override.Runes {
		if entry == (KeyEntry{}) {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = entry
	}
}
