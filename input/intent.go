package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Gameplay intents, forwarded to the simulation as events
	IntentMove  // h,j,k,l, arrows
	IntentFire  // Space
	IntentReset // r, Enter after game over
	IntentPause // p

	// Loop-level intents, handled by the frame loop itself
	IntentToggleMute // m
	IntentQuit       // q, Esc, Ctrl+C
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentMove:       "move",
	IntentFire:       "fire",
	IntentReset:      "reset",
	IntentPause:      "pause",
	IntentToggleMute: "toggle_mute",
	IntentQuit:       "quit",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is the parsed result of one key press
type Intent struct {
	Type IntentType

	// Move direction in whole steps, only set for IntentMove
	DX, DY int
}
