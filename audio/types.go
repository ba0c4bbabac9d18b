package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire     SoundType = iota // Bullet fired
	SoundKill                      // Zombie shot down
	SoundHurt                      // Zombie reached the player
	SoundHeal                      // Health pack picked up
	SoundGameOver                  // Run ended
	soundTypeCount
)

var soundNames = [...]string{
	SoundFire:     "fire",
	SoundKill:     "kill",
	SoundHurt:     "hurt",
	SoundHeal:     "heal",
	SoundGameOver: "game_over",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
