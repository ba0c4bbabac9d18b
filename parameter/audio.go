package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Fire Sound Timing
const (
	FireSoundDuration = 60 * time.Millisecond
	FireSoundAttack   = 2 * time.Millisecond
	FireSoundRelease  = 40 * time.Millisecond
)

// Kill Sound Timing
const (
	KillSoundNote1Duration = 70 * time.Millisecond
	KillSoundNote2Duration = 160 * time.Millisecond
	KillSoundAttack        = 5 * time.Millisecond
	KillSoundNote1Release  = 30 * time.Millisecond
	KillSoundNote2Release  = 120 * time.Millisecond
)

// Hurt Sound Timing
const (
	HurtSoundDuration = 120 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 60 * time.Millisecond
)

// Heal Sound Timing
const (
	HealSoundDuration = 250 * time.Millisecond
	HealSoundAttack   = 10 * time.Millisecond
	HealSoundRelease  = 180 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundNoteDuration = 220 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 150 * time.Millisecond
)
