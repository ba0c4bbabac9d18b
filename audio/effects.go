package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/zombie-fighter/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope of the given total duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(0, total-att-rel)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a single shaped oscillator tone
func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// Sound effect generators

// CreateFireSound generates a short high blip for a fired bullet
func CreateFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := note(1320.0, WaveSquare, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, rate)
	return newVolume(blip, cfg.effectVolume(SoundFire))
}

// CreateKillSound generates a falling two-note thud for a zombie shot down
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E4)
	n1 := note(329.63, WaveSaw, parameter.KillSoundNote1Duration, parameter.KillSoundAttack, parameter.KillSoundNote1Release, rate)
	// Second note (A3)
	n2 := note(220.0, WaveSaw, parameter.KillSoundNote2Duration, parameter.KillSoundAttack, parameter.KillSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.effectVolume(SoundKill))
}

// CreateHurtSound generates a noisy low buzz for zombie contact
func CreateHurtSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := note(0, WaveNoise, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	buzz := note(90.0, WaveSquare, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(buzz, 0.5),
	)
	return newVolume(mixed, cfg.effectVolume(SoundHurt))
}

// CreateHealSound generates a soft rising chime for a health pack pickup
func CreateHealSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E5) from beep's tone generator, fifth above from the oscillator
	var fund beep.Streamer
	if tone, err := generators.SineTone(rate, 659.25); err == nil {
		fund = NewEnvelope(beep.Take(rate.N(parameter.HealSoundDuration), tone),
			parameter.HealSoundDuration, parameter.HealSoundAttack, parameter.HealSoundRelease, rate)
	} else {
		fund = note(659.25, WaveSine, parameter.HealSoundDuration, parameter.HealSoundAttack, parameter.HealSoundRelease, rate)
	}
	fifth := note(987.77, WaveSine, parameter.HealSoundDuration, parameter.HealSoundAttack, parameter.HealSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(fifth, 0.3),
	)
	return newVolume(mixed, cfg.effectVolume(SoundHeal))
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.0, 329.63, 261.63} // G4 E4 C4
	seq := make([]beep.Streamer, len(notes))
	for i, freq := range notes {
		seq[i] = note(freq, WaveSine, parameter.GameOverSoundNoteDuration,
			parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	}
	return newVolume(beep.Seq(seq...), cfg.effectVolume(SoundGameOver))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFire:
		return CreateFireSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundHurt:
		return CreateHurtSound(cfg)
	case SoundHeal:
		return CreateHealSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
