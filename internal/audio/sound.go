// Package audio plays the synthesized game sound effects through the
// system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundGameOver
)

// String returns the effect name.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// SoundFor maps a game event to its effect.
func SoundFor(e invaders.Event) (Sound, bool) {
	switch e {
	case invaders.EventShoot:
		return SoundShoot, true
	case invaders.EventExplosion:
		return SoundExplosion, true
	case invaders.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// NewSound builds a fresh streamer for the effect. Streamers are single use.
func NewSound(s Sound, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundShoot:
		st = NewSweep(1200, 400, 90*time.Millisecond, WaveSquare, rate)
	case SoundExplosion:
		st = NewSweep(0, 0, 250*time.Millisecond, WaveNoise, rate)
	case SoundGameOver:
		st = beep.Seq(
			NewSweep(440, 440, 180*time.Millisecond, WaveSquare, rate),
			NewSweep(349, 349, 180*time.Millisecond, WaveSquare, rate),
			NewSweep(262, 131, 400*time.Millisecond, WaveSquare, rate),
		)
	default:
		return beep.Silence(0)
	}
	// Square and noise waves run at full scale
	return &effects.Volume{Streamer: st, Base: 2, Volume: -3}
}

// SoundManager mixes effects onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Without a successful call Play does nothing.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts an effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewSound(s, sampleRate))
	speaker.Unlock()
}

// OnEvent plays the effect for a game event. It matches the event hook
// signature of invaders.Hooks.
func (sm *SoundManager) OnEvent(e invaders.Event) {
	if s, ok := SoundFor(e); ok {
		sm.Play(s)
	}
}
