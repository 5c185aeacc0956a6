// Package audio plays the game's sound cues. Sounds are synthesized on the
// fly so the binary ships without sample files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue volumes.
const (
	FlapVolume  = 0.3
	ScoreVolume = 0.5
	DeathVolume = 0.6
)

// Player plays sound cues. Implementations must not block the caller.
type Player interface {
	Flap(pitch float64)
	Score(pitch float64)
	Death()
	SetMusic(on bool) // Starts or pauses the background tune
	Close() error
}

// ScorePitch returns the chime pitch for a score: it rises with every point.
func ScorePitch(score int) float64 {
	return 0.4 + float64(score)*0.05
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Flap(float64)  {}
func (Nop) Score(float64) {}
func (Nop) Death()        {}
func (Nop) SetMusic(bool) {}
func (Nop) Close() error  { return nil }

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl // Loops forever, paused until SetMusic(true)
	closed bool
}

// NewSpeaker opens the audio device. Callers usually fall back to Nop on error.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	s := &Speaker{
		mixer: &beep.Mixer{},
		music: &beep.Ctrl{Streamer: Music(SampleRate, MusicVolume), Paused: true},
	}
	s.mixer.Add(s.music)
	speaker.Play(s.mixer)
	return s, nil
}

// Flap plays the jump chirp.
func (s *Speaker) Flap(pitch float64) {
	s.play(FlapSound(SampleRate, pitch, FlapVolume))
}

// Score plays the scoring chime.
func (s *Speaker) Score(pitch float64) {
	s.play(ScoreSound(SampleRate, pitch, ScoreVolume))
}

// Death plays the crash thud.
func (s *Speaker) Death() {
	s.play(DeathSound(SampleRate, DeathVolume))
}

// SetMusic starts or pauses the background tune where it left off.
func (s *Speaker) SetMusic(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Lock()
	s.music.Paused = !on
	speaker.Unlock()
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
