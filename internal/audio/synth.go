package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x2545f491,
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
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			// xorshift keeps the noise reproducible
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue lengths.
const (
	flapDuration  = 70 * time.Millisecond
	scoreNote     = 60 * time.Millisecond
	deathDuration = 350 * time.Millisecond
)

// Base frequencies at pitch 1.0.
const (
	flapFreq  = 520.0
	scoreFreq = 1320.0
	deathFreq = 90.0
)

// FlapSound is a short square chirp. pitch scales the frequency.
func FlapSound(rate beep.SampleRate, pitch, volume float64) beep.Streamer {
	osc := NewOscillator(flapFreq*pitch, flapDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, flapDuration, 5*time.Millisecond, 40*time.Millisecond, rate)
	return withVolume(shaped, volume*0.5)
}

// ScoreSound is a two-note chime; the second note is a fifth above the first.
func ScoreSound(rate beep.SampleRate, pitch, volume float64) beep.Streamer {
	freq := scoreFreq * pitch

	var first beep.Streamer
	if sine, err := generators.SineTone(rate, freq); err == nil {
		first = beep.Take(rate.N(scoreNote), sine)
	} else {
		// SineTone rejects frequencies above Nyquist
		first = NewOscillator(freq, scoreNote, WaveSine, rate)
	}
	first = NewEnvelope(first, scoreNote, 2*time.Millisecond, 20*time.Millisecond, rate)

	second := NewOscillator(freq*1.5, 2*scoreNote, WaveSine, rate)
	second = NewEnvelope(second, 2*scoreNote, 2*time.Millisecond, 90*time.Millisecond, rate)

	return withVolume(beep.Seq(first, second), volume)
}

// DeathSound is a low thud with a burst of noise on top.
func DeathSound(rate beep.SampleRate, volume float64) beep.Streamer {
	thud := NewEnvelope(NewOscillator(deathFreq, deathDuration, WaveSine, rate),
		deathDuration, 5*time.Millisecond, 300*time.Millisecond, rate)
	crack := NewEnvelope(NewOscillator(0, deathDuration/3, WaveNoise, rate),
		deathDuration/3, time.Millisecond, 100*time.Millisecond, rate)

	return withVolume(beep.Mix(withVolume(thud, 0.8), withVolume(crack, 0.3)), volume)
}
