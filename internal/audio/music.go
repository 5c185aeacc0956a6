package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// MusicVolume keeps the background tune under the cues.
const MusicVolume = 0.15

// musicEighth is the length of an eighth note in the tune.
const musicEighth = 150 * time.Millisecond

// tuneNote is one note of the background tune. A zero freq is a rest.
type tuneNote struct {
	freq    float64
	eighths int
}

// tune is a short C-major loop in the spirit of the original chiptune.
var tune = []tuneNote{
	{523.25, 1}, {659.25, 1}, {783.99, 1}, {659.25, 1},
	{698.46, 2}, {587.33, 2},
	{659.25, 1}, {523.25, 1}, {587.33, 1}, {493.88, 1},
	{523.25, 2}, {0, 2},
	{440.00, 1}, {523.25, 1}, {659.25, 1}, {523.25, 1},
	{587.33, 2}, {493.88, 2},
	{523.25, 1}, {392.00, 1}, {440.00, 1}, {493.88, 1},
	{523.25, 3}, {0, 1},
}

// TuneDuration is the length of one pass over the tune.
func TuneDuration() time.Duration {
	var eighths int
	for _, n := range tune {
		eighths += n.eighths
	}
	return time.Duration(eighths) * musicEighth
}

// TuneOnce plays the background tune a single time.
func TuneOnce(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(tune))
	for _, n := range tune {
		d := time.Duration(n.eighths) * musicEighth
		if n.freq == 0 {
			notes = append(notes, beep.Silence(rate.N(d)))
			continue
		}
		osc := NewOscillator(n.freq, d, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate))
	}
	return withVolume(beep.Seq(notes...), volume*0.5)
}

// Music loops the background tune forever.
func Music(rate beep.SampleRate, volume float64) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return TuneOnce(rate, volume)
	})
}
