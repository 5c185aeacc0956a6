// Package anim cycles through sprite frame identifiers at a fixed frame rate.
package anim

import "math"

// Animation loops over Frames at FPS frames per second.
// Elapsed only ever grows; the current frame is derived from it on demand.
type Animation struct {
	FPS     float64
	Frames  []string
	Elapsed float64
}

// New creates an animation at the start of its first frame.
func New(fps float64, frames []string) Animation {
	return Animation{
		FPS:    fps,
		Frames: append([]string(nil), frames...),
	}
}

// Update accumulates elapsed seconds.
func (a *Animation) Update(elapsed float64) {
	a.Elapsed += elapsed
}

// Index returns the index of the current frame in Frames.
func (a Animation) Index() int {
	n := len(a.Frames)
	if n == 0 || a.FPS <= 0 {
		return 0
	}
	i := int(math.Floor(a.Elapsed*a.FPS)) % n
	if i < 0 {
		i += n
	}
	return i
}

// Frame returns the current frame identifier, or "" when there are no frames.
func (a Animation) Frame() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.Index()]
}

// CycleDuration returns the length of one full loop in seconds.
func (a Animation) CycleDuration() float64 {
	if a.FPS <= 0 {
		return 0
	}
	return float64(len(a.Frames)) / a.FPS
}
