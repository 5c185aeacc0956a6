// Package game implements the copybird simulation: a sprite falls under
// gravity, flaps on input and must pass through a stream of gated obstacles.
// Everything here is deterministic given the injected random source; the
// presentation layer only reads State and reacts to Events.
package game

import (
	"image/color"

	"github.com/vovakirdan/copybird/internal/anim"
	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/core"
	"github.com/vovakirdan/copybird/internal/timer"
)

// State is the full mutable simulation snapshot. It is owned by a single
// loop and is the only thing that needs saving to resume a game.
type State struct {
	Difficulty      config.Difficulty
	Score           int
	Started         bool // Set by the first jump
	Alive           bool
	ScrollX         float64 // Background scroll offset, wraps at the foreground width
	PlayerPosition  core.Vector2
	PlayerVelocity  core.Vector2
	PlayerRotation  float64 // Degrees, only changes while dead
	PlayerAnimation anim.Animation
	Obstacles       []Obstacle
	Particles       []Particle
	ObstacleTimer   timer.Looping
	RestartTimer    timer.OneShot
}

// Obstacle is a pair of pipes with a gap between them.
// Pos is the top pipe's bottom-left anchor: the top pipe ends at Pos.Y and
// the bottom pipe starts at Pos.Y + Gap.
type Obstacle struct {
	Pos              core.Vector2
	PlayerHasCrossed bool // Flips once, when the player passes it alive
	Gap              float64
}

// Particle is a purely decorative physics object spawned on scoring.
type Particle struct {
	Pos                core.Vector2
	Velocity           core.Vector2
	Rotation           float64 // Degrees
	RotationalVelocity float64 // Degrees per second
	Scale              float64
	Tint               color.RGBA
}

// NewState returns a fresh game in the "waiting for first jump" phase.
func NewState(cfg *config.GameConfig, difficulty config.Difficulty) *State {
	if !difficulty.Valid() {
		difficulty = cfg.DefaultDifficulty
	}
	params := cfg.Params(difficulty)

	return &State{
		Difficulty:      difficulty,
		Alive:           true,
		PlayerPosition:  cfg.Player.Start,
		PlayerAnimation: anim.New(cfg.Player.AnimationFPS, cfg.Player.Frames),
		Obstacles:       make([]Obstacle, 0, 8),
		Particles:       make([]Particle, 0, ParticleBurstSize),
		ObstacleTimer:   timer.NewLooping(params.ObstacleSpawnInterval),
		RestartTimer:    timer.NewOneShot(cfg.RestartDelay),
	}
}

// Phase is a coarse view of the state machine for the presentation layer.
type Phase int

const (
	PhaseWaiting Phase = iota // Not started, waiting for the first jump
	PhaseAlive                // Started and scrolling
	PhaseDead                 // Dead, restart countdown running
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseAlive:
		return "alive"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Phase derives the current phase from the Started and Alive flags.
func (s *State) Phase() Phase {
	switch {
	case !s.Alive:
		return PhaseDead
	case !s.Started:
		return PhaseWaiting
	default:
		return PhaseAlive
	}
}
