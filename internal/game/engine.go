package game

import (
	"math/rand"

	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/core"
)

// Rand is the random source the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64 // Uniform in [0, 1)
}

// Engine advances a State by fixed time steps. It holds configuration and
// the random source only; all game data lives in the State it is given.
type Engine struct {
	cfg config.GameConfig
	rng Rand
}

// NewEngine creates an engine. cfg should already be validated.
// A nil rng gets a fixed-seed source so runs stay reproducible.
func NewEngine(cfg config.GameConfig, rng Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the engine configuration.
func (e *Engine) Config() *config.GameConfig {
	return &e.cfg
}

// NewState returns a fresh game at the given difficulty.
func (e *Engine) NewState(difficulty config.Difficulty) *State {
	return NewState(&e.cfg, difficulty)
}

// SetSprites replaces the presentation-owned sprite metrics, e.g. after a
// theme switch.
func (e *Engine) SetSprites(sprites config.SpriteConfig) {
	e.cfg.Sprites = sprites
}

// Jump makes the player flap and starts the game. It has no effect on a
// dead player.
func (e *Engine) Jump(s *State) []Event {
	if !s.Alive {
		return nil
	}
	s.PlayerVelocity.Set(e.cfg.Physics.JumpVelocity)
	s.Started = true
	return []Event{{Kind: EventJumped, Score: s.Score}}
}

// SetDifficulty switches difficulty. Only the spawn interval of future
// obstacles changes; the countdown to the next spawn is kept.
func (e *Engine) SetDifficulty(s *State, d config.Difficulty) {
	if !d.Valid() {
		return
	}
	s.Difficulty = d
	s.ObstacleTimer.SetInterval(e.cfg.Params(d).ObstacleSpawnInterval)
}

// Restart replaces s with a fresh game, keeping only the scroll offset and
// the difficulty.
func (e *Engine) Restart(s *State) {
	scrollX := s.ScrollX
	*s = *e.NewState(s.Difficulty)
	s.ScrollX = scrollX
}

// Advance moves the simulation forward by dt seconds and reports what
// happened. The step order matters: later steps read earlier mutations.
func (e *Engine) Advance(s *State, dt float64) []Event {
	var events []Event
	params := e.cfg.Params(s.Difficulty)
	gravity := e.cfg.Physics.Gravity

	// Background scroll runs in every phase.
	s.ScrollX += dt * params.Speed * 0.5
	if s.ScrollX > e.cfg.Sprites.ForegroundWidth {
		s.ScrollX = 0
	}

	s.PlayerAnimation.Update(dt)
	e.updateParticles(s, dt)

	if !s.Started {
		return events
	}

	s.PlayerVelocity = s.PlayerVelocity.Add(gravity.Scale(dt))
	s.PlayerPosition = s.PlayerPosition.Add(s.PlayerVelocity.Scale(dt))

	if s.Alive {
		for n := s.ObstacleTimer.Update(dt, nil); n > 0; n-- {
			e.spawnObstacle(s, params.ObstacleGap)
		}
	}

	for i := range s.Obstacles {
		obst := &s.Obstacles[i]
		obst.Pos.X -= dt * params.Speed
		if obst.Pos.X < s.PlayerPosition.X && !obst.PlayerHasCrossed && s.Alive {
			obst.PlayerHasCrossed = true
			s.Score++
			events = append(events, Event{Kind: EventScored, Score: s.Score})
			e.particleBurst(s)
		}
	}
	e.removeOffscreenObstacles(s)

	if s.Alive && e.Colliding(s) {
		s.Alive = false
		s.PlayerVelocity.Set(e.cfg.Physics.DeathVelocity)
		events = append(events, Event{Kind: EventDied, Score: s.Score})
	}

	if !s.Alive {
		s.PlayerRotation += dt * e.cfg.Physics.DeathRotationSpeed
		if s.RestartTimer.Update(dt, nil) {
			e.Restart(s)
			events = append(events, Event{Kind: EventRestarted})
		}
	}

	return events
}

// spawnObstacle appends an obstacle at the right screen edge with its gap
// placed uniformly inside the padded spawn band.
func (e *Engine) spawnObstacle(s *State, gap float64) {
	low := e.cfg.Obstacles.Padding
	high := e.cfg.Screen.Height - e.cfg.Obstacles.Padding - gap
	if high < low {
		high = low
	}

	s.Obstacles = append(s.Obstacles, Obstacle{
		Pos: core.Vec(e.cfg.Screen.Width, e.uniform(low, high)),
		Gap: gap,
	})
}

// removeOffscreenObstacles drops obstacles that scrolled fully past the left edge.
func (e *Engine) removeOffscreenObstacles(s *State) {
	width := e.cfg.Sprites.Obstacle.X
	kept := s.Obstacles[:0]
	for _, obst := range s.Obstacles {
		if obst.Pos.X >= -width {
			kept = append(kept, obst)
		}
	}
	s.Obstacles = kept
}

// uniform returns a value in [low, high).
func (e *Engine) uniform(low, high float64) float64 {
	return low + e.rng.Float64()*(high-low)
}
