// Package config provides YAML-based game configuration loading and the
// difficulty table for copybird.
package config

import "github.com/vovakirdan/copybird/internal/core"

// GameConfig contains every tunable constant of the simulation plus the
// sprite metrics the presentation layer hands to the engine.
type GameConfig struct {
	Screen            ScreenConfig                    `yaml:"screen"`
	Physics           PhysicsConfig                   `yaml:"physics"`
	Player            PlayerConfig                    `yaml:"player"`
	Obstacles         ObstacleConfig                  `yaml:"obstacles"`
	RestartDelay      float64                         `yaml:"restart_delay"` // Seconds from death to restart
	DefaultDifficulty Difficulty                      `yaml:"default_difficulty"`
	Difficulties      map[Difficulty]DifficultyParams `yaml:"difficulties"`
	Sprites           SpriteConfig                    `yaml:"sprites"`
	TickRate          int                             `yaml:"tick_rate"` // Fixed simulation steps per second
}

// ScreenConfig is the size of the simulated world in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines accelerations and fixed velocities.
type PhysicsConfig struct {
	Gravity            core.Vector2 `yaml:"gravity"`              // pixels/s^2
	JumpVelocity       core.Vector2 `yaml:"jump_velocity"`        // pixels/s
	DeathVelocity      core.Vector2 `yaml:"death_velocity"`       // pixels/s
	DeathRotationSpeed float64      `yaml:"death_rotation_speed"` // degrees/s
}

// PlayerConfig defines the player's spawn point and animation.
type PlayerConfig struct {
	Start        core.Vector2 `yaml:"start"`
	AnimationFPS float64      `yaml:"animation_fps"`
	Frames       []string     `yaml:"frames"`
}

// ObstacleConfig defines obstacle placement.
type ObstacleConfig struct {
	Padding float64 `yaml:"padding"` // Minimum distance between the gap and the screen edges
}

// SpriteConfig holds presentation-owned sprite metrics used for collision
// and scrolling.
type SpriteConfig struct {
	Player          core.Vector2 `yaml:"player"`           // Player hit box size
	Obstacle        core.Vector2 `yaml:"obstacle"`         // Single pipe size
	ForegroundWidth float64      `yaml:"foreground_width"` // Width after which the background scroll wraps
}
