package config

import (
	_ "embed"

	"github.com/vovakirdan/copybird/internal/core"
)

//go:embed defaults/copybird.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching defaults/copybird.yaml.
func Default() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  320,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:            core.Vec(0, 600),
			JumpVelocity:       core.Vec(0, -300),
			DeathVelocity:      core.Vec(50, -500),
			DeathRotationSpeed: 360,
		},
		Player: PlayerConfig{
			Start:        core.Vec(20, 250),
			AnimationFPS: 5,
			Frames:       []string{"player1", "player2", "player3", "player2"},
		},
		Obstacles: ObstacleConfig{
			Padding: 50,
		},
		RestartDelay:      3,
		DefaultDifficulty: Medium,
		Difficulties: map[Difficulty]DifficultyParams{
			Easy: {
				Speed:                 150,
				ObstacleGap:           220,
				ObstacleSpawnInterval: 2.0,
			},
			Medium: {
				Speed:                 200,
				ObstacleGap:           180,
				ObstacleSpawnInterval: 1.3,
			},
			Hard: {
				Speed:                 400,
				ObstacleGap:           160,
				ObstacleSpawnInterval: 1.0,
			},
		},
		Sprites: SpriteConfig{
			Player:          core.Vec(34, 24),
			Obstacle:        core.Vec(52, 320),
			ForegroundWidth: 336,
		},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
