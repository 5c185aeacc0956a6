package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.copybird/config.yaml -> ./configs/copybird.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "copybird.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes a YAML document on top of the built-in defaults, so a file
// only needs the keys it overrides. Difficulty rows are replaced whole.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".copybird", "config.yaml")
}

// Validate rejects degenerate configurations up front so the simulation
// never has to guard against them. All violations are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	}
	if c.Player.AnimationFPS <= 0 {
		fail("player.animation_fps must be positive, got %v", c.Player.AnimationFPS)
	}
	if len(c.Player.Frames) == 0 {
		fail("player.frames must not be empty")
	}
	if c.Obstacles.Padding < 0 {
		fail("obstacles.padding must not be negative, got %v", c.Obstacles.Padding)
	}
	if c.RestartDelay <= 0 {
		fail("restart_delay must be positive, got %v", c.RestartDelay)
	}
	if c.Physics.DeathRotationSpeed < 0 {
		fail("physics.death_rotation_speed must not be negative, got %v", c.Physics.DeathRotationSpeed)
	}
	if c.TickRate <= 0 {
		fail("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Sprites.Player.X < 0 || c.Sprites.Player.Y < 0 {
		fail("sprites.player must not be negative, got %+v", c.Sprites.Player)
	}
	if c.Sprites.Obstacle.X < 0 || c.Sprites.Obstacle.Y < 0 {
		fail("sprites.obstacle must not be negative, got %+v", c.Sprites.Obstacle)
	}
	if c.Sprites.ForegroundWidth <= 0 {
		fail("sprites.foreground_width must be positive, got %v", c.Sprites.ForegroundWidth)
	}
	if !c.DefaultDifficulty.Valid() {
		fail("default_difficulty %q is not easy, medium or hard", c.DefaultDifficulty)
	}

	for d := range c.Difficulties {
		if !d.Valid() {
			fail("difficulties: unknown difficulty %q", d)
		}
	}
	for _, d := range Difficulties {
		p, ok := c.Difficulties[d]
		if !ok {
			fail("difficulties.%s is missing", d)
			continue
		}
		if p.Speed <= 0 {
			fail("difficulties.%s.speed must be positive, got %v", d, p.Speed)
		}
		if p.ObstacleGap <= 0 {
			fail("difficulties.%s.obstacle_gap must be positive, got %v", d, p.ObstacleGap)
		}
		if p.ObstacleSpawnInterval <= 0 {
			fail("difficulties.%s.obstacle_spawn_interval must be positive, got %v", d, p.ObstacleSpawnInterval)
		}
		if band := c.Screen.Height - 2*c.Obstacles.Padding - p.ObstacleGap; band < 0 {
			fail("difficulties.%s: obstacle gap %v plus padding does not fit a %v high screen", d, p.ObstacleGap, c.Screen.Height)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
