package config

import (
	"fmt"
	"strings"
)

// Difficulty names a row of the difficulty table.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the selectable difficulties in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// DifficultyParams are the per-difficulty gameplay values.
type DifficultyParams struct {
	Speed                 float64 `yaml:"speed"`                   // Obstacle scroll speed, pixels/s
	ObstacleGap           float64 `yaml:"obstacle_gap"`            // Vertical gap between pipes, pixels
	ObstacleSpawnInterval float64 `yaml:"obstacle_spawn_interval"` // Seconds between spawns
}

// ParseDifficulty converts a name such as "Hard" into a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if !d.Valid() {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", name)
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return string(d)
}

// Params returns the table row for d. Unknown difficulties fall back to the
// configured default so the simulation never runs without parameters.
func (c *GameConfig) Params(d Difficulty) DifficultyParams {
	if p, ok := c.Difficulties[d]; ok {
		return p
	}
	return c.Difficulties[c.DefaultDifficulty]
}
