// Package savegame persists a game.State as a versioned YAML document.
// Every field is mapped explicitly so the format stays stable when the
// in-memory types change.
package savegame

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/copybird/internal/anim"
	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/core"
	"github.com/vovakirdan/copybird/internal/game"
	"github.com/vovakirdan/copybird/internal/timer"
)

// Version is the save format written by Encode.
const Version = 1

// FileName is the save file name inside the user's home directory.
const FileName = ".copy_bird_save"

var (
	// ErrVersion is returned for a save written in a different format version.
	ErrVersion = errors.New("savegame: unsupported version")
	// ErrCorrupt is returned for a save that cannot be decoded or fails validation.
	ErrCorrupt = errors.New("savegame: corrupt save")
)

type document struct {
	Version       int              `yaml:"version"`
	Difficulty    string           `yaml:"difficulty"`
	Score         int              `yaml:"score"`
	Started       bool             `yaml:"started"`
	Alive         bool             `yaml:"alive"`
	ScrollX       float64          `yaml:"scroll_x"`
	Player        playerRecord     `yaml:"player"`
	Obstacles     []obstacleRecord `yaml:"obstacles"`
	Particles     []particleRecord `yaml:"particles"`
	ObstacleTimer loopingRecord    `yaml:"obstacle_timer"`
	RestartTimer  oneShotRecord    `yaml:"restart_timer"`
}

type playerRecord struct {
	Position  core.Vector2    `yaml:"position"`
	Velocity  core.Vector2    `yaml:"velocity"`
	Rotation  float64         `yaml:"rotation"`
	Animation animationRecord `yaml:"animation"`
}

type animationRecord struct {
	FPS     float64  `yaml:"fps"`
	Frames  []string `yaml:"frames"`
	Elapsed float64  `yaml:"elapsed"`
}

type obstacleRecord struct {
	Pos     core.Vector2 `yaml:"pos"`
	Gap     float64      `yaml:"gap"`
	Crossed bool         `yaml:"crossed"`
}

type particleRecord struct {
	Pos                core.Vector2 `yaml:"pos"`
	Velocity           core.Vector2 `yaml:"velocity"`
	Rotation           float64      `yaml:"rotation"`
	RotationalVelocity float64      `yaml:"rotational_velocity"`
	Scale              float64      `yaml:"scale"`
	Tint               tintRecord   `yaml:"tint,flow"`
}

type tintRecord struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type loopingRecord struct {
	Interval  float64 `yaml:"interval"`
	Remaining float64 `yaml:"remaining"`
}

type oneShotRecord struct {
	Remaining float64 `yaml:"remaining"`
	Fired     bool    `yaml:"fired"`
}

// DefaultPath returns ~/.copy_bird_save, or the bare file name when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Encode serializes the state.
func Encode(s *game.State) ([]byte, error) {
	doc := document{
		Version:    Version,
		Difficulty: string(s.Difficulty),
		Score:      s.Score,
		Started:    s.Started,
		Alive:      s.Alive,
		ScrollX:    s.ScrollX,
		Player: playerRecord{
			Position: s.PlayerPosition,
			Velocity: s.PlayerVelocity,
			Rotation: s.PlayerRotation,
			Animation: animationRecord{
				FPS:     s.PlayerAnimation.FPS,
				Frames:  s.PlayerAnimation.Frames,
				Elapsed: s.PlayerAnimation.Elapsed,
			},
		},
		Obstacles:     make([]obstacleRecord, 0, len(s.Obstacles)),
		Particles:     make([]particleRecord, 0, len(s.Particles)),
		ObstacleTimer: loopingRecord{Interval: s.ObstacleTimer.Interval, Remaining: s.ObstacleTimer.Remaining},
		RestartTimer:  oneShotRecord{Remaining: s.RestartTimer.Remaining, Fired: s.RestartTimer.Fired},
	}

	for _, o := range s.Obstacles {
		doc.Obstacles = append(doc.Obstacles, obstacleRecord{Pos: o.Pos, Gap: o.Gap, Crossed: o.PlayerHasCrossed})
	}
	for _, p := range s.Particles {
		doc.Particles = append(doc.Particles, particleRecord{
			Pos:                p.Pos,
			Velocity:           p.Velocity,
			Rotation:           p.Rotation,
			RotationalVelocity: p.RotationalVelocity,
			Scale:              p.Scale,
			Tint:               tintRecord{R: p.Tint.R, G: p.Tint.G, B: p.Tint.B, A: p.Tint.A},
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("savegame: encode: %w", err)
	}
	return data, nil
}

// Decode restores a state written by Encode.
func Decode(data []byte) (*game.State, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if doc.Version == 0 {
		return nil, fmt.Errorf("%w: missing version", ErrCorrupt)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersion, doc.Version, Version)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	s := &game.State{
		Difficulty:     config.Difficulty(doc.Difficulty),
		Score:          doc.Score,
		Started:        doc.Started,
		Alive:          doc.Alive,
		ScrollX:        doc.ScrollX,
		PlayerPosition: doc.Player.Position,
		PlayerVelocity: doc.Player.Velocity,
		PlayerRotation: doc.Player.Rotation,
		PlayerAnimation: anim.Animation{
			FPS:     doc.Player.Animation.FPS,
			Frames:  doc.Player.Animation.Frames,
			Elapsed: doc.Player.Animation.Elapsed,
		},
		Obstacles:     make([]game.Obstacle, 0, len(doc.Obstacles)),
		Particles:     make([]game.Particle, 0, len(doc.Particles)),
		ObstacleTimer: timer.Looping{Interval: doc.ObstacleTimer.Interval, Remaining: doc.ObstacleTimer.Remaining},
		RestartTimer:  timer.OneShot{Remaining: doc.RestartTimer.Remaining, Fired: doc.RestartTimer.Fired},
	}
	for _, o := range doc.Obstacles {
		s.Obstacles = append(s.Obstacles, game.Obstacle{Pos: o.Pos, Gap: o.Gap, PlayerHasCrossed: o.Crossed})
	}
	for _, p := range doc.Particles {
		s.Particles = append(s.Particles, game.Particle{
			Pos:                p.Pos,
			Velocity:           p.Velocity,
			Rotation:           p.Rotation,
			RotationalVelocity: p.RotationalVelocity,
			Scale:              p.Scale,
			Tint:               color.RGBA{R: p.Tint.R, G: p.Tint.G, B: p.Tint.B, A: p.Tint.A},
		})
	}
	return s, nil
}

func (d *document) validate() error {
	var errs []error
	if !config.Difficulty(d.Difficulty).Valid() {
		errs = append(errs, fmt.Errorf("unknown difficulty %q", d.Difficulty))
	}
	if d.Score < 0 {
		errs = append(errs, fmt.Errorf("negative score %d", d.Score))
	}
	if len(d.Player.Animation.Frames) == 0 {
		errs = append(errs, errors.New("player animation has no frames"))
	}
	if d.Player.Animation.FPS <= 0 {
		errs = append(errs, fmt.Errorf("player animation fps %v", d.Player.Animation.FPS))
	}

	// A countdown at or below zero would make the first update fire once per
	// interval it is behind.
	if d.ObstacleTimer.Interval < timer.MinInterval {
		errs = append(errs, fmt.Errorf("obstacle timer interval %v", d.ObstacleTimer.Interval))
	}
	if !(d.ObstacleTimer.Remaining > 0) {
		errs = append(errs, fmt.Errorf("obstacle timer remaining %v", d.ObstacleTimer.Remaining))
	}
	if !d.RestartTimer.Fired && !(d.RestartTimer.Remaining >= 0) {
		errs = append(errs, fmt.Errorf("unfired restart timer remaining %v", d.RestartTimer.Remaining))
	}

	for i, o := range d.Obstacles {
		if o.Gap < 0 {
			errs = append(errs, fmt.Errorf("obstacle %d has negative gap %v", i, o.Gap))
		}
	}
	for i, p := range d.Particles {
		if p.Scale < 0 {
			errs = append(errs, fmt.Errorf("particle %d has negative scale %v", i, p.Scale))
		}
	}

	if name, v, ok := d.firstNonFinite(); !ok {
		errs = append(errs, fmt.Errorf("%s is %v", name, v))
	}
	return errors.Join(errs...)
}

// firstNonFinite walks every float in the document and reports the first
// NaN or infinity.
func (d *document) firstNonFinite() (name string, v float64, ok bool) {
	type field struct {
		name string
		v    float64
	}
	fields := []field{
		{"scroll_x", d.ScrollX},
		{"player.position.x", d.Player.Position.X},
		{"player.position.y", d.Player.Position.Y},
		{"player.velocity.x", d.Player.Velocity.X},
		{"player.velocity.y", d.Player.Velocity.Y},
		{"player.rotation", d.Player.Rotation},
		{"player.animation.fps", d.Player.Animation.FPS},
		{"player.animation.elapsed", d.Player.Animation.Elapsed},
		{"obstacle_timer.interval", d.ObstacleTimer.Interval},
		{"obstacle_timer.remaining", d.ObstacleTimer.Remaining},
		{"restart_timer.remaining", d.RestartTimer.Remaining},
	}
	for i, o := range d.Obstacles {
		prefix := fmt.Sprintf("obstacles[%d].", i)
		fields = append(fields,
			field{prefix + "pos.x", o.Pos.X},
			field{prefix + "pos.y", o.Pos.Y},
			field{prefix + "gap", o.Gap},
		)
	}
	for i, p := range d.Particles {
		prefix := fmt.Sprintf("particles[%d].", i)
		fields = append(fields,
			field{prefix + "pos.x", p.Pos.X},
			field{prefix + "pos.y", p.Pos.Y},
			field{prefix + "velocity.x", p.Velocity.X},
			field{prefix + "velocity.y", p.Velocity.Y},
			field{prefix + "rotation", p.Rotation},
			field{prefix + "rotational_velocity", p.RotationalVelocity},
			field{prefix + "scale", p.Scale},
		)
	}

	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return f.name, f.v, false
		}
	}
	return "", 0, true
}

// Save writes the state to path. The file is replaced atomically so a
// crash mid-write never leaves a truncated save behind.
func Save(path string, s *game.State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("savegame: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("savegame: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("savegame: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("savegame: replace %s: %w", path, err)
	}
	return nil
}

// Load reads a state previously written by Save.
func Load(path string) (*game.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("savegame: read %s: %w", path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("savegame: load %s: %w", path, err)
	}
	return s, nil
}
