// Package theme provides a global registry of presentation themes.
// Themes register themselves in init() functions, allowing the platform
// to list and switch them without hardcoded dependencies.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/copybird/internal/core"
)

// Default is the theme used when none is requested.
const Default = "classic"

// Theme maps the simulation's sprite identifiers to terminal glyphs.
// It is pure presentation: switching theme never touches game state,
// except that PlayerSize (when set) replaces the player hit box.
type Theme struct {
	ID    string
	Title string

	// Frames maps animation frame ids (player1, player2, ...) to sprite art.
	// Multi-line art is separated by '\n'.
	Frames      map[string]string
	PlayerColor core.Color
	DeadColor   core.Color

	// PlayerSize overrides the configured player sprite size in world
	// units. Zero keeps the configured size.
	PlayerSize core.Vector2

	Pipe         rune
	PipeColor    core.Color
	PipeCap      rune
	PipeCapColor core.Color

	// Particle is drawn in each particle's own tint.
	Particle rune

	// SkyColor is the backdrop particles fade into as they fall.
	SkyColor    core.Color
	Ground      string // Repeating pattern, scrolled with the background
	GroundColor core.Color
}

// Sprite returns the art for a frame id, split into rows.
// Unknown ids fall back to a single '?'.
func (t Theme) Sprite(frame string) []string {
	art, ok := t.Frames[frame]
	if !ok || art == "" {
		return []string{"?"}
	}
	return strings.Split(art, "\n")
}

// Info contains metadata about a registered theme.
type Info struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(themes))
	for id, t := range themes {
		result = append(result, Info{ID: id, Title: t.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a theme by its ID.
// Returns an error if the theme ID is not registered.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// Next returns the theme following id in List order, wrapping around.
// An unknown id yields the first theme.
func Next(id string) Theme {
	list := List()
	if len(list) == 0 {
		return Theme{}
	}

	next := 0
	for i, info := range list {
		if info.ID == id {
			next = (i + 1) % len(list)
			break
		}
	}

	t, _ := Get(list[next].ID)
	return t
}
