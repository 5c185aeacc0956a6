package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/core"
	"github.com/vovakirdan/copybird/internal/game"
	"github.com/vovakirdan/copybird/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(Options{
		Engine:     game.NewEngine(config.Default(), rand.New(rand.NewSource(1))),
		Difficulty: config.Medium,
		Theme:      "classic",
		Store:      store,
		SavePath:   filepath.Join(dir, "save.yaml"),
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
	})
	return m, store
}

func press(m Model, k string) Model {
	updated, _ := m.Update(keyMsg(k))
	return updated.(Model)
}

func tick(m Model, n int) Model {
	for range n {
		updated, _ := m.Update(TickMsg{})
		m = updated.(Model)
	}
	return m
}

func TestModelJumpStartsGame(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, " ")
	if m.State().Started {
		t.Fatal("input must wait for the next tick")
	}

	m = tick(m, 1)
	if m.State().Phase() != game.PhaseAlive {
		t.Errorf("phase = %v, expected alive", m.State().Phase())
	}
	if m.State().PlayerVelocity.Y >= 0 {
		t.Errorf("velocity = %v, expected upward", m.State().PlayerVelocity)
	}
}

func TestModelDifficultySwitch(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "3")
	if m.State().Difficulty != config.Medium {
		t.Fatal("difficulty changed before the tick")
	}
	m = tick(m, 1)

	if m.State().Difficulty != config.Hard {
		t.Errorf("difficulty = %v, expected hard", m.State().Difficulty)
	}
	if m.Status() != "difficulty: hard" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModelDebugToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = tick(press(m, "d"), 1)
	if !m.Debug() {
		t.Error("debug overlay should be on")
	}
	m = tick(press(m, "d"), 1)
	if m.Debug() {
		t.Error("debug overlay should be off")
	}
}

func TestModelThemeCycle(t *testing.T) {
	m, _ := newTestModel(t)

	m = tick(press(m, "t"), 1)
	if m.ThemeID() != "aussie" {
		t.Fatalf("theme = %q, expected aussie", m.ThemeID())
	}
	r := m.engine.PlayerRect(m.State())
	if r.Size != core.Vec(38, 28) {
		t.Errorf("player size = %v, expected 38x28", r.Size)
	}

	m = tick(press(m, "t"), 1)
	if m.ThemeID() != "classic" {
		t.Fatalf("theme = %q, expected classic", m.ThemeID())
	}
	r = m.engine.PlayerRect(m.State())
	if r.Size != core.Vec(34, 24) {
		t.Errorf("player size = %v, expected the configured 34x24", r.Size)
	}
}

func TestModelSaveLoad(t *testing.T) {
	m, _ := newTestModel(t)
	m.State().Score = 4

	m = tick(press(m, "s"), 1)
	if m.Status() != "game saved" {
		t.Fatalf("status = %q", m.Status())
	}

	m.State().Score = 9
	m = tick(press(m, "l"), 1)
	if m.Status() != "game loaded" {
		t.Fatalf("status = %q", m.Status())
	}
	if m.State().Score != 4 {
		t.Errorf("score = %d, expected the saved 4", m.State().Score)
	}
}

func TestModelLoadFailureKeepsGame(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.State()

	m = tick(press(m, "l"), 1)
	if m.State() != before {
		t.Error("a failed load must not replace the running game")
	}
	if m.Status() != "load failed" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModelRecordsScoreOnce(t *testing.T) {
	m, store := newTestModel(t)
	s := m.State()
	s.Started = true
	s.Score = 3
	s.PlayerPosition.Y = 470 // Bottom edge below the screen

	m = tick(m, 1)
	if m.State().Alive {
		t.Fatal("player should have died")
	}

	best, err := store.HighScore(config.Medium)
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if best != 3 || m.Best() != 3 {
		t.Errorf("best = %d (model %d), expected 3", best, m.Best())
	}
	if m.Status() != "new best!" {
		t.Errorf("status = %q", m.Status())
	}

	m = tick(m, 10)
	scores, err := store.TopScores(config.Medium, 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("expected one recorded run, got %d", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	m, store := newTestModel(t)
	s := m.State()
	s.Started = true
	s.PlayerPosition.Y = 470

	tick(m, 1)

	scores, err := store.TopScores(config.Medium, 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero-score runs should not be recorded, got %d", len(scores))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(Options{
		Engine:     game.NewEngine(config.Default(), nil),
		Difficulty: config.Easy,
		Theme:      "no-such-theme",
		Runtime:    core.DefaultConfig(),
	})
	if m.ThemeID() != "classic" {
		t.Errorf("unknown theme should fall back to classic, got %q", m.ThemeID())
	}

	s := m.State()
	s.Started = true
	s.Score = 5
	s.PlayerPosition.Y = 470
	m = tick(m, 1)
	if m.Best() != 0 {
		t.Errorf("best = %d without a store", m.Best())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if v := updated.(Model).View(); v != "" {
		t.Errorf("view after quit = %q", v)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "?")
	if !m.help.ShowAll {
		t.Error("help should expand")
	}
	m = press(m, "?")
	if m.help.ShowAll {
		t.Error("help should collapse")
	}
}

func TestModelStatusExpires(t *testing.T) {
	m, _ := newTestModel(t)

	m = tick(press(m, "1"), 1)
	if m.Status() != "difficulty: easy" {
		t.Fatalf("status = %q", m.Status())
	}

	m = tick(m, 100)
	if m.Status() == "" {
		t.Error("status cleared too early")
	}
	m = tick(m, 25)
	if m.Status() != "" {
		t.Errorf("status = %q, expected it to expire", m.Status())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	v := m.View()
	for _, want := range []string{"medium", "press space to flap", "quit"} {
		if !strings.Contains(v, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

// cuePlayer records what the model asked the audio layer to do.
type cuePlayer struct {
	flaps  int
	deaths int
	music  []bool
}

func (p *cuePlayer) Flap(float64)     { p.flaps++ }
func (p *cuePlayer) Score(float64)    {}
func (p *cuePlayer) Death()           { p.deaths++ }
func (p *cuePlayer) SetMusic(on bool) { p.music = append(p.music, on) }
func (p *cuePlayer) Close() error     { return nil }

func TestModelMusicToggle(t *testing.T) {
	cues := &cuePlayer{}
	m := NewModel(Options{
		Engine:     game.NewEngine(config.Default(), nil),
		Difficulty: config.Medium,
		Audio:      cues,
		Runtime:    core.DefaultConfig(),
	})
	if !m.Music() || len(cues.music) != 1 || !cues.music[0] {
		t.Fatalf("music should start playing, calls %v", cues.music)
	}

	m = tick(press(m, "m"), 1)
	if m.Music() || cues.music[len(cues.music)-1] {
		t.Errorf("music should be paused, calls %v", cues.music)
	}
	if m.Status() != "music off" {
		t.Errorf("status = %q", m.Status())
	}

	m = tick(press(m, "m"), 1)
	if !m.Music() || !cues.music[len(cues.music)-1] {
		t.Errorf("music should resume, calls %v", cues.music)
	}
}

func TestModelNoMusic(t *testing.T) {
	cues := &cuePlayer{}
	m := NewModel(Options{
		Engine:  game.NewEngine(config.Default(), nil),
		Audio:   cues,
		NoMusic: true,
		Runtime: core.DefaultConfig(),
	})
	if m.Music() || len(cues.music) != 1 || cues.music[0] {
		t.Errorf("music should start paused, calls %v", cues.music)
	}
}

func TestModelSoundCues(t *testing.T) {
	cues := &cuePlayer{}
	m := NewModel(Options{
		Engine:     game.NewEngine(config.Default(), nil),
		Difficulty: config.Medium,
		Audio:      cues,
		Runtime:    core.DefaultConfig(),
	})

	m = tick(press(m, " "), 1)
	if cues.flaps != 1 {
		t.Errorf("flaps = %d, expected 1", cues.flaps)
	}

	m.State().PlayerPosition.Y = 470
	tick(m, 1)
	if cues.deaths != 1 {
		t.Errorf("deaths = %d, expected 1", cues.deaths)
	}
}
