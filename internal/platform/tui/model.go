package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/copybird/internal/audio"
	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/core"
	"github.com/vovakirdan/copybird/internal/game"
	"github.com/vovakirdan/copybird/internal/savegame"
	"github.com/vovakirdan/copybird/internal/storage"
	"github.com/vovakirdan/copybird/internal/theme"
	"github.com/vovakirdan/copybird/internal/timer"
)

// statusDuration is how long a status message stays on screen, in seconds.
const statusDuration = 2.0

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a play session.
type Options struct {
	Engine     *game.Engine
	Difficulty config.Difficulty
	Theme      string
	Store      *storage.Store // Optional, nil disables high scores
	Audio      audio.Player   // Optional, nil is silent
	Logger     *log.Logger    // Optional, nil discards
	NoMusic    bool           // Start with the background tune paused
	SavePath   string
	Runtime    core.RuntimeConfig
}

// Model is the Bubble Tea model for a copybird session.
type Model struct {
	engine      *game.Engine
	state       *game.State
	theme       theme.Theme
	baseSprites config.SpriteConfig

	keys   KeyMap
	help   help.Model
	screen *core.Screen
	input  core.InputFrame

	store    *storage.Store
	audio    audio.Player
	logger   *log.Logger
	jitter   *rand.Rand // Flap pitch only, never the simulation
	savePath string
	runtime  core.RuntimeConfig

	best        int
	scoreSaved  bool // Whether the current run's score has been recorded
	debug       bool
	music       bool
	status      string
	statusTimer timer.OneShot
	quitting    bool
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Engine.Config().TickRate
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		engine:      opts.Engine,
		state:       opts.Engine.NewState(opts.Difficulty),
		baseSprites: opts.Engine.Config().Sprites,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		screen:      core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		input:       core.NewInputFrame(),
		store:       opts.Store,
		audio:       opts.Audio,
		logger:      opts.Logger,
		jitter:      rand.New(rand.NewSource(seed)),
		savePath:    opts.SavePath,
		runtime:     opts.Runtime,
		music:       !opts.NoMusic,
	}
	m.audio.SetMusic(m.music)

	th, err := theme.Get(opts.Theme)
	if err != nil {
		m.logger.Warn("falling back to default theme", "error", err)
		th, _ = theme.Get(theme.Default)
	}
	m.setTheme(th)
	m.best = m.loadBest()

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. Quit and help act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Set(action)
	return m, nil
}

// handleTick applies queued input in arrival order, then advances the
// simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, action := range m.input.Actions {
		m.apply(action)
	}
	m.input.Clear()

	dt := m.runtime.TickSeconds()
	m.handleEvents(m.engine.Advance(m.state, dt))

	if m.statusTimer.Update(dt, nil) {
		m.status = ""
	}

	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) apply(action core.Action) {
	switch action {
	case core.ActionJump:
		m.handleEvents(m.engine.Jump(m.state))
	case core.ActionEasy:
		m.setDifficulty(config.Easy)
	case core.ActionMedium:
		m.setDifficulty(config.Medium)
	case core.ActionHard:
		m.setDifficulty(config.Hard)
	case core.ActionSave:
		m.save()
	case core.ActionLoad:
		m.load()
	case core.ActionTheme:
		m.setTheme(theme.Next(m.theme.ID))
		m.logger.Info("theme changed", "theme", m.theme.ID)
		m.setStatus("theme: " + m.theme.Title)
	case core.ActionDebug:
		m.debug = !m.debug
	case core.ActionMusic:
		m.music = !m.music
		m.audio.SetMusic(m.music)
		if m.music {
			m.setStatus("music on")
		} else {
			m.setStatus("music off")
		}
	}
}

// handleEvents turns simulation events into sound, logging and score keeping.
func (m *Model) handleEvents(events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventJumped:
			m.audio.Flap(0.9 + m.jitter.Float64()*0.2)
		case game.EventScored:
			m.audio.Score(audio.ScorePitch(ev.Score))
		case game.EventDied:
			m.audio.Death()
			m.logger.Info("player died", "score", ev.Score, "difficulty", m.state.Difficulty)
			m.recordScore(ev.Score)
		case game.EventRestarted:
			m.scoreSaved = false
			m.logger.Debug("game restarted", "difficulty", m.state.Difficulty)
		}
	}
}

// recordScore stores a finished run once. Zero scores are not worth a row.
func (m *Model) recordScore(score int) {
	if m.scoreSaved || score <= 0 {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.state.Difficulty, score); err != nil {
		m.logger.Warn("could not record score", "error", err)
		return
	}
	if score > m.best {
		m.best = score
		m.setStatus("new best!")
	}
}

func (m *Model) setDifficulty(d config.Difficulty) {
	if d == m.state.Difficulty {
		return
	}
	m.engine.SetDifficulty(m.state, d)
	m.best = m.loadBest()
	m.logger.Info("difficulty changed", "difficulty", d)
	m.setStatus("difficulty: " + string(d))
}

// setTheme switches presentation and hands the theme's player size to the engine.
func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	sprites := m.baseSprites
	if th.PlayerSize != (core.Vector2{}) {
		sprites.Player = th.PlayerSize
	}
	m.engine.SetSprites(sprites)
}

func (m *Model) save() {
	if err := savegame.Save(m.savePath, m.state); err != nil {
		m.logger.Error("save failed", "path", m.savePath, "error", err)
		m.setStatus("save failed")
		return
	}
	m.logger.Info("game saved", "path", m.savePath, "score", m.state.Score)
	m.setStatus("game saved")
}

// load replaces the running game with the saved one. On failure the running
// game is left untouched.
func (m *Model) load() {
	s, err := savegame.Load(m.savePath)
	if err != nil {
		m.logger.Error("load failed", "path", m.savePath, "error", err)
		m.setStatus("load failed")
		return
	}

	m.state = s
	// A run saved after dying has already been recorded.
	m.scoreSaved = !s.Alive
	m.best = m.loadBest()
	m.logger.Info("game loaded", "path", m.savePath, "score", s.Score, "difficulty", s.Difficulty)
	m.setStatus("game loaded")
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusTimer = timer.NewOneShot(statusDuration)
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.state.Difficulty)
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH-lipgloss.Height(helpView))
	m.screen.Clear()

	cfg := m.engine.Config()
	sc := scene{
		dst:    m.screen,
		vp:     NewViewport(cfg.Screen.Width, cfg.Screen.Height, m.screen.Width(), m.screen.Height()),
		engine: m.engine,
		state:  m.state,
		theme:  m.theme,
	}
	sc.draw(hud{Best: m.best, Status: m.status, Debug: m.debug})

	return RenderScreen(m.screen) + "\n" + helpView
}

// State returns the running game.
func (m Model) State() *game.State { return m.state }

// Best returns the high score for the current difficulty.
func (m Model) Best() int { return m.best }

// Status returns the current status line, empty when none is shown.
func (m Model) Status() string { return m.status }

// Music reports whether the background tune is playing.
func (m Model) Music() bool { return m.music }

// Debug reports whether the hit-box overlay is on.
func (m Model) Debug() bool { return m.debug }

// ThemeID returns the active theme.
func (m Model) ThemeID() string { return m.theme.ID }

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
