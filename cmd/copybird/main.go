// copybird is a flappy-bird style game for the terminal.
//
// Usage:
//
//	copybird                  - Play
//	copybird scores [level]   - Browse high scores
//	copybird themes           - List sprite themes
//	copybird config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Game config YAML (default: ~/.copybird/config.yaml)
//	--difficulty <level>  - easy, medium or hard
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - RNG seed for reproducible obstacles
//	--db <path>           - Scores database (default: ~/.copybird/scores.db)
//	--save <path>         - Save file (default: ~/.copy_bird_save)
//	--mute                - No sound at all
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/savegame"
	"github.com/vovakirdan/copybird/internal/storage"
	"github.com/vovakirdan/copybird/internal/theme"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagSavePath   string
	flagTheme      string
	flagMute       bool
	flagNoMusic    bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "copybird",
	Short: "Copybird - flap through the pipes in your terminal",
	Long: `Copybird is a flappy-bird style game played in the terminal.

Controls:
  Space/Up/W  - Flap (the first flap starts the game)
  1/2/3       - Easy, medium, hard
  S/L         - Save or load the game
  T           - Next sprite theme
  D           - Toggle hit boxes
  M           - Toggle music
  ?           - All keys
  Q/Esc       - Quit

Examples:
  copybird
  copybird --difficulty hard
  copybird --seed 42 --mute
  copybird scores easy`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	flags.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	flags.StringVar(&flagSavePath, "save", savegame.DefaultPath(), "Path to the save file")
	flags.StringVar(&flagTheme, "theme", theme.Default, "Sprite theme")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound and music")
	flags.BoolVar(&flagNoMusic, "no-music", false, "Start with the background music paused")
	flags.StringVar(&flagLogFile, "log-file", "~/.copybird/copybird.log", "Log file ('-' for stderr)")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game config and applies command-line overrides.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// difficultyFlag resolves a difficulty name, falling back to the configured default.
func difficultyFlag(name string, cfg config.GameConfig) (config.Difficulty, error) {
	if name == "" {
		return cfg.DefaultDifficulty, nil
	}
	return config.ParseDifficulty(name)
}

// newLogger opens the session log. The terminal belongs to the game, so
// logs go to a file unless '-' asks for stderr.
func newLogger(path string) (*log.Logger, io.Closer) {
	opts := log.Options{ReportTimestamp: true, Prefix: "copybird"}
	if path == "-" {
		return log.NewWithOptions(os.Stderr, opts), io.NopCloser(nil)
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return log.NewWithOptions(f, opts), f
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
