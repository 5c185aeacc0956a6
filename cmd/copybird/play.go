package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/copybird/internal/audio"
	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/core"
	"github.com/vovakirdan/copybird/internal/game"
	"github.com/vovakirdan/copybird/internal/platform/tui"
	"github.com/vovakirdan/copybird/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty, err := difficultyFlag(flagDifficulty, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = withLog(flagLogFile, func(logger *log.Logger) error {
		return play(cfg, difficulty, logger)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// withLog runs fn with a session logger and closes the log file before
// returning, so a failure is on disk before the process exits.
func withLog(path string, fn func(*log.Logger) error) error {
	logger, logFile := newLogger(path)
	defer logFile.Close()

	if err := fn(logger); err != nil {
		logger.Error("game crashed", "error", err)
		return err
	}
	logger.Info("bye")
	return nil
}

func play(cfg config.GameConfig, difficulty config.Difficulty, logger *log.Logger) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting game", "difficulty", difficulty, "seed", seed, "tick_rate", cfg.TickRate)
	engine := game.NewEngine(cfg, rand.New(rand.NewSource(seed)))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var player audio.Player = audio.Nop{}
	if !flagMute {
		if sp, err := audio.NewSpeaker(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			player = sp
		}
	}
	defer player.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Engine:     engine,
		Difficulty: difficulty,
		Theme:      flagTheme,
		Store:      store,
		Audio:      player,
		Logger:     logger,
		NoMusic:    flagNoMusic,
		SavePath:   flagSavePath,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     seed,
		},
	})
}
