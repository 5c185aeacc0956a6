package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/copybird/internal/config"
)

func TestDifficultyFlag(t *testing.T) {
	cfg := config.Default()

	d, err := difficultyFlag("", cfg)
	if err != nil || d != config.Medium {
		t.Errorf("empty flag = %v, %v; expected the configured default", d, err)
	}
	d, err = difficultyFlag("Hard", cfg)
	if err != nil || d != config.Hard {
		t.Errorf("Hard = %v, %v", d, err)
	}
	if _, err := difficultyFlag("nightmare", cfg); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/.copybird/x.log"); got != filepath.Join(home, ".copybird/x.log") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "copybird.log")

	logger, closer := newLogger(path)
	logger.Info("hello", "score", 3)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "score=3") {
		t.Errorf("unexpected log output %q", data)
	}
}

func TestLoadConfigFPSOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copybird.yaml")
	if err := os.WriteFile(path, []byte("restart_delay: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagConfig, flagFPS = path, 30
	t.Cleanup(func() { flagConfig, flagFPS = "", 0 })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.TickRate != 30 || cfg.RestartDelay != 1.5 {
		t.Errorf("tick rate %d, restart delay %v", cfg.TickRate, cfg.RestartDelay)
	}
}

func TestWithLogFlushesFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copybird.log")
	boom := errors.New("terminal went away")

	err := withLog(path, func(logger *log.Logger) error {
		logger.Info("starting game")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("withLog() error = %v, expected the game's error", err)
	}

	// The file is closed by now, so the crash line must already be on disk.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "game crashed") || !strings.Contains(string(data), "terminal went away") {
		t.Errorf("log is missing the failure:\n%s", data)
	}
	if strings.Contains(string(data), "bye") {
		t.Error("a failed run must not log a clean exit")
	}
}

func TestWithLogCleanExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copybird.log")

	if err := withLog(path, func(*log.Logger) error { return nil }); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "bye") {
		t.Errorf("log is missing the exit line:\n%s", data)
	}
}
