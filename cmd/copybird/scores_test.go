package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/copybird/internal/config"
	"github.com/vovakirdan/copybird/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{4, 10} {
		if _, err := store.SaveScore(config.Hard, s); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := printScores(&out, store, config.Hard); err != nil {
		t.Fatalf("printScores() error = %v", err)
	}
	for _, want := range []string{"High Scores - hard", "#1", "Best: 10", "2 runs", "avg 7.0"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output is missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openStore(t)

	var out bytes.Buffer
	if err := printScores(&out, store, config.Easy); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestClearScores(t *testing.T) {
	store := openStore(t)
	for _, d := range []config.Difficulty{config.Easy, config.Hard} {
		if _, err := store.SaveScore(d, 5); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := clearScores(&out, store, config.Hard); err != nil {
		t.Fatalf("clearScores() error = %v", err)
	}
	if out.String() != "Cleared hard scores.\n" {
		t.Errorf("output = %q", out.String())
	}

	if best, _ := store.HighScore(config.Hard); best != 0 {
		t.Errorf("hard best = %d after clearing", best)
	}
	if best, _ := store.HighScore(config.Easy); best != 5 {
		t.Errorf("easy best = %d, other difficulties must be kept", best)
	}
}
