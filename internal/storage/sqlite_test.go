package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/copybird/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore(config.Medium, score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore(config.Hard, 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(config.Medium, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 medium scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Difficulty != config.Medium {
		t.Errorf("Expected difficulty medium, got %q", scores[0].Difficulty)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}

	hard, err := store.TopScores(config.Hard, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreRejectsBadInput(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("impossible", 3); err == nil {
		t.Error("SaveScore() should reject an unknown difficulty")
	}
	if _, err := store.SaveScore(config.Easy, -1); err == nil {
		t.Error("SaveScore() should reject a negative score")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(config.Easy, i+1)
	}

	scores, err := store.TopScores(config.Easy, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores(config.Easy, 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected all 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(config.Medium)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an empty table, got %d", high)
	}

	store.SaveScore(config.Medium, 7)
	store.SaveScore(config.Medium, 12)
	store.SaveScore(config.Hard, 30)

	high, err = store.HighScore(config.Medium)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected medium high score of 12, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(config.Medium, 1)
	store.SaveScore(config.Medium, 2)
	store.SaveScore(config.Easy, 3)

	if err := store.ClearScores(config.Medium); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	medium, _ := store.TopScores(config.Medium, 10)
	if len(medium) != 0 {
		t.Errorf("Expected 0 medium scores after clear, got %d", len(medium))
	}
	easy, _ := store.TopScores(config.Easy, 10)
	if len(easy) != 1 {
		t.Error("Easy scores should not be affected by clearing medium")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.DifficultyStats(config.Hard)
	if err != nil {
		t.Fatalf("DifficultyStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore(config.Hard, 4)
	store.SaveScore(config.Hard, 8)
	store.SaveScore(config.Easy, 1)

	stats, err := store.DifficultyStats(config.Hard)
	if err != nil {
		t.Fatalf("DifficultyStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 8 || stats.TotalScore != 12 || stats.AvgScore != 6 {
		t.Errorf("Unexpected hard stats: %+v", stats)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 difficulties, got %d", len(all))
	}
	if all[config.Easy].Runs != 1 {
		t.Errorf("Expected 1 easy run, got %d", all[config.Easy].Runs)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.copybird/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".copybird", "scores.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}
