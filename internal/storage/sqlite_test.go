package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/fogscout/internal/core"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("scout", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("scout", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("scout", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("survey", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for scout
	scores, err := store.TopScores("scout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for survey
	surveyScores, err := store.TopScores("survey", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(surveyScores) != 1 {
		t.Errorf("Expected 1 survey score, got %d", len(surveyScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("scout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("scout", 100)
	store.SaveScore("scout", 300)
	store.SaveScore("scout", 200)

	high, err = store.HighScore("scout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("scout", 100)
	store.SaveScore("scout", 200)
	store.SaveScore("survey", 300)

	// Clear only scout scores
	err = store.ClearScores("scout")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Scout should be empty
	scoutScores, _ := store.TopScores("scout", 10)
	if len(scoutScores) != 0 {
		t.Errorf("Expected 0 scout scores after clear, got %d", len(scoutScores))
	}

	// Survey should still have scores
	surveyScores, _ := store.TopScores("survey", 10)
	if len(surveyScores) != 1 {
		t.Errorf("Survey scores should not be affected by clearing scout")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.fogscout/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".fogscout", "scores.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := core.RunSummary{
		Mode:       "scout",
		Level:      "warehouse",
		Difficulty: "hard",
		Seed:       42,
		Ticks:      3600,
		Score:      1250,
		Discovered: 7,
		Tracked:    9,
		Collected:  4,
		Won:        true,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	want := RunRecord{
		ID:         id,
		Mode:       run.Mode,
		Level:      run.Level,
		Difficulty: run.Difficulty,
		Seed:       run.Seed,
		Ticks:      run.Ticks,
		Score:      run.Score,
		Discovered: run.Discovered,
		Tracked:    run.Tracked,
		Collected:  run.Collected,
		Won:        true,
	}
	got.CreatedAt = time.Time{}
	if *got != want {
		t.Errorf("RunByID() = %+v, expected %+v", *got, want)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() for unknown id = %+v, expected nil", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	modes := []string{"scout", "survey", "scout", "scout"}
	var ids []string
	for i, mode := range modes {
		id, err := store.SaveRun(core.RunSummary{Mode: mode, Level: "courtyard", Score: i})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	tests := []struct {
		name  string
		mode  string
		limit int
		want  []string
	}{
		{"all", "", 10, []string{ids[3], ids[2], ids[1], ids[0]}},
		{"by mode", "scout", 10, []string{ids[3], ids[2], ids[0]}},
		{"limited", "scout", 2, []string{ids[3], ids[2]}},
		{"unknown mode", "raid", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := store.RecentRuns(tc.mode, tc.limit)
			if err != nil {
				t.Fatalf("RecentRuns() failed: %v", err)
			}
			if len(runs) != len(tc.want) {
				t.Fatalf("RecentRuns() returned %d runs, expected %d", len(runs), len(tc.want))
			}
			for i, r := range runs {
				if r.ID != tc.want[i] {
					t.Errorf("run %d = %s, expected %s (newest first)", i, r.ID, tc.want[i])
				}
			}
		})
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("scout", 100)
	store.SaveScore("scout", 300)
	store.SaveScore("survey", 50)

	stats, err := store.GetGameStats("scout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["survey"].HighScore != 50 {
		t.Errorf("unexpected all-games stats %+v", all)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() for unplayed game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed game %+v", empty)
	}
}
