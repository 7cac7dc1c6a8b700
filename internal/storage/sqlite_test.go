package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	saves := []struct {
		mode     string
		stage    int
		outcome  string
		duration int
	}{
		{"easy", 3, OutcomeWrongTap, 45},
		{"easy", 10, OutcomeComplete, 180},
		{"easy", 5, OutcomeTimeout, 90},
		{"hard", 2, OutcomeTimeout, 30},
	}
	for _, r := range saves {
		if _, err := store.SaveRun(r.mode, r.stage, r.outcome, r.duration); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("easy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 easy runs, got %d", len(runs))
	}

	// Ordered by stage reached descending.
	if runs[0].StageReached != 10 || runs[1].StageReached != 5 || runs[2].StageReached != 3 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Outcome != OutcomeComplete {
		t.Errorf("Best run outcome = %q, want %q", runs[0].Outcome, OutcomeComplete)
	}

	hardRuns, err := store.TopRuns("hard", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(hardRuns) != 1 {
		t.Errorf("Expected 1 hard run, got %d", len(hardRuns))
	}
}

func TestStoreTopRunsLimitAndTieBreak(t *testing.T) {
	store := openTestStore(t)

	// Same stage reached; faster runs rank higher.
	for _, duration := range []int{120, 60, 90, 30, 150} {
		if _, err := store.SaveRun("easy", 7, OutcomeTimeout, duration); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("easy", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].DurationSecs != 30 || runs[1].DurationSecs != 60 || runs[2].DurationSecs != 90 {
		t.Errorf("Tie-break order wrong: %v", runs)
	}
}

func TestStoreBestStage(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestStage("easy")
	if err != nil {
		t.Fatalf("BestStage() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestStage() on empty store = %d, want 0", best)
	}

	store.SaveRun("easy", 4, OutcomeWrongTap, 50)
	store.SaveRun("easy", 8, OutcomeTimeout, 140)
	store.SaveRun("hard", 9, OutcomeTimeout, 160)

	best, err = store.BestStage("easy")
	if err != nil {
		t.Fatalf("BestStage() failed: %v", err)
	}
	if best != 8 {
		t.Errorf("BestStage(easy) = %d, want 8", best)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("easy", 2, OutcomeQuit, 10)
	store.SaveRun("hard", 3, OutcomeWrongTap, 20)
	store.SaveRun("easy", 10, OutcomeComplete, 200)

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].StageReached != 10 {
		t.Errorf("Most recent run stage = %d, want 10", runs[0].StageReached)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("easy", 5, OutcomeTimeout, 80)
	store.SaveRun("hard", 6, OutcomeTimeout, 100)

	if err := store.ClearRuns("easy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	easyRuns, _ := store.TopRuns("easy", 10)
	if len(easyRuns) != 0 {
		t.Errorf("Expected no easy runs after clear, got %d", len(easyRuns))
	}

	hardRuns, _ := store.TopRuns("hard", 10)
	if len(hardRuns) != 1 {
		t.Errorf("Clear removed runs from the other mode: %d left", len(hardRuns))
	}
}
