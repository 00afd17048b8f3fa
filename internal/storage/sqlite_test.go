package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created under nested directories")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []RunRecord{
		{Mode: "endless", Outcome: "top-out", Score: 100, Lines: 2, Level: 1, Duration: 90 * time.Second},
		{Mode: "endless", Outcome: "quit", Score: 50, Lines: 1, Level: 1, Duration: 30 * time.Second},
		{Mode: "endless", Outcome: "top-out", Score: 200, Lines: 5, Level: 1, Duration: 150 * time.Second},
		{Mode: "sprint-40", Outcome: "success", Score: 500, Lines: 40, Level: 5, Duration: 240 * time.Second},
	} {
		if _, err := store.SaveRun(rec); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("endless", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 endless runs, got %d", len(runs))
	}

	// Should be sorted descending by score
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in score order: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[0].Outcome != "top-out" || runs[0].Lines != 5 {
		t.Errorf("Top run = %+v, outcome/lines not preserved", runs[0])
	}
	if runs[0].Duration != 150*time.Second {
		t.Errorf("Duration = %v, expected 150s", runs[0].Duration)
	}

	sprintRuns, err := store.TopRuns("sprint-40", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(sprintRuns) != 1 {
		t.Errorf("Expected 1 sprint run, got %d", len(sprintRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Mode: "endless", Outcome: "top-out", Score: (i + 1) * 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("endless", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	score, err := store.HighScore("endless")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty mode, got %d", score)
	}

	store.SaveRun(RunRecord{Mode: "endless", Outcome: "top-out", Score: 300})
	store.SaveRun(RunRecord{Mode: "endless", Outcome: "top-out", Score: 700})
	store.SaveRun(RunRecord{Mode: "sprint-40", Outcome: "success", Score: 900})

	score, err = store.HighScore("endless")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 700 {
		t.Errorf("HighScore = %d, expected 700", score)
	}
}

func TestStoreModes(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "sprint-40", Outcome: "success", Score: 1})
	store.SaveRun(RunRecord{Mode: "endless", Outcome: "top-out", Score: 2})
	store.SaveRun(RunRecord{Mode: "endless", Outcome: "quit", Score: 3})

	modes, err := store.Modes()
	if err != nil {
		t.Fatalf("Modes() failed: %v", err)
	}
	if len(modes) != 2 || modes[0] != "endless" || modes[1] != "sprint-40" {
		t.Errorf("Modes() = %v, expected [endless sprint-40]", modes)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "endless", Outcome: "top-out", Score: 300, Lines: 12})
	store.SaveRun(RunRecord{Mode: "endless", Outcome: "quit", Score: 100, Lines: 30})

	stats, err := store.Stats("endless")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 300 || stats.BestLines != 30 {
		t.Errorf("Stats() = %+v, expected 2 runs, best score 300, best lines 30", stats)
	}

	empty, err := store.Stats("ultra-120s")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 {
		t.Errorf("Stats() for empty mode = %+v, expected zeros", empty)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "endless", Outcome: "top-out", Score: 10})
	store.SaveRun(RunRecord{Mode: "sprint-40", Outcome: "success", Score: 20})

	if err := store.ClearRuns("endless"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns("endless", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no endless runs after clear, got %d", len(runs))
	}

	// Other modes untouched
	sprintRuns, err := store.TopRuns("sprint-40", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(sprintRuns) != 1 {
		t.Errorf("ClearRuns should not touch other modes, got %d sprint runs", len(sprintRuns))
	}
}
