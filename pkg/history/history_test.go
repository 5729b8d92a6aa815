package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	rec, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Failed to open recorder: %v", err)
	}
	defer rec.Close()

	dbFile := filepath.Join(dataDir, "history.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("Expected database file to be created")
	}
}

func TestRecordAndRecent(t *testing.T) {
	rec, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open recorder: %v", err)
	}
	defer rec.Close()

	opens := []struct {
		workspace, project, path string
	}{
		{"client", "myapp", "/w/client-work/myapp"},
		{"oss", "lib", "/w/oss-work/lib"},
		{"client", "website", "/w/client-work/website"},
	}
	for _, o := range opens {
		if err := rec.Record(o.workspace, o.project, o.path); err != nil {
			t.Fatalf("Failed to record open: %v", err)
		}
	}

	entries, err := rec.Recent(0)
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != len(opens) {
		t.Fatalf("Expected %d entries, got %d", len(opens), len(entries))
	}

	// Newest first.
	if entries[0].Project != "website" {
		t.Errorf("Expected newest entry first, got %q", entries[0].Project)
	}
	if entries[len(entries)-1].Project != "myapp" {
		t.Errorf("Expected oldest entry last, got %q", entries[len(entries)-1].Project)
	}
}

func TestRecentLimit(t *testing.T) {
	rec, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open recorder: %v", err)
	}
	defer rec.Close()

	for i := 0; i < 5; i++ {
		if err := rec.Record("ws", "proj", "/w/ws-work/proj"); err != nil {
			t.Fatalf("Failed to record open: %v", err)
		}
	}

	entries, err := rec.Recent(2)
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}
}

func TestRecentEmpty(t *testing.T) {
	rec, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open recorder: %v", err)
	}
	defer rec.Close()

	entries, err := rec.Recent(10)
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
