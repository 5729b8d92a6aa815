package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestListFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"zeta-work", "alpha-work", "not-a-workspace", "beta-work"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	// Files with the suffix are not workspaces.
	if err := os.WriteFile(filepath.Join(root, "file-work"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	names, err := List(root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"alpha", "beta", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d workspaces, got %d: %v", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestListMissingRoot(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty listing, got %v", names)
	}
}

func TestProjectsSortedByModTime(t *testing.T) {
	dir := t.TempDir()

	now := time.Now()
	mtimes := map[string]time.Time{
		"oldest": now.Add(-72 * time.Hour),
		"newest": now.Add(-1 * time.Hour),
		"middle": now.Add(-24 * time.Hour),
	}
	for name, mtime := range mtimes {
		path := filepath.Join(dir, name)
		if err := os.Mkdir(path, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}
	// Plain files are not projects.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	projects, err := Projects(dir)
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}

	want := []string{"newest", "middle", "oldest"}
	if len(projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(projects))
	}
	for i, name := range want {
		if projects[i].Name != name {
			t.Errorf("projects[%d] = %q, want %q", i, projects[i].Name, name)
		}
	}
	for i := 1; i < len(projects); i++ {
		if projects[i].LastAccessed.After(projects[i-1].LastAccessed) {
			t.Errorf("projects not sorted descending at index %d", i)
		}
	}
}

func TestProjectsMissingWorkspace(t *testing.T) {
	projects, err := Projects(filepath.Join(t.TempDir(), "ghost-work"))
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected empty listing, got %v", projects)
	}
}

func TestDir(t *testing.T) {
	dir, err := Dir("/srv/code", "client")
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if dir != "/srv/code/client-work" {
		t.Errorf("Dir = %q, want /srv/code/client-work", dir)
	}
}

func TestCounts(t *testing.T) {
	root := t.TempDir()
	layout := map[string][]string{
		"client-work": {"myapp"},
		"oss-work":    {"lib", "tool", "docs"},
		"empty-work":  {},
	}
	for ws, projects := range layout {
		if err := os.Mkdir(filepath.Join(root, ws), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		for _, p := range projects {
			if err := os.Mkdir(filepath.Join(root, ws, p), 0755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		}
	}

	counts, err := Counts(root)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}

	want := []Count{
		{Name: "client", Projects: 1},
		{Name: "empty", Projects: 0},
		{Name: "oss", Projects: 3},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d counts, got %d", len(want), len(counts))
	}
	for i, c := range want {
		if counts[i] != c {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], c)
		}
	}
}
