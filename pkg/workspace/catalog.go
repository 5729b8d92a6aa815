// Package workspace lists the workspace and project directories under the
// configured root. Workspaces are directories whose name carries the
// "-work" suffix; projects are their immediate subdirectories.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/wrk/pkg/pathutil"
)

// Suffix marks a directory under the root as a workspace. The logical
// workspace name is the directory name with the suffix stripped.
const Suffix = "-work"

// Project is one directory under a workspace.
type Project struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	LastAccessed time.Time `json:"lastAccessed"`
}

// Count pairs a workspace name with its number of projects.
type Count struct {
	Name     string `json:"name"`
	Projects int    `json:"projects"`
}

// Dir returns the on-disk directory for a logical workspace name.
func Dir(root, name string) (string, error) {
	expanded, err := pathutil.Expand(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(expanded, name+Suffix), nil
}

// List returns the logical names of all workspaces under root, sorted
// lexicographically. An unreadable root is an empty catalog, not an error.
func List(root string) ([]string, error) {
	expanded, err := pathutil.Expand(root)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(expanded)
	if err != nil {
		logrus.Debugf("read workspace root %s: %v", expanded, err)
		return nil, nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Suffix))
	}
	sort.Strings(names)
	return names, nil
}

// Projects returns the subdirectories of a workspace directory, most
// recently modified first. Stats run concurrently; entries that fail to
// stat are dropped. A missing workspace directory yields an empty listing
// so the caller can decide whether to offer creation.
func Projects(dir string) ([]Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.Debugf("read workspace dir %s: %v", dir, err)
		return nil, nil
	}

	// Fan out the stat calls but keep results slotted by enumeration
	// index, so the sort below is deterministic given the stat results.
	results := make([]*Project, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err != nil {
				logrus.Debugf("stat %s: %v", path, err)
				return
			}
			results[i] = &Project{Name: name, Path: path, LastAccessed: info.ModTime()}
		}(i, entry.Name())
	}
	wg.Wait()

	projects := make([]Project, 0, len(entries))
	for _, p := range results {
		if p != nil {
			projects = append(projects, *p)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].LastAccessed.After(projects[j].LastAccessed)
	})
	return projects, nil
}

// Counts returns per-workspace project counts, one goroutine per
// workspace, ordered like List.
func Counts(root string) ([]Count, error) {
	names, err := List(root)
	if err != nil {
		return nil, err
	}

	counts := make([]Count, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			counts[i] = Count{Name: name}
			dir, err := Dir(root, name)
			if err != nil {
				return
			}
			projects, err := Projects(dir)
			if err != nil {
				return
			}
			counts[i].Projects = len(projects)
		}(i, name)
	}
	wg.Wait()
	return counts, nil
}
