package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading "~" in path to the current user's home
// directory. Paths without the marker are returned unchanged.
func Expand(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[1:]), nil
}

// Contract is the display-form inverse of Expand: a path under the home
// directory is rewritten with a leading "~".
func Contract(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
