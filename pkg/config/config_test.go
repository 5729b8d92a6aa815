package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathPriority(t *testing.T) {
	t.Setenv("WRK_CONFIG_HOME", "/tmp/override")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/override", "wrk", "config.json"), p)

	t.Setenv("WRK_CONFIG_HOME", "")
	p, err = Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "wrk", "config.json"), p)

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	p, err = Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "wrk", "config.json"), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("WRK_WORKSPACE", "")
	t.Setenv("WRK_IDE", "")
	path := filepath.Join(t.TempDir(), "wrk", "config.json")

	in := &Config{Workspace: "~/workspace", IDE: "code", LastProjectPath: "/home/me/workspace/client-work/app"}
	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveUsesStableIndentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{Workspace: "~/workspace", IDE: "cursor"}
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "  \"workspace\""), "expected 2-space indent, got: %s", data)
	assert.False(t, strings.Contains(string(data), "lastProjectPath"), "empty lastProjectPath must be omitted")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDefaultsIDE(t *testing.T) {
	t.Setenv("WRK_IDE", "")
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workspace": "~/workspace"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultIDE, cfg.IDE)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, (&Config{Workspace: "~/workspace", IDE: "cursor"}).Save(path))

	t.Setenv("WRK_IDE", "zed")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zed", cfg.IDE)

	// Overrides are per-invocation only; the file keeps its own value.
	t.Setenv("WRK_IDE", "")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cursor", cfg.IDE)
}
