// Package config owns the wrk configuration file: where it lives, how it
// is loaded, and how it is written back.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appDirName = "wrk"
	fileName   = "config.json"

	// DefaultIDE is used when no editor has been configured.
	DefaultIDE = "cursor"

	envConfigHome = "WRK_CONFIG_HOME"
)

// Config is the persisted state of the tool. Workspace and IDE are
// non-empty trimmed strings once set; LastProjectPath is absent until the
// first project is opened.
type Config struct {
	Workspace       string `json:"workspace" mapstructure:"workspace"`
	IDE             string `json:"ide" mapstructure:"ide"`
	LastProjectPath string `json:"lastProjectPath,omitempty" mapstructure:"lastProjectPath"`
}

// Path resolves the config file location. WRK_CONFIG_HOME wins over
// XDG_CONFIG_HOME, which wins over ~/.config.
func Path() (string, error) {
	if dir := os.Getenv(envConfigHome); dir != "" {
		return filepath.Join(dir, appDirName, fileName), nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDirName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDirName, fileName), nil
}

// DataDir resolves the directory for mutable data (the open history
// database). Honors XDG_DATA_HOME.
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// Load reads the config file at path. WRK_WORKSPACE and WRK_IDE override
// file values for a single invocation and are never written back. Any
// read failure (missing file, malformed JSON, permissions) is returned to
// the caller, which treats it as "no config yet" and runs first-run setup.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("WRK")
	v.AutomaticEnv()
	v.SetDefault("ide", DefaultIDE)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Workspace = strings.TrimSpace(cfg.Workspace)
	cfg.IDE = strings.TrimSpace(cfg.IDE)
	if cfg.IDE == "" {
		cfg.IDE = DefaultIDE
	}
	if cfg.Workspace == "" {
		return nil, fmt.Errorf("config at %s has no workspace root", path)
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating the parent directory
// on demand. The file is rewritten in full; concurrent invocations race
// with last-writer-wins.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
