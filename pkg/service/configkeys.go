package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattsolo1/wrk/pkg/config"
)

// configField maps a config key to its accessor pair. A nil set marks the
// key read-only, so the writable key set stays a closed, compile-checked
// table rather than dynamic field access.
type configField struct {
	get func(*config.Config) string
	set func(*config.Config, string)
}

var configFields = map[string]configField{
	"workspace": {
		get: func(c *config.Config) string { return c.Workspace },
		set: func(c *config.Config, v string) { c.Workspace = v },
	},
	"ide": {
		get: func(c *config.Config) string { return c.IDE },
		set: func(c *config.Config, v string) { c.IDE = v },
	},
	"lastProjectPath": {
		get: func(c *config.Config) string { return c.LastProjectPath },
	},
}

func configKeys(writableOnly bool) []string {
	var keys []string
	for key, field := range configFields {
		if writableOnly && field.set == nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ConfigGet returns the value of a config key.
func ConfigGet(cfg *config.Config, key string) (string, error) {
	field, ok := configFields[key]
	if !ok {
		return "", &NotFoundError{Kind: "config key", Name: key, Available: configKeys(false)}
	}
	return field.get(cfg), nil
}

// ConfigSet parses a raw "key=value" pair (the first '=' splits, so values
// may themselves contain '='), validates it, and applies it to cfg. The
// caller persists.
func ConfigSet(cfg *config.Config, pair string) (key string, err error) {
	key, value, found := strings.Cut(pair, "=")
	if !found {
		return "", fmt.Errorf("expected key=value, got %q", pair)
	}

	field, ok := configFields[key]
	if !ok || field.set == nil {
		return "", &NotFoundError{Kind: "config key", Name: key, Available: configKeys(true)}
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("value for %q must not be empty", key)
	}
	field.set(cfg, value)
	return key, nil
}
