package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/projects", filepath.Join(home, "projects")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := Expand(tt.in)
		if err != nil {
			t.Fatalf("Expand(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContract(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	if got := Contract(filepath.Join(home, "work", "app")); got != "~/work/app" {
		t.Errorf("Contract under home = %q, want %q", got, "~/work/app")
	}
	if got := Contract("/opt/tools"); got != "/opt/tools" {
		t.Errorf("Contract outside home = %q, want unchanged", got)
	}
	if got := Contract(home); got != "~" {
		t.Errorf("Contract(home) = %q, want ~", got)
	}
}

func TestExpandContractRoundTrip(t *testing.T) {
	expanded, err := Expand("~/some/dir")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got := Contract(expanded); got != "~/some/dir" {
		t.Errorf("round trip = %q, want %q", got, "~/some/dir")
	}
}
