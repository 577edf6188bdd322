package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shebang.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "shebang.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "dark" || cfg.Editor.TabWidth != 4 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.TerminalTimeout() != 10*time.Second {
		t.Errorf("TerminalTimeout = %v", cfg.TerminalTimeout())
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeManifest(t, "[ui]\ntheme = \"purple\"\n\n[preview]\nwidth = 100\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "purple" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	if cfg.Preview.Width != 100 {
		t.Errorf("Width = %d", cfg.Preview.Width)
	}
	// untouched sections keep their defaults
	if cfg.Terminal.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d", cfg.Terminal.TimeoutSeconds)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown theme", "[ui]\ntheme = \"neon\"\n"},
		{"zero tab width", "[editor]\ntab-width = 0\n"},
		{"zero timeout", "[terminal]\ntimeout-seconds = 0\n"},
		{"negative width", "[preview]\nwidth = -1\n"},
		{"unknown key", "[ui]\ncolour = \"dark\"\n"},
		{"bad toml", "[ui\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeManifest(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
