// Package config loads the optional shebang.toml workspace manifest that
// tunes the editor, terminal, and preview.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Theme names the UI accepts for [ui].theme.
var Themes = []string{"dark", "light", "blue", "green", "purple", "orange"}

// Config is the decoded shebang.toml.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Editor   EditorConfig   `toml:"editor"`
	Terminal TerminalConfig `toml:"terminal"`
	Preview  PreviewConfig  `toml:"preview"`
}

type UIConfig struct {
	Theme string `toml:"theme"`
}

type EditorConfig struct {
	TabWidth int `toml:"tab-width"`
}

type TerminalConfig struct {
	TimeoutSeconds int `toml:"timeout-seconds"`
}

type PreviewConfig struct {
	Style string `toml:"style"`
	Width int    `toml:"width"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		UI:       UIConfig{Theme: "dark"},
		Editor:   EditorConfig{TabWidth: 4},
		Terminal: TerminalConfig{TimeoutSeconds: 10},
		Preview:  PreviewConfig{Style: "auto"},
	}
}

// Load decodes path on top of the defaults. A missing file is not an error;
// the defaults come back unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	if !validTheme(c.UI.Theme) {
		return fmt.Errorf("%s: [ui].theme must be one of %v, got %q", path, Themes, c.UI.Theme)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("%s: [editor].tab-width must be between 1 and 16", path)
	}
	if c.Terminal.TimeoutSeconds < 1 {
		return fmt.Errorf("%s: [terminal].timeout-seconds must be positive", path)
	}
	if c.Preview.Width < 0 {
		return fmt.Errorf("%s: [preview].width must not be negative", path)
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// TerminalTimeout converts the configured seconds to a duration.
func (c Config) TerminalTimeout() time.Duration {
	return time.Duration(c.Terminal.TimeoutSeconds) * time.Second
}
