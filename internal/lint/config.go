package lint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up at the workspace root.
const ConfigFileName = ".shebang-lint.yml"

// DefaultMaxIssues bounds a single lint pass.
const DefaultMaxIssues = 100

// Config controls which rules run and at what severity.
//
// Rules maps rule slugs to "off", "info", "warning" or "error". Unlisted
// rules run at their built-in severity.
type Config struct {
	Rules     map[string]string `yaml:"rules"`
	MaxIssues int               `yaml:"max-issues"`
}

// DefaultConfig returns the config used when no file is found.
func DefaultConfig() Config {
	return Config{MaxIssues: DefaultMaxIssues}
}

// LoadConfig reads a YAML lint config and validates its rule names and
// severity values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.MaxIssues <= 0 {
		cfg.MaxIssues = DefaultMaxIssues
	}

	for name, level := range cfg.Rules {
		if _, ok := CodeByName(name); !ok {
			return cfg, fmt.Errorf("%s: unknown rule %q", path, name)
		}
		if level == "off" {
			continue
		}
		if _, ok := ParseSeverity(level); !ok {
			return cfg, fmt.Errorf("%s: rule %q: invalid level %q (expected off|info|warning|error)", path, name, level)
		}
	}
	return cfg, nil
}

// FindConfig loads ConfigFileName from dir when present, otherwise returns
// the defaults. The second result is the path actually used ("" for
// defaults).
func FindConfig(dir string) (Config, string, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), "", nil
	}
	if err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// Enabled reports whether a rule should run.
func (c Config) Enabled(code Code) bool {
	level, ok := c.Rules[code.Name()]
	if !ok {
		return true
	}
	return level != "off"
}

// SeverityFor returns the configured severity for a code, falling back to
// the built-in default.
func (c Config) SeverityFor(code Code) Severity {
	level, ok := c.Rules[code.Name()]
	if !ok || level == "off" {
		return code.DefaultSeverity()
	}
	if sev, ok := ParseSeverity(level); ok {
		return sev
	}
	return code.DefaultSeverity()
}
