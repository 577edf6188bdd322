// Package workspace locates the project root, scans the file tree for the
// explorer, and persists editor sessions between runs.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName marks the workspace root.
const ManifestName = "shebang.toml"

// FindManifest walks up from startDir to locate shebang.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing shebang.toml, or startDir itself
// when no manifest exists anywhere above it.
func FindRoot(startDir string) (string, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return "", err
	}
	if ok {
		return filepath.Dir(manifestPath), nil
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	return abs, nil
}
