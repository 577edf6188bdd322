// Package lintfmt renders lint issues for terminals and tooling.
package lintfmt

import (
	"path/filepath"

	"shebang/internal/lint"
	"shebang/internal/source"
)

// Options control how issues are rendered.
type Options struct {
	// Color enables ANSI colors in pretty output.
	Color bool
	// WithNotes includes secondary notes in pretty output.
	WithNotes bool
	// FullPath emits absolute paths instead of paths relative to BaseDir.
	FullPath bool
	// BaseDir is the directory paths are made relative to.
	BaseDir string
}

func (o Options) displayPath(path string) string {
	if o.FullPath || o.BaseDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.BaseDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return filepath.ToSlash(rel)
}

func position(fs *source.FileSet, sp source.Span) (string, source.LineCol) {
	return fs.SpanStart(sp)
}

func severityWord(sev lint.Severity) string {
	switch sev {
	case lint.SevError:
		return "error"
	case lint.SevWarning:
		return "warning"
	default:
		return "info"
	}
}
