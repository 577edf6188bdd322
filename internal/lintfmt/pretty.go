package lintfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"shebang/internal/lint"
	"shebang/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	codeColor    = color.New(color.Faint)
)

// Pretty renders issues in a human-readable form: one header line per issue
// (path:line:col, severity, code, message), the offending source line and a
// caret underline, then any notes. The bag is expected to be sorted.
func Pretty(w io.Writer, bag *lint.Bag, fs *source.FileSet, opts Options) {
	for _, issue := range bag.Items() {
		writePretty(w, issue, fs, opts)
	}
}

func writePretty(w io.Writer, issue lint.Issue, fs *source.FileSet, opts Options) {
	path, pos := position(fs, issue.Primary)
	sev := severityWord(issue.Severity)
	if opts.Color {
		sev = severityStyle(issue.Severity).Sprint(sev)
	}
	code := fmt.Sprintf("[%s]", issue.Code.ID())
	if opts.Color {
		code = codeColor.Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		opts.displayPath(path), pos.Line, pos.Col, sev, code, issue.Message)

	writeContext(w, issue.Primary, fs, opts)

	if opts.WithNotes {
		for _, note := range issue.Notes {
			notePath, notePos := position(fs, note.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				label, opts.displayPath(notePath), notePos.Line, notePos.Col, note.Msg)
		}
	}
}

// writeContext prints the source line the span starts on with a caret
// underline sized to the span (clamped to the line).
func writeContext(w io.Writer, sp source.Span, fs *source.FileSet, opts Options) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	pos := file.PositionAt(sp.Start)
	text := file.Line(int(pos.Line))
	fmt.Fprintf(w, "  %s\n", text)

	startCol := int(pos.Col) - 1
	if startCol > len(text) {
		startCol = len(text)
	}
	prefix := runewidth.StringWidth(text[:startCol])

	spanLen := int(sp.Len())
	if startCol+spanLen > len(text) {
		spanLen = len(text) - startCol
	}
	markerWidth := 1
	if spanLen > 0 {
		markerWidth = runewidth.StringWidth(text[startCol : startCol+spanLen])
	}
	if markerWidth < 1 {
		markerWidth = 1
	}

	marker := "^" + strings.Repeat("~", markerWidth-1)
	if opts.Color {
		marker = severityColorForMarker().Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", prefix), marker)
}

func severityStyle(sev lint.Severity) *color.Color {
	switch sev {
	case lint.SevError:
		return errorColor
	case lint.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func severityColorForMarker() *color.Color {
	return color.New(color.FgGreen, color.Bold)
}

// Summary renders "N errors, M warnings, K infos" skipping zero buckets.
func Summary(bag *lint.Bag) string {
	errs, warns, infos := bag.Counts()
	parts := make([]string, 0, 3)
	if errs > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", errs, plural("error", errs)))
	}
	if warns > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", warns, plural("warning", warns)))
	}
	if infos > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", infos, plural("info", infos)))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
