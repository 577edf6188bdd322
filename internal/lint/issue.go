package lint

import (
	"shebang/internal/source"
)

// Note attaches secondary context to an issue.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement. An empty span means insertion.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a named set of edits that resolves an issue.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Issue is one linter finding against a document.
type Issue struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// WithFix returns a copy of the issue with an extra fix attached.
func (i Issue) WithFix(title string, edits ...FixEdit) Issue {
	i.Fixes = append(i.Fixes, Fix{Title: title, Edits: edits})
	return i
}
