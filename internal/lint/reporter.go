package lint

import "shebang/internal/source"

// Reporter is the minimal contract rules use to emit issues.
// Implementations: BagReporter (collects into a Bag), severity overrides from
// config wrap another Reporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix)
}

// ReportBuilder accumulates issue details before emitting to a Reporter.
type ReportBuilder struct {
	reporter Reporter
	issue    Issue
	emitted  bool
}

// NewReportBuilder constructs a builder bound to a Reporter.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		issue: Issue{
			Severity: sev,
			Code:     code,
			Message:  msg,
			Primary:  primary,
		},
	}
}

// Report starts a builder with the code's default severity.
func Report(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code.DefaultSeverity(), code, primary, msg)
}

// WithNote appends a note to the issue.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.issue.Notes = append(b.issue.Notes, Note{Span: sp, Msg: msg})
	return b
}

// WithFix appends a ready-to-use fix.
func (b *ReportBuilder) WithFix(title string, edits ...FixEdit) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.issue = b.issue.WithFix(title, edits...)
	return b
}

// Emit sends the issue to the underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.issue.Code, b.issue.Severity, b.issue.Primary, b.issue.Message, b.issue.Notes, b.issue.Fixes)
	}
	b.emitted = true
}

// Issue returns the accumulated issue without emitting.
func (b *ReportBuilder) Issue() Issue {
	if b == nil {
		return Issue{}
	}
	return b.issue
}

// BagReporter writes issues into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Issue{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes, Fixes: fixes,
	})
}
