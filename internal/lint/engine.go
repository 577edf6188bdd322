package lint

import (
	"shebang/internal/source"
)

// Rule checks one aspect of a Markdown document.
type Rule interface {
	Code() Code
	Check(p *Parsed, report Reporter)
}

// Linter runs the configured rule set over files.
type Linter struct {
	cfg   Config
	rules []Rule
}

// New builds a linter from config: disabled rules are dropped, severity
// overrides are applied at report time.
func New(cfg Config) *Linter {
	if cfg.MaxIssues <= 0 {
		cfg.MaxIssues = DefaultMaxIssues
	}
	enabled := make([]Rule, 0, len(allRules))
	for _, r := range allRules {
		if cfg.Enabled(r.Code()) {
			enabled = append(enabled, r)
		}
	}
	return &Linter{cfg: cfg, rules: enabled}
}

// Check runs all enabled rules against a file, emitting to report.
func (l *Linter) Check(f *source.File, report Reporter) {
	p := Parse(f)
	wrapped := overrideReporter{inner: report, cfg: l.cfg}
	for _, r := range l.rules {
		r.Check(p, wrapped)
	}
}

// CheckFile is the common path: lint one file into a fresh sorted bag.
func (l *Linter) CheckFile(f *source.File) *Bag {
	bag := NewBag(l.cfg.MaxIssues)
	l.Check(f, BagReporter{Bag: bag})
	bag.Sort()
	bag.Dedup()
	return bag
}

// CheckText lints in-memory content, for unsaved buffers.
func (l *Linter) CheckText(name string, content []byte) *Bag {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return l.CheckFile(fs.Get(id))
}

// overrideReporter rewrites severities according to config before
// forwarding.
type overrideReporter struct {
	inner Reporter
	cfg   Config
}

func (r overrideReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	r.inner.Report(code, r.cfg.SeverityFor(code), primary, msg, notes, fixes)
}
