package lint

import (
	"fmt"
	"strings"

	"shebang/internal/source"
)

// trailingSpaceRule flags trailing whitespace. Exactly two trailing spaces
// is a legal hard line break and stays untouched.
type trailingSpaceRule struct{}

func (trailingSpaceRule) Code() Code { return TrailingSpace }

func (r trailingSpaceRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()
	for line := p.BodyLine; line <= total; line++ {
		if p.IsCode(line) {
			continue
		}
		text := f.Line(line)
		trimmed := strings.TrimRight(text, " \t")
		tail := text[len(trimmed):]
		if tail == "" || (tail == "  " && trimmed != "") {
			continue
		}
		sp := spanWithin(f, line, len(trimmed), len(text))
		Report(report, TrailingSpace,
			sp,
			fmt.Sprintf("trailing whitespace at line %d", line)).
			WithFix("remove trailing whitespace", FixEdit{Span: source.Span{File: f.ID, Start: sp.Start, End: sp.End}}).
			Emit()
	}
}
