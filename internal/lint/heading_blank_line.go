package lint

import "fmt"

// headingBlankLineRule flags a heading immediately followed by body text.
// The blank line matters: without it many renderers glue the paragraph onto
// the heading.
type headingBlankLineRule struct{}

func (headingBlankLineRule) Code() Code { return HeadingBlankLine }

func (r headingBlankLineRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()
	for line := p.BodyLine; line < total; line++ {
		if p.IsCode(line) {
			continue
		}
		text := f.Line(line)
		level := headingMarker(text)
		if level == 0 || level > 6 {
			continue
		}
		next := f.Line(line + 1)
		if isBlank(next) || headingMarker(next) > 0 {
			continue
		}
		Report(report, HeadingBlankLine,
			f.LineSpan(line),
			fmt.Sprintf("heading at line %d is not followed by a blank line", line)).
			WithFix("insert blank line after heading", insertLineBefore(f, line+1)).
			Emit()
	}
}
