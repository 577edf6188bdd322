package lint

import "fmt"

// headingLevelRule flags markers deeper than H6. CommonMark stops treating
// them as headings at seven hashes, which is almost never what the author
// meant.
type headingLevelRule struct{}

func (headingLevelRule) Code() Code { return HeadingLevel }

func (r headingLevelRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()
	for line := p.BodyLine; line <= total; line++ {
		if p.IsCode(line) {
			continue
		}
		level := headingMarker(f.Line(line))
		if level <= 6 {
			continue
		}
		Report(report, HeadingLevel,
			spanWithin(f, line, 0, level),
			fmt.Sprintf("heading level %d at line %d exceeds the maximum of 6", level, line)).
			Emit()
	}
}
