package lint

import (
	"fmt"
	"strings"
)

// fenceRule tracks backtick fences with a single open/closed bit: a closing
// fence should be followed by a blank line, and a fence left open at EOF is
// an error.
type fenceRule struct{}

func (fenceRule) Code() Code { return FenceBlankLine }

func (r fenceRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()

	inFence := false
	openLine := 0
	for line := p.BodyLine; line <= total; line++ {
		if !strings.HasPrefix(strings.TrimSpace(f.Line(line)), "```") {
			continue
		}
		inFence = !inFence
		if inFence {
			openLine = line
			continue
		}
		// just closed
		if line == total {
			continue
		}
		if isBlank(f.Line(line + 1)) {
			continue
		}
		Report(report, FenceBlankLine,
			f.LineSpan(line),
			fmt.Sprintf("code fence closed at line %d is not followed by a blank line", line)).
			WithFix("insert blank line after code fence", insertLineBefore(f, line+1)).
			Emit()
	}

	if inFence {
		Report(report, FenceUnclosed,
			f.LineSpan(openLine),
			fmt.Sprintf("code fence opened at line %d is never closed", openLine)).
			Emit()
	}
}
