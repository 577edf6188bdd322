package lint

import (
	"fmt"
	"strings"
)

// tablePipeRule flags a row of a pipe table that does not start with '|'.
// A row is only suspected when the previous line is itself a table row.
type tablePipeRule struct{}

func (tablePipeRule) Code() Code { return TablePipeStart }

func (r tablePipeRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()
	for line := p.BodyLine + 1; line <= total; line++ {
		if p.IsCode(line) {
			continue
		}
		text := f.Line(line)
		if isBlank(text) || !strings.Contains(text, "|") {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(text), "|") {
			continue
		}
		prev := strings.TrimSpace(f.Line(line - 1))
		if !strings.HasPrefix(prev, "|") {
			continue
		}
		Report(report, TablePipeStart,
			f.LineSpan(line),
			fmt.Sprintf("table row at line %d should start with |", line)).
			Emit()
	}
}
