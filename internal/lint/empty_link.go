package lint

import (
	"fmt"
	"regexp"
	"strings"
)

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)

// emptyLinkRule flags inline links whose URL is empty or whitespace.
type emptyLinkRule struct{}

func (emptyLinkRule) Code() Code { return LinkEmptyURL }

func (r emptyLinkRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()
	for line := p.BodyLine; line <= total; line++ {
		if p.IsCode(line) {
			continue
		}
		text := f.Line(line)
		for _, m := range linkRe.FindAllStringSubmatchIndex(text, -1) {
			// ![alt](url) is an image, covered by the alt-text rule
			if m[0] > 0 && text[m[0]-1] == '!' {
				continue
			}
			url := text[m[4]:m[5]]
			if strings.TrimSpace(url) != "" {
				continue
			}
			Report(report, LinkEmptyURL,
				spanWithin(f, line, m[0], m[1]),
				fmt.Sprintf("link %q at line %d has an empty URL", text[m[0]:m[1]], line)).
				Emit()
		}
	}
}
