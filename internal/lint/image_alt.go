package lint

import (
	"fmt"
	"regexp"
	"strings"
)

var imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// imageAltRule flags images without alt text. Screen readers have nothing
// to announce for those.
type imageAltRule struct{}

func (imageAltRule) Code() Code { return ImageNoAlt }

func (r imageAltRule) Check(p *Parsed, report Reporter) {
	f := p.File
	total := f.NumLines()
	for line := p.BodyLine; line <= total; line++ {
		if p.IsCode(line) {
			continue
		}
		text := f.Line(line)
		for _, m := range imageRe.FindAllStringSubmatchIndex(text, -1) {
			alt := text[m[2]:m[3]]
			if strings.TrimSpace(alt) != "" {
				continue
			}
			Report(report, ImageNoAlt,
				spanWithin(f, line, m[0], m[1]),
				fmt.Sprintf("image at line %d has no alt text", line)).
				Emit()
		}
	}
}
