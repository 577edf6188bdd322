package lint

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"shebang/internal/source"
)

// Parsed is the per-file context shared by all rules: the file itself, where
// the Markdown body starts (frontmatter is not linted), and which lines
// belong to code blocks so text rules can skip them.
type Parsed struct {
	File *source.File

	// BodyLine is the 1-based first line after the frontmatter block.
	BodyLine int

	// bodyOffset is the byte offset of the body within File.Content.
	bodyOffset uint32

	codeLines map[int]bool
}

var md = goldmark.New()

// Parse prepares a file for linting. Broken frontmatter is treated as body
// text; the linter never refuses a document.
func Parse(f *source.File) *Parsed {
	p := &Parsed{
		File:      f,
		BodyLine:  1,
		codeLines: make(map[int]bool),
	}

	body := f.Content
	var meta map[string]any
	if rest, err := frontmatter.Parse(bytes.NewReader(f.Content), &meta); err == nil && len(rest) < len(f.Content) {
		body = rest
		p.bodyOffset = uint32(len(f.Content) - len(rest))
		p.BodyLine = int(f.PositionAt(p.bodyOffset).Line)
	}

	p.markCodeLines(body)
	return p
}

// markCodeLines walks the goldmark AST over the body and records every line
// that sits inside a code block, including the opening fence.
func (p *Parsed) markCodeLines(body []byte) {
	doc := md.Parser().Parse(text.NewReader(body))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				p.markLineAt(uint32(seg.Start))
			}
			if fenced, ok := n.(*ast.FencedCodeBlock); ok && fenced.Info != nil {
				p.markLineAt(uint32(fenced.Info.Segment.Start))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

func (p *Parsed) markLineAt(bodyOff uint32) {
	pos := p.File.PositionAt(p.bodyOffset + bodyOff)
	p.codeLines[int(pos.Line)] = true
}

// IsCode reports whether a 1-based line is part of a code block.
func (p *Parsed) IsCode(line int) bool {
	return p.codeLines[line]
}

// InBody reports whether a 1-based line is past the frontmatter.
func (p *Parsed) InBody(line int) bool {
	return line >= p.BodyLine
}
