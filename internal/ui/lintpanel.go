package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"shebang/internal/lint"
	"shebang/internal/source"
)

// lintPanel shows the active document's issues below the editor.
type lintPanel struct {
	vp     viewport.Model
	styles *styleSet
}

func newLintPanel(styles *styleSet) *lintPanel {
	return &lintPanel{vp: viewport.New(0, 0), styles: styles}
}

func (p *lintPanel) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

// SetBag re-renders the issue list for the document currently in front.
func (p *lintPanel) SetBag(bag *lint.Bag, f *source.File) {
	if bag == nil || bag.Len() == 0 {
		p.vp.SetContent(p.styles.muted.Render("no issues"))
		return
	}
	var b strings.Builder
	for i, issue := range bag.Items() {
		pos := f.PositionAt(issue.Primary.Start)
		var sev string
		switch issue.Severity {
		case lint.SevError:
			sev = p.styles.errText.Render("error")
		case lint.SevWarning:
			sev = p.styles.warnText.Render("warning")
		default:
			sev = p.styles.infoText.Render("info")
		}
		fmt.Fprintf(&b, "%4d:%-3d %s [%s] %s", pos.Line, pos.Col, sev, issue.Code.ID(), issue.Message)
		if snippet := f.Slice(issue.Primary); len(snippet) > 0 {
			text := string(snippet)
			if nl := strings.IndexByte(text, '\n'); nl >= 0 {
				text = text[:nl]
			}
			b.WriteString(p.styles.muted.Render("  ‹" + truncateCell(text, 40) + "›"))
		}
		if len(issue.Fixes) > 0 {
			b.WriteString(p.styles.muted.Render("  (fixable)"))
		}
		if i < bag.Len()-1 {
			b.WriteString("\n")
		}
	}
	p.vp.SetContent(b.String())
	p.vp.GotoTop()
}

func (p *lintPanel) View() string { return p.vp.View() }
