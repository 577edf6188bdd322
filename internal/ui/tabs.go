package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shebang/internal/document"
	"shebang/internal/lint"
)

// editorTab pairs one open document with its editing widget and the rendered
// preview for the split view.
type editorTab struct {
	doc     *document.Document
	area    textarea.Model
	preview viewport.Model

	previewText    string
	previewVersion uint64
	bag            *lint.Bag
	lintVersion    uint64
	tabWidth       int
}

func newEditorTab(doc *document.Document, tabWidth int) *editorTab {
	area := textarea.New()
	area.CharLimit = 0
	area.ShowLineNumbers = true
	area.SetValue(doc.Text)
	if doc.ReadOnly {
		area.Blur()
	}

	vp := viewport.New(0, 0)
	return &editorTab{doc: doc, area: area, preview: vp, tabWidth: tabWidth}
}

func (t *editorTab) ID() string { return t.doc.ID }

// syncFromArea copies the widget buffer into the document, bumping its
// version when the text actually changed.
func (t *editorTab) syncFromArea() bool {
	text := t.area.Value()
	if text == t.doc.Text {
		return false
	}
	t.doc.SetText(text)
	return true
}

func (t *editorTab) setPreview(version uint64, content string) {
	if version < t.previewVersion {
		return // stale render from a slow worker
	}
	t.previewVersion = version
	t.previewText = content
	t.preview.SetContent(content)
}

func (t *editorTab) setLint(version uint64, bag *lint.Bag) {
	if version < t.lintVersion {
		return
	}
	t.lintVersion = version
	t.bag = bag
}

func (t *editorTab) setSize(width, height int, split bool) {
	if split {
		half := width / 2
		t.area.SetWidth(half)
		t.preview.Width = width - half
	} else {
		t.area.SetWidth(width)
		t.preview.Width = width
	}
	t.area.SetHeight(height)
	t.preview.Height = height
}

func (t *editorTab) update(msg tea.Msg) tea.Cmd {
	if t.doc.ReadOnly {
		var cmd tea.Cmd
		t.preview, cmd = t.preview.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	return cmd
}

func (t *editorTab) view(split bool) string {
	if t.doc.ReadOnly {
		return t.preview.View()
	}
	if !split {
		return t.area.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, t.area.View(), t.preview.View())
}

// tabBar renders the row of open-document labels.
func tabBar(tabs []*editorTab, active int, width int, styles *styleSet) string {
	var parts []string
	for i, tab := range tabs {
		label := tab.doc.StatusLabel()
		if i == active {
			parts = append(parts, styles.tabActive.Render(label))
		} else {
			parts = append(parts, styles.tab.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
	return truncateCell(bar, width)
}

// openNames returns the display names already in use, for untitled numbering.
func openNames(tabs []*editorTab) []string {
	names := make([]string, 0, len(tabs))
	for _, t := range tabs {
		names = append(names, t.doc.DisplayName())
	}
	return names
}

// lintSummaryLine compresses a bag into the short form the status bar shows.
func lintSummaryLine(bag *lint.Bag) string {
	if bag == nil {
		return ""
	}
	if !bag.HasWarnings() {
		return "✓ lint clean"
	}
	var b strings.Builder
	if bag.HasErrors() {
		b.WriteString("✗ ")
	} else {
		b.WriteString("⚠ ")
	}
	errs, warns, _ := bag.Counts()
	b.WriteString(lintCounts(errs, warns))
	return b.String()
}

func lintCounts(errs, warns int) string {
	switch {
	case errs > 0 && warns > 0:
		return plural(errs, "error") + ", " + plural(warns, "warning")
	case errs > 0:
		return plural(errs, "error")
	default:
		return plural(warns, "warning")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
