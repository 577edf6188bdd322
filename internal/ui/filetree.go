package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"shebang/internal/workspace"
)

// treeRow is one visible line of the explorer.
type treeRow struct {
	entry *workspace.Entry
	depth int
}

// fileTree is the explorer pane: a flattened view over workspace.Entry with
// collapsible directories.
type fileTree struct {
	root      *workspace.Entry
	rows      []treeRow
	collapsed map[string]bool
	cursor    int
	offset    int
	width     int
	height    int
	styles    *styleSet
}

func newFileTree(root *workspace.Entry, styles *styleSet) *fileTree {
	t := &fileTree{root: root, collapsed: map[string]bool{}, styles: styles}
	t.reflow()
	return t
}

// SetRoot swaps in a freshly scanned tree, keeping collapse state and cursor
// position where the paths still exist.
func (t *fileTree) SetRoot(root *workspace.Entry) {
	var selected string
	if row := t.current(); row != nil {
		selected = row.entry.Path
	}
	t.root = root
	t.reflow()
	if selected != "" {
		for i, row := range t.rows {
			if row.entry.Path == selected {
				t.cursor = i
				break
			}
		}
	}
	t.clamp()
}

func (t *fileTree) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.clamp()
}

func (t *fileTree) reflow() {
	t.rows = t.rows[:0]
	if t.root == nil {
		return
	}
	t.appendRows(t.root, 0)
	t.clamp()
}

func (t *fileTree) appendRows(e *workspace.Entry, depth int) {
	t.rows = append(t.rows, treeRow{entry: e, depth: depth})
	if e.Dir && !t.collapsed[e.Path] {
		for _, child := range e.Children {
			t.appendRows(child, depth+1)
		}
	}
}

func (t *fileTree) current() *treeRow {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	return &t.rows[t.cursor]
}

func (t *fileTree) clamp() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.height <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.height {
		t.offset = t.cursor - t.height + 1
	}
}

// Update handles explorer keys. It returns the path of a file the user chose
// to open, or "".
func (t *fileTree) Update(msg tea.Msg) (openPath string) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return ""
	}
	switch key.String() {
	case "up", "k":
		t.cursor--
	case "down", "j":
		t.cursor++
	case "home":
		t.cursor = 0
	case "end":
		t.cursor = len(t.rows) - 1
	case "enter", " ":
		row := t.current()
		if row == nil {
			break
		}
		if row.entry.Dir {
			t.collapsed[row.entry.Path] = !t.collapsed[row.entry.Path]
			t.reflow()
		} else {
			return row.entry.Path
		}
	case "left", "h":
		if row := t.current(); row != nil && row.entry.Dir && !t.collapsed[row.entry.Path] {
			t.collapsed[row.entry.Path] = true
			t.reflow()
		}
	case "right", "l":
		if row := t.current(); row != nil && row.entry.Dir && t.collapsed[row.entry.Path] {
			t.collapsed[row.entry.Path] = false
			t.reflow()
		}
	}
	t.clamp()
	return ""
}

func (t *fileTree) View() string {
	if len(t.rows) == 0 {
		return t.styles.muted.Render("(empty)")
	}
	var b strings.Builder
	end := t.offset + t.height
	if end > len(t.rows) {
		end = len(t.rows)
	}
	for i := t.offset; i < end; i++ {
		row := t.rows[i]
		marker := "  "
		if row.entry.Dir {
			if t.collapsed[row.entry.Path] {
				marker = "▸ "
			} else {
				marker = "▾ "
			}
		}
		line := strings.Repeat("  ", row.depth) + marker + row.entry.Name
		line = truncateCell(line, t.width-2)

		switch {
		case i == t.cursor:
			line = t.styles.accent.Render("› " + line)
		case row.entry.Dir:
			line = "  " + t.styles.dirName.Render(line)
		case row.entry.IsMarkdown():
			line = "  " + t.styles.mdName.Render(line)
		default:
			line = "  " + t.styles.muted.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncateCell(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-1, "…")
}
