// Package ui is the terminal front end: explorer, tabbed editor with live
// preview, embedded terminal, lint panel, and status bar.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shebang/internal/config"
	"shebang/internal/document"
	"shebang/internal/lint"
	"shebang/internal/preview"
	"shebang/internal/shell"
	"shebang/internal/source"
	"shebang/internal/workspace"
)

// pane focus cycle order.
type focusArea int

const (
	focusTree focusArea = iota
	focusEditor
	focusTerminal
)

const (
	treeWidth     = 30
	terminalLines = 10
	lintLines     = 6
)

// Options configures a UI session.
type Options struct {
	Root     string // workspace root, already resolved
	OpenPath string // optional file to open immediately
	Config   config.Config
	Restore  bool // reopen the previous session's tabs
}

// messages produced by background work
type previewReadyMsg struct {
	id      string
	version uint64
	content string
}

type lintReadyMsg struct {
	id      string
	version uint64
	bag     *lint.Bag
	file    *source.File
}

type treeScannedMsg struct {
	root *workspace.Entry
}

// Model is the bubbletea root model.
type Model struct {
	opts   Options
	theme  Theme
	styles styleSet
	keys   keyMap
	help   help.Model

	tree     *fileTree
	tabs     []*editorTab
	active   int
	terminal *terminalPane
	lints    *lintPanel

	renderer *preview.Renderer
	linter   *lint.Linter
	sessions *workspace.SessionStore

	focus        focusArea
	showTerminal bool
	showLints    bool
	splitView    bool
	width        int
	height       int
	status       string
	lintFiles    map[string]*source.File
}

// NewModel builds the root model; the caller hands it to tea.NewProgram.
func NewModel(opts Options) (*Model, error) {
	theme := ThemeByName(opts.Config.UI.Theme)
	styles := newStyleSet(theme)

	root, err := workspace.ScanTree(opts.Root)
	if err != nil {
		return nil, err
	}

	runner, err := shell.NewRunner(opts.Root, opts.Config.TerminalTimeout())
	if err != nil {
		return nil, err
	}

	previewStyle := opts.Config.Preview.Style
	if previewStyle == "" || previewStyle == "auto" {
		// follow the theme instead of probing the terminal background
		if theme.Name == "light" {
			previewStyle = "light"
		} else {
			previewStyle = "dark"
		}
	}
	renderer, err := preview.New(previewStyle, opts.Config.Preview.Width)
	if err != nil {
		return nil, err
	}

	lintCfg, _, err := lint.FindConfig(opts.Root)
	if err != nil {
		return nil, err
	}

	m := &Model{
		opts:      opts,
		theme:     theme,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      help.New(),
		renderer:  renderer,
		linter:    lint.New(lintCfg),
		focus:     focusEditor,
		splitView: true,
		lintFiles: map[string]*source.File{},
	}
	m.tree = newFileTree(root, &m.styles)
	m.terminal = newTerminalPane(runner, &m.styles)
	m.lints = newLintPanel(&m.styles)

	if store, err := workspace.OpenSessionStore("shebang"); err == nil {
		m.sessions = store
	}
	if opts.Restore && m.sessions != nil {
		m.restoreSession()
	}
	if opts.OpenPath != "" {
		if err := m.openFile(opts.OpenPath); err != nil {
			return nil, err
		}
	}
	if len(m.tabs) == 0 {
		m.newUntitled()
	}
	return m, nil
}

func (m *Model) restoreSession() {
	sess, ok, err := m.sessions.Load(m.opts.Root)
	if err != nil || !ok {
		return
	}
	for _, path := range sess.OpenPaths {
		_ = m.openFile(path) // deleted files are just skipped
	}
	if sess.ActiveIndex >= 0 && sess.ActiveIndex < len(m.tabs) {
		m.active = sess.ActiveIndex
	}
	if sess.TerminalCwd != "" {
		// a cwd deleted or moved outside the root since last run is dropped
		_ = m.terminal.runner.SetCwd(sess.TerminalCwd)
	}
}

func (m *Model) saveSession() {
	if m.sessions == nil {
		return
	}
	sess := &workspace.Session{
		Root:        m.opts.Root,
		ActiveIndex: m.active,
		TerminalCwd: m.terminal.runner.CwdAbs(),
	}
	for _, t := range m.tabs {
		if t.doc.Path != "" && !t.doc.ReadOnly {
			sess.OpenPaths = append(sess.OpenPaths, t.doc.Path)
		}
	}
	_ = m.sessions.Save(sess)
}

// openFile opens path in a new tab, or switches to it when already open.
func (m *Model) openFile(path string) error {
	for i, t := range m.tabs {
		if t.doc.Path == path {
			m.active = i
			return nil
		}
	}
	doc, err := document.Open(path)
	if err != nil {
		return err
	}
	m.appendTab(doc)
	return nil
}

func (m *Model) newUntitled() {
	doc := document.New()
	m.appendTab(doc)
}

func (m *Model) appendTab(doc *document.Document) {
	tab := newEditorTab(doc, m.opts.Config.Editor.TabWidth)
	m.tabs = append(m.tabs, tab)
	m.active = len(m.tabs) - 1
	m.layoutTabs()
	if m.focus == focusEditor && !doc.ReadOnly {
		tab.area.Focus()
	}
}

func (m *Model) activeTab() *editorTab {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

func (m *Model) closeActiveTab() {
	if len(m.tabs) == 0 {
		return
	}
	m.tabs = append(m.tabs[:m.active], m.tabs[m.active+1:]...)
	if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
	if len(m.tabs) == 0 {
		m.newUntitled()
	}
	m.applyFocus()
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if tab := m.activeTab(); tab != nil {
		cmds = append(cmds, m.refreshTab(tab)...)
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.opts.Config.Preview.Width == 0 {
			half := (m.width - treeWidth - 4) / 2
			if half > 20 && half != m.renderer.Width() {
				if err := m.renderer.SetWidth(half); err == nil {
					return m, tea.Batch(m.refreshTab(m.activeTab())...)
				}
			}
		}
		return m, nil

	case previewReadyMsg:
		if tab := m.tabByID(msg.id); tab != nil {
			tab.setPreview(msg.version, msg.content)
		}
		return m, nil

	case lintReadyMsg:
		if tab := m.tabByID(msg.id); tab != nil {
			tab.setLint(msg.version, msg.bag)
			m.lintFiles[msg.id] = msg.file
			if tab == m.activeTab() {
				m.lints.SetBag(msg.bag, msg.file)
			}
		}
		return m, nil

	case treeScannedMsg:
		if msg.root != nil {
			m.tree.SetRoot(msg.root)
		}
		return m, nil

	case shellResultMsg:
		cmd := m.terminal.Update(msg)
		if shell.MayMutateTree(msg.result.Command) && msg.result.ExitCode == 0 {
			return m, tea.Batch(cmd, m.rescanTree())
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.routeToFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.saveSession()
		return m, tea.Quit

	case key.Matches(msg, keys.NewFile):
		m.newUntitled()
		return m, nil

	case key.Matches(msg, keys.OpenTree):
		m.focus = focusTree
		m.applyFocus()
		return m, nil

	case key.Matches(msg, keys.Save):
		return m, m.saveActive()

	case key.Matches(msg, keys.CloseTab):
		m.closeActiveTab()
		return m, nil

	case key.Matches(msg, keys.NextTab):
		if len(m.tabs) > 0 {
			m.active = (m.active + 1) % len(m.tabs)
			m.onTabSwitch()
		}
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		if len(m.tabs) > 0 {
			m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
			m.onTabSwitch()
		}
		return m, nil

	case key.Matches(msg, keys.Lint):
		m.showLints = !m.showLints
		m.layout()
		if m.showLints {
			if tab := m.activeTab(); tab != nil {
				return m, tea.Batch(m.refreshTab(tab)...)
			}
		}
		return m, nil

	case key.Matches(msg, keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyleSet(m.theme)
		m.status = "theme: " + m.theme.Name
		return m, nil

	case key.Matches(msg, keys.Terminal):
		m.showTerminal = !m.showTerminal
		if m.showTerminal {
			m.focus = focusTerminal
		} else if m.focus == focusTerminal {
			m.focus = focusEditor
		}
		m.layout()
		m.applyFocus()
		return m, nil

	case key.Matches(msg, keys.Preview):
		m.splitView = !m.splitView
		m.layoutTabs()
		return m, nil

	case key.Matches(msg, keys.Help):
		if m.focus == focusTree {
			m.openReference()
			return m, tea.Batch(m.refreshTab(m.activeTab())...)
		}
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, keys.FocusNext) && m.focus != focusEditor:
		m.cycleFocus()
		return m, nil
	}

	return m, m.routeToFocused(msg)
}

func (m *Model) routeToFocused(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case focusTree:
		if path := m.tree.Update(msg); path != "" {
			if err := m.openFile(path); err != nil {
				m.status = err.Error()
				return nil
			}
			m.focus = focusEditor
			m.applyFocus()
			if tab := m.activeTab(); tab != nil {
				return tea.Batch(m.refreshTab(tab)...)
			}
		}
		return nil

	case focusTerminal:
		return m.terminal.Update(msg)

	default:
		tab := m.activeTab()
		if tab == nil {
			return nil
		}
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "tab" && !tab.doc.ReadOnly {
			// tab indents inside the editor; pane cycling uses it elsewhere
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.Repeat(" ", tab.tabWidth))}
		}
		cmd := tab.update(msg)
		if tab.syncFromArea() {
			return tea.Batch(append(m.refreshTab(tab), cmd)...)
		}
		return cmd
	}
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusTree:
		m.focus = focusEditor
	case focusEditor:
		if m.showTerminal {
			m.focus = focusTerminal
		} else {
			m.focus = focusTree
		}
	case focusTerminal:
		m.focus = focusTree
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	if tab := m.activeTab(); tab != nil {
		if m.focus == focusEditor && !tab.doc.ReadOnly {
			tab.area.Focus()
		} else {
			tab.area.Blur()
		}
	}
	if m.focus == focusTerminal {
		m.terminal.Focus()
	} else {
		m.terminal.Blur()
	}
}

func (m *Model) onTabSwitch() {
	m.applyFocus()
	tab := m.activeTab()
	if tab == nil {
		return
	}
	if f, ok := m.lintFiles[tab.ID()]; ok {
		m.lints.SetBag(tab.bag, f)
	}
}

func (m *Model) openReference() {
	for i, t := range m.tabs {
		if t.doc.ReadOnly {
			m.active = i
			m.onTabSwitch()
			return
		}
	}
	doc := document.NewReadOnly("reference.md", referenceText)
	m.appendTab(doc)
	m.focus = focusEditor
	m.applyFocus()
}

func (m *Model) tabByID(id string) *editorTab {
	for _, t := range m.tabs {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// refreshTab schedules a preview render and a lint pass for the tab's current
// text; stale results are dropped by version.
func (m *Model) refreshTab(tab *editorTab) []tea.Cmd {
	if tab == nil {
		return nil
	}
	id := tab.ID()
	version := tab.doc.Version
	text := tab.doc.Text
	name := tab.doc.DisplayName()
	renderer := m.renderer
	linter := m.linter

	render := func() tea.Msg {
		out, err := renderer.Render(text)
		if err != nil {
			out = "render failed: " + err.Error()
		}
		return previewReadyMsg{id: id, version: version, content: out}
	}
	cmds := []tea.Cmd{render}

	if !tab.doc.ReadOnly && tab.doc.IsMarkdown() {
		check := func() tea.Msg {
			fs := source.NewFileSet()
			fid := fs.AddVirtual(name, []byte(text))
			f := fs.Get(fid)
			bag := linter.CheckFile(f)
			return lintReadyMsg{id: id, version: version, bag: bag, file: f}
		}
		cmds = append(cmds, check)
	}
	return cmds
}

func (m *Model) rescanTree() tea.Cmd {
	root := m.opts.Root
	return func() tea.Msg {
		tree, err := workspace.ScanTree(root)
		if err != nil {
			return treeScannedMsg{}
		}
		return treeScannedMsg{root: tree}
	}
}

func (m *Model) saveActive() tea.Cmd {
	tab := m.activeTab()
	if tab == nil {
		return nil
	}
	tab.syncFromArea()
	doc := tab.doc
	if doc.ReadOnly {
		m.status = "reference is read-only"
		return nil
	}
	if doc.Path == "" {
		name := document.NextUntitledName(openNames(m.tabs))
		if err := doc.SaveAs(filepath.Join(m.opts.Root, name)); err != nil {
			m.status = "save failed: " + err.Error()
			return nil
		}
		m.status = "saved " + doc.DisplayName()
		return m.rescanTree()
	}
	if err := doc.Save(); err != nil {
		m.status = "save failed: " + err.Error()
		return nil
	}
	m.status = "saved " + doc.DisplayName()
	return nil
}

// layout recomputes pane sizes from the window size and visible panes.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.help.Width = m.width

	bodyHeight := m.height - 3 // tab bar, status bar, help line
	if m.showTerminal {
		bodyHeight -= terminalLines + 1
	}
	if m.showLints {
		bodyHeight -= lintLines + 1
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	m.tree.SetSize(treeWidth-2, bodyHeight)
	m.terminal.SetSize(m.width-2, terminalLines)
	m.lints.SetSize(m.width-2, lintLines)
	m.layoutTabs()
}

func (m *Model) layoutTabs() {
	if m.width <= 0 {
		return
	}
	bodyHeight := m.height - 3
	if m.showTerminal {
		bodyHeight -= terminalLines + 1
	}
	if m.showLints {
		bodyHeight -= lintLines + 1
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	editorWidth := m.width - treeWidth - 4
	if editorWidth < 20 {
		editorWidth = 20
	}
	for _, t := range m.tabs {
		t.setSize(editorWidth, bodyHeight-2, m.splitView && !t.doc.ReadOnly)
	}
}

func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}

	bar := tabBar(m.tabs, m.active, m.width, &m.styles)

	treeBox := m.paneStyle(focusTree).Width(treeWidth - 2).Render(m.tree.View())
	var editorView string
	if tab := m.activeTab(); tab != nil {
		editorView = tab.view(m.splitView)
	}
	editorBox := m.paneStyle(focusEditor).Render(editorView)
	body := lipgloss.JoinHorizontal(lipgloss.Top, treeBox, editorBox)

	sections := []string{bar, body}
	if m.showLints {
		sections = append(sections, m.styles.paneBorder.Width(m.width-2).Render(m.lints.View()))
	}
	if m.showTerminal {
		sections = append(sections, m.paneStyle(focusTerminal).Width(m.width-2).Render(m.terminal.View()))
	}
	sections = append(sections, m.statusBar(), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) paneStyle(area focusArea) lipgloss.Style {
	if m.focus == area {
		return m.styles.activeBorder
	}
	return m.styles.paneBorder
}

func (m *Model) statusBar() string {
	tab := m.activeTab()
	left := ""
	right := ""
	if tab != nil {
		left = " " + tab.doc.StatusLabel()
		stats := tab.doc.Stats()
		right = fmt.Sprintf("%s · %d lines · %d words · %s ",
			lintSummaryLine(tab.bag), stats.Lines, stats.Words, m.theme.Name)
	}
	if m.status != "" {
		left += "  " + m.status
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return m.styles.statusBar.Width(m.width).Render(truncateCell(line, m.width))
}

// Run starts the program in the alternate screen and persists the session on
// exit.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	if err == nil {
		m.saveSession()
	}
	return err
}
