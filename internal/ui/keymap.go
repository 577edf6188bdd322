package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every global binding; pane-local keys live with their panes.
type keyMap struct {
	NewFile   key.Binding
	OpenTree  key.Binding
	Save      key.Binding
	CloseTab  key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Lint      key.Binding
	Theme     key.Binding
	Terminal  key.Binding
	Preview   key.Binding
	FocusNext key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewFile: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new file"),
		),
		OpenTree: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "explorer"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+pgdown"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+pgup"),
			key.WithHelp("ctrl+←", "prev tab"),
		),
		Lint: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "lint"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Terminal: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "terminal"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp is what the help bubble shows collapsed.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Lint, k.Terminal, k.Help, k.Quit}
}

// FullHelp is the expanded help grid.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewFile, k.OpenTree, k.Save, k.CloseTab},
		{k.NextTab, k.PrevTab, k.FocusNext, k.Preview},
		{k.Lint, k.Terminal, k.Theme, k.Quit},
	}
}
