package ui

import "github.com/charmbracelet/lipgloss"

// Theme is one named color scheme for the whole UI.
type Theme struct {
	Name string

	Accent    lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color
	StatusBG  lipgloss.Color
	StatusFG  lipgloss.Color
	TabActive lipgloss.Color
}

var themes = map[string]Theme{
	"dark": {
		Name:      "dark",
		Accent:    lipgloss.Color("6"),
		Border:    lipgloss.Color("8"),
		Text:      lipgloss.Color("7"),
		Muted:     lipgloss.Color("8"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("4"),
		StatusBG:  lipgloss.Color("8"),
		StatusFG:  lipgloss.Color("15"),
		TabActive: lipgloss.Color("14"),
	},
	"light": {
		Name:      "light",
		Accent:    lipgloss.Color("4"),
		Border:    lipgloss.Color("7"),
		Text:      lipgloss.Color("0"),
		Muted:     lipgloss.Color("8"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("4"),
		StatusBG:  lipgloss.Color("7"),
		StatusFG:  lipgloss.Color("0"),
		TabActive: lipgloss.Color("4"),
	},
	"blue": {
		Name:      "blue",
		Accent:    lipgloss.Color("12"),
		Border:    lipgloss.Color("4"),
		Text:      lipgloss.Color("7"),
		Muted:     lipgloss.Color("8"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("12"),
		StatusBG:  lipgloss.Color("4"),
		StatusFG:  lipgloss.Color("15"),
		TabActive: lipgloss.Color("12"),
	},
	"green": {
		Name:      "green",
		Accent:    lipgloss.Color("10"),
		Border:    lipgloss.Color("2"),
		Text:      lipgloss.Color("7"),
		Muted:     lipgloss.Color("8"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("10"),
		StatusBG:  lipgloss.Color("2"),
		StatusFG:  lipgloss.Color("0"),
		TabActive: lipgloss.Color("10"),
	},
	"purple": {
		Name:      "purple",
		Accent:    lipgloss.Color("13"),
		Border:    lipgloss.Color("5"),
		Text:      lipgloss.Color("7"),
		Muted:     lipgloss.Color("8"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("13"),
		StatusBG:  lipgloss.Color("5"),
		StatusFG:  lipgloss.Color("15"),
		TabActive: lipgloss.Color("13"),
	},
	"orange": {
		Name:      "orange",
		Accent:    lipgloss.Color("208"),
		Border:    lipgloss.Color("166"),
		Text:      lipgloss.Color("7"),
		Muted:     lipgloss.Color("8"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("208"),
		StatusBG:  lipgloss.Color("166"),
		StatusFG:  lipgloss.Color("0"),
		TabActive: lipgloss.Color("208"),
	},
}

// themeOrder is the cycle used by the theme-switch key.
var themeOrder = []string{"dark", "light", "blue", "green", "purple", "orange"}

// ThemeByName returns the theme, falling back to dark for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["dark"]
}

// NextTheme cycles through the available themes.
func NextTheme(current string) Theme {
	for i, name := range themeOrder {
		if name == current {
			return themes[themeOrder[(i+1)%len(themeOrder)]]
		}
	}
	return themes[themeOrder[0]]
}

// styles derived from a theme; rebuilt whenever the theme changes.
type styleSet struct {
	paneBorder   lipgloss.Style
	activeBorder lipgloss.Style
	tab          lipgloss.Style
	tabActive    lipgloss.Style
	statusBar    lipgloss.Style
	statusError  lipgloss.Style
	statusWarn   lipgloss.Style
	muted        lipgloss.Style
	errText      lipgloss.Style
	warnText     lipgloss.Style
	infoText     lipgloss.Style
	accent       lipgloss.Style
	prompt       lipgloss.Style
	dirName      lipgloss.Style
	mdName       lipgloss.Style
}

func newStyleSet(t Theme) styleSet {
	return styleSet{
		paneBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border),
		activeBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent),
		tab:          lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		tabActive:    lipgloss.NewStyle().Foreground(t.TabActive).Bold(true).Padding(0, 1).Underline(true),
		statusBar:    lipgloss.NewStyle().Background(t.StatusBG).Foreground(t.StatusFG),
		statusError:  lipgloss.NewStyle().Background(t.StatusBG).Foreground(t.Error).Bold(true),
		statusWarn:   lipgloss.NewStyle().Background(t.StatusBG).Foreground(t.Warning),
		muted:        lipgloss.NewStyle().Foreground(t.Muted),
		errText:      lipgloss.NewStyle().Foreground(t.Error),
		warnText:     lipgloss.NewStyle().Foreground(t.Warning),
		infoText:     lipgloss.NewStyle().Foreground(t.Info),
		accent:       lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		prompt:       lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		dirName:      lipgloss.NewStyle().Foreground(t.Accent),
		mdName:       lipgloss.NewStyle().Foreground(t.Text),
	}
}
