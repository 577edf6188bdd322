package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"shebang/internal/shell"
)

// shellResultMsg carries a finished command back into the update loop.
type shellResultMsg struct {
	result shell.Result
}

// terminalPane is the embedded command line: a prompt input above a scrollback
// viewport.
type terminalPane struct {
	runner  *shell.Runner
	input   textinput.Model
	output  viewport.Model
	history []string
	histPos int
	lines   []string
	busy    bool
	styles  *styleSet
}

func newTerminalPane(runner *shell.Runner, styles *styleSet) *terminalPane {
	input := textinput.New()
	input.Prompt = "$ "
	input.Placeholder = "command"
	input.CharLimit = 0

	return &terminalPane{
		runner: runner,
		input:  input,
		output: viewport.New(0, 0),
		styles: styles,
	}
}

func (p *terminalPane) SetSize(width, height int) {
	p.input.Width = width - 4
	p.output.Width = width
	if height > 1 {
		p.output.Height = height - 1
	}
	p.refresh()
}

func (p *terminalPane) Focus() { p.input.Focus() }
func (p *terminalPane) Blur()  { p.input.Blur() }

// Update handles terminal keys; a submitted command comes back as a tea.Cmd
// so the UI stays responsive while it runs.
func (p *terminalPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case shellResultMsg:
		p.busy = false
		p.appendResult(msg.result)
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return p.submit()
		case "up":
			p.recall(-1)
			return nil
		case "down":
			p.recall(1)
			return nil
		}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	cmds = append(cmds, cmd)
	p.output, cmd = p.output.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (p *terminalPane) submit() tea.Cmd {
	if p.busy {
		return nil
	}
	line := strings.TrimSpace(p.input.Value())
	if line == "" {
		return nil
	}
	p.input.SetValue("")
	p.history = append(p.history, line)
	p.histPos = len(p.history)
	p.busy = true

	p.lines = append(p.lines, p.styles.prompt.Render(p.runner.Cwd()+" $ ")+line)
	p.refresh()

	runner := p.runner
	return func() tea.Msg {
		return shellResultMsg{result: runner.Run(context.Background(), line)}
	}
}

func (p *terminalPane) recall(dir int) {
	if len(p.history) == 0 {
		return
	}
	p.histPos += dir
	if p.histPos < 0 {
		p.histPos = 0
	}
	if p.histPos >= len(p.history) {
		p.histPos = len(p.history)
		p.input.SetValue("")
		return
	}
	p.input.SetValue(p.history[p.histPos])
	p.input.CursorEnd()
}

func (p *terminalPane) appendResult(res shell.Result) {
	if res.Stdout != "" {
		p.lines = append(p.lines, strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")...)
	}
	if res.Stderr != "" {
		for _, line := range strings.Split(strings.TrimRight(res.Stderr, "\n"), "\n") {
			p.lines = append(p.lines, p.styles.errText.Render(line))
		}
	}
	if res.ExitCode != 0 {
		p.lines = append(p.lines, p.styles.errText.Render(fmt.Sprintf("exit %d", res.ExitCode)))
	}
	p.refresh()
}

func (p *terminalPane) refresh() {
	p.output.SetContent(strings.Join(p.lines, "\n"))
	p.output.GotoBottom()
}

func (p *terminalPane) View() string {
	return p.output.View() + "\n" + p.input.View()
}
