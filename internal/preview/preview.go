// Package preview renders Markdown to styled terminal output for the live
// preview pane and the render command.
package preview

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Styles the renderer accepts; "auto" picks per the terminal background.
var Styles = []string{"auto", "dark", "light", "notty"}

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Renderer wraps a glamour renderer, rebuilt lazily when width or style
// change.
type Renderer struct {
	mu    sync.Mutex
	style string
	width int
	tr    *glamour.TermRenderer
}

// New creates a renderer. An empty style means "auto"; width <= 0 falls back
// to DefaultWidth.
func New(style string, width int) (*Renderer, error) {
	if style == "" {
		style = "auto"
	}
	if !validStyle(style) {
		return nil, fmt.Errorf("unknown preview style %q (want one of %v)", style, Styles)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	r := &Renderer{style: style, width: width}
	if err := r.rebuild(); err != nil {
		return nil, err
	}
	return r, nil
}

func validStyle(style string) bool {
	for _, s := range Styles {
		if s == style {
			return true
		}
	}
	return false
}

func (r *Renderer) rebuild() error {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(r.width),
		glamour.WithEmoji(),
	}
	switch r.style {
	case "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(r.style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	r.tr = tr
	return nil
}

// SetWidth resizes the word wrap; a no-op when unchanged.
func (r *Renderer) SetWidth(width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if width == r.width {
		return nil
	}
	r.width = width
	return r.rebuild()
}

// Width returns the current word-wrap width.
func (r *Renderer) Width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width
}

// Render turns Markdown source into ANSI-styled text.
func (r *Renderer) Render(markdown string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
