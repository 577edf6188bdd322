// Package document models the editor's open buffers: a file path (possibly
// not yet assigned), its text, a modified flag and the parsed frontmatter.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
)

// DefaultUntitled is the name given to the first unsaved buffer.
const DefaultUntitled = "untitled.md"

// Meta is the parsed YAML frontmatter of a document. Missing frontmatter
// leaves the zero value.
type Meta struct {
	Title  string    `yaml:"title"`
	Tags   []string  `yaml:"tags"`
	Author string    `yaml:"author"`
	Date   time.Time `yaml:"date"`
	Draft  bool      `yaml:"draft"`
}

// Document is one open buffer.
type Document struct {
	// ID is stable for the lifetime of the buffer, independent of renames.
	ID string

	// Path is empty until the document is saved for the first time.
	Path string

	Text     string
	Modified bool
	ReadOnly bool

	// Version increments on every text change; consumers use it to know
	// when cached derived state (preview, lint) is stale.
	Version uint64

	Meta Meta
}

// New returns an empty unsaved document. A new buffer counts as modified so
// quitting warns about it.
func New() *Document {
	return &Document{
		ID:       uuid.NewString(),
		Modified: true,
	}
}

// NewReadOnly wraps fixed content (the Markdown reference tab) in a buffer
// that can never be saved.
func NewReadOnly(name, text string) *Document {
	return &Document{
		ID:       uuid.NewString(),
		Path:     name,
		Text:     text,
		ReadOnly: true,
	}
}

// Open reads a file from disk into a new document.
func Open(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	doc := &Document{
		ID:   uuid.NewString(),
		Path: abs,
		Text: string(raw),
	}
	doc.refreshMeta()
	return doc, nil
}

// SetText replaces the buffer content, marking it modified.
func (d *Document) SetText(text string) {
	if d.ReadOnly || text == d.Text {
		return
	}
	d.Text = text
	d.Modified = true
	d.Version++
	d.refreshMeta()
}

// DisplayName is the tab/status label: base name, or an untitled
// placeholder before the first save.
func (d *Document) DisplayName() string {
	if d.Path == "" {
		return DefaultUntitled
	}
	return filepath.Base(d.Path)
}

// StatusLabel renders the display name with the modified star.
func (d *Document) StatusLabel() string {
	if d.Modified {
		return d.DisplayName() + "*"
	}
	return d.DisplayName()
}

// IsMarkdown reports whether the document will be linted and previewed.
func (d *Document) IsMarkdown() bool {
	if d.Path == "" {
		return true // unsaved buffers default to markdown
	}
	return strings.EqualFold(filepath.Ext(d.Path), ".md")
}

func (d *Document) refreshMeta() {
	var meta Meta
	if _, err := frontmatter.Parse(strings.NewReader(d.Text), &meta); err == nil {
		d.Meta = meta
	} else {
		d.Meta = Meta{}
	}
}

// Stats summarises the buffer for the status bar.
type Stats struct {
	Lines int
	Words int
	Chars int
}

func (d *Document) Stats() Stats {
	lines := bytes.Count([]byte(d.Text), []byte{'\n'})
	if len(d.Text) > 0 && !strings.HasSuffix(d.Text, "\n") {
		lines++
	}
	return Stats{
		Lines: lines,
		Words: len(strings.Fields(d.Text)),
		Chars: len([]rune(d.Text)),
	}
}

// NextUntitledName picks a fresh placeholder name given the names already
// used by open buffers: untitled.md, untitled2.md, ...
func NextUntitledName(taken []string) string {
	used := make(map[string]bool, len(taken))
	for _, name := range taken {
		used[name] = true
	}
	if !used[DefaultUntitled] {
		return DefaultUntitled
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("untitled%d.md", i)
		if !used[name] {
			return name
		}
	}
}
