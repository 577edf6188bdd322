package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("# Note\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.Modified {
		t.Error("freshly opened document should not be modified")
	}
	if doc.DisplayName() != "note.md" {
		t.Errorf("DisplayName = %q", doc.DisplayName())
	}

	doc.SetText("# Note\n\nedited\n")
	if !doc.Modified {
		t.Error("SetText should mark the document modified")
	}
	if doc.Version != 1 {
		t.Errorf("Version = %d, want 1", doc.Version)
	}
	if doc.StatusLabel() != "note.md*" {
		t.Errorf("StatusLabel = %q", doc.StatusLabel())
	}

	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if doc.Modified {
		t.Error("Save should clear the modified flag")
	}

	onDisk, _ := os.ReadFile(path)
	if string(onDisk) != "# Note\n\nedited\n" {
		t.Errorf("on disk = %q", onDisk)
	}
}

func TestNewUntitled(t *testing.T) {
	doc := New()
	if !doc.Modified {
		t.Error("new buffer counts as modified")
	}
	if doc.DisplayName() != DefaultUntitled {
		t.Errorf("DisplayName = %q", doc.DisplayName())
	}
	if err := doc.Save(); err != ErrNoPath {
		t.Errorf("Save without path = %v, want ErrNoPath", err)
	}
}

func TestSaveAs(t *testing.T) {
	doc := New()
	doc.SetText("content\n")

	path := filepath.Join(t.TempDir(), "fresh.md")
	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if doc.Path == "" || doc.Modified {
		t.Error("SaveAs should set path and clear modified")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}

func TestReadOnly(t *testing.T) {
	doc := NewReadOnly("reference.md", "# Reference\n")
	doc.SetText("changed")
	if doc.Text != "# Reference\n" {
		t.Error("read-only text must not change")
	}
	if err := doc.Save(); err != ErrReadOnly {
		t.Errorf("Save = %v, want ErrReadOnly", err)
	}
}

func TestFrontmatterMeta(t *testing.T) {
	doc := New()
	doc.SetText("---\ntitle: My Post\ntags: [a, b]\ndraft: true\n---\n\nbody\n")

	if doc.Meta.Title != "My Post" {
		t.Errorf("Title = %q", doc.Meta.Title)
	}
	if len(doc.Meta.Tags) != 2 {
		t.Errorf("Tags = %v", doc.Meta.Tags)
	}
	if !doc.Meta.Draft {
		t.Error("Draft should be true")
	}

	doc.SetText("no frontmatter anymore\n")
	if doc.Meta.Title != "" {
		t.Error("meta should reset when frontmatter is removed")
	}
}

func TestIsMarkdown(t *testing.T) {
	doc := New()
	if !doc.IsMarkdown() {
		t.Error("unsaved buffer defaults to markdown")
	}

	dir := t.TempDir()
	txt := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(txt, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	opened, err := Open(txt)
	if err != nil {
		t.Fatal(err)
	}
	if opened.IsMarkdown() {
		t.Error(".txt should not count as markdown")
	}
}

func TestStats(t *testing.T) {
	doc := New()
	doc.SetText("one two\nthree\n")
	stats := doc.Stats()
	if stats.Lines != 2 || stats.Words != 3 {
		t.Errorf("Stats = %+v", stats)
	}
}

func TestNextUntitledName(t *testing.T) {
	if got := NextUntitledName(nil); got != "untitled.md" {
		t.Errorf("got %q", got)
	}
	if got := NextUntitledName([]string{"untitled.md"}); got != "untitled2.md" {
		t.Errorf("got %q", got)
	}
	if got := NextUntitledName([]string{"untitled.md", "untitled2.md"}); got != "untitled3.md" {
		t.Errorf("got %q", got)
	}
}
