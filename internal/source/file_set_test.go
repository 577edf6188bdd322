package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("untitled.md", []byte("# Hi\r\ntext"))

	file := fs.Get(id)
	if file == nil {
		t.Fatal("expected file for id")
	}
	if string(file.Content) != "# Hi\ntext" {
		t.Errorf("content = %q, want normalized CRLF", file.Content)
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestFileSetLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("# Note\n\nbody\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	file := fs.Get(id)
	if file.NumLines() != 3 {
		t.Errorf("NumLines = %d, want 3", file.NumLines())
	}
	if got := file.Line(1); got != "# Note" {
		t.Errorf("Line(1) = %q, want %q", got, "# Note")
	}
	if got := file.Line(3); got != "body" {
		t.Errorf("Line(3) = %q, want %q", got, "body")
	}

	byPath, ok := fs.ByPath(path)
	if !ok || byPath.ID != id {
		t.Error("ByPath did not find the loaded file")
	}
}

func TestFileSetLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSetAddKeepsLatestInIndex(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("a.md", []byte("one"))
	second := fs.AddVirtual("a.md", []byte("two"))
	if first == second {
		t.Fatal("expected distinct ids for re-added path")
	}
	file, ok := fs.ByPath("a.md")
	if !ok || file.ID != second {
		t.Error("index should point at the latest version")
	}
}

func TestLineSpanAndSlice(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.md", []byte("ab\ncde\n"))
	file := fs.Get(id)

	sp := file.LineSpan(2)
	if string(file.Slice(sp)) != "cde" {
		t.Errorf("Slice(LineSpan(2)) = %q, want %q", file.Slice(sp), "cde")
	}

	pos := fs.Position(id, sp.Start)
	if pos.Line != 2 || pos.Col != 1 {
		t.Errorf("Position = %d:%d, want 2:1", pos.Line, pos.Col)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 9}
	b := Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Error("Cover across files should be a no-op")
	}
}
