package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRootWithManifest(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "docs", "guides")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte("[ui]\ntheme = \"dark\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	resolved, _ := filepath.EvalSymlinks(root)
	expected, _ := filepath.EvalSymlinks(dir)
	if resolved != expected {
		t.Errorf("root = %q, want %q", resolved, expected)
	}
}

func TestFindRootWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	root, err := FindRoot(dir)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if root == "" {
		t.Error("expected fallback to start dir")
	}
}

func TestScanTree(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.md", "alpha.md", "notes.txt", ".hidden.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "inner.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := ScanTree(dir)
	if err != nil {
		t.Fatalf("ScanTree: %v", err)
	}

	names := make([]string, 0, len(tree.Children))
	for _, child := range tree.Children {
		names = append(names, child.Name)
	}

	want := []string{"sub", "alpha.md", "notes.txt", "zeta.md"}
	if len(names) != len(want) {
		t.Fatalf("children = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("children = %v, want %v", names, want)
		}
	}

	inner := tree.Find(filepath.Join(tree.Path, "sub", "inner.md"))
	if inner == nil {
		t.Fatal("Find should locate nested file")
	}
	if !inner.IsMarkdown() {
		t.Error("inner.md should be markdown")
	}
}

func TestScanTreeNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ScanTree(file); err == nil {
		t.Error("expected error for non-directory root")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := OpenSessionStore("shebang-test")
	if err != nil {
		t.Fatalf("OpenSessionStore: %v", err)
	}

	root := t.TempDir()
	sess := &Session{
		Root:        root,
		OpenPaths:   []string{filepath.Join(root, "a.md"), filepath.Join(root, "b.md")},
		ActiveIndex: 1,
		TerminalCwd: root,
	}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := store.Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if len(loaded.OpenPaths) != 2 || loaded.ActiveIndex != 1 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt should be set on save")
	}
}

func TestSessionMissing(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	store, err := OpenSessionStore("shebang-test")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := store.Load("/nowhere"); ok || err != nil {
		t.Errorf("Load missing = ok=%v err=%v", ok, err)
	}
}

func TestSessionSchemaMismatch(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	store, err := OpenSessionStore("shebang-test")
	if err != nil {
		t.Fatal(err)
	}

	root := t.TempDir()
	if err := store.Save(&Session{Root: root}); err != nil {
		t.Fatal(err)
	}
	// corrupt the stored blob; loader must treat it as absent
	if err := os.WriteFile(store.pathFor(root), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Load(root); ok {
		t.Error("corrupt session should be discarded")
	}

	if err := store.Clear(root); err != nil {
		t.Errorf("Clear: %v", err)
	}
}
