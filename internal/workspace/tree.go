package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry is one node of the explorer tree.
type Entry struct {
	Name     string
	Path     string // absolute
	Dir      bool
	Children []*Entry
}

// maxScanDepth keeps pathological trees from stalling startup.
const maxScanDepth = 16

var treeCollator = collate.New(language.Und, collate.IgnoreCase)

// ScanTree builds the explorer tree under root. Dotfiles and dot-directories
// are skipped, directories sort before files, names sort case-insensitively.
// Unreadable directories are silently pruned, matching how the explorer
// behaves when permissions change underneath it.
func ScanTree(root string) (*Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	entry := &Entry{Name: filepath.Base(abs), Path: abs, Dir: true}
	scanInto(entry, 0)
	return entry, nil
}

func scanInto(parent *Entry, depth int) {
	if depth >= maxScanDepth {
		return
	}
	items, err := os.ReadDir(parent.Path)
	if err != nil {
		return
	}

	for _, item := range items {
		if strings.HasPrefix(item.Name(), ".") {
			continue
		}
		child := &Entry{
			Name: item.Name(),
			Path: filepath.Join(parent.Path, item.Name()),
			Dir:  item.IsDir(),
		}
		if child.Dir {
			scanInto(child, depth+1)
		}
		parent.Children = append(parent.Children, child)
	}

	sort.SliceStable(parent.Children, func(i, j int) bool {
		a, b := parent.Children[i], parent.Children[j]
		if a.Dir != b.Dir {
			return a.Dir
		}
		return treeCollator.CompareString(a.Name, b.Name) < 0
	})
}

// Find locates the entry for an absolute path, or nil.
func (e *Entry) Find(path string) *Entry {
	if e.Path == path {
		return e
	}
	if !e.Dir || !strings.HasPrefix(path, e.Path+string(filepath.Separator)) {
		return nil
	}
	for _, child := range e.Children {
		if found := child.Find(path); found != nil {
			return found
		}
	}
	return nil
}

// IsMarkdown reports whether the entry gets the markdown styling in the
// explorer.
func (e *Entry) IsMarkdown() bool {
	return !e.Dir && strings.EqualFold(filepath.Ext(e.Name), ".md")
}
