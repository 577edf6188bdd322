package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of Markdown files and resolves spans back to
// human-readable positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores normalized content, computes LineIdx and Hash, and returns a new
// FileID. It always creates a new FileID even if the path was added before;
// the index tracks the latest version.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual stores in-memory content (unsaved buffer, test input) under the
// given display name.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id, or nil if the id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// ByPath returns the latest version of the file registered under path.
func (fileSet *FileSet) ByPath(path string) (*File, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return fileSet.Get(id), true
}

func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Position resolves a byte offset inside a file to a 1-based line/column.
func (fileSet *FileSet) Position(id FileID, off uint32) LineCol {
	file := fileSet.Get(id)
	if file == nil {
		return LineCol{Line: 1, Col: 1}
	}
	return toLineCol(file.LineIdx, off)
}

// SpanStart resolves the start of a span to path + line/column.
func (fileSet *FileSet) SpanStart(sp Span) (string, LineCol) {
	file := fileSet.Get(sp.File)
	if file == nil {
		return "", LineCol{Line: 1, Col: 1}
	}
	return file.Path, toLineCol(file.LineIdx, sp.Start)
}

// PositionAt resolves a byte offset to a 1-based line/column.
func (f *File) PositionAt(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// NumLines reports how many lines the file has. An empty file has one line.
func (f *File) NumLines() int {
	n := len(f.LineIdx) + 1
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] == '\n' {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

// LineSpan returns the span of a 1-based line, excluding the trailing \n.
func (f *File) LineSpan(line int) Span {
	if line < 1 {
		line = 1
	}
	var start uint32
	if line > 1 {
		if line-2 >= len(f.LineIdx) {
			end, _ := safecast.Conv[uint32](len(f.Content))
			return Span{File: f.ID, Start: end, End: end}
		}
		start = f.LineIdx[line-2] + 1
	}
	end, _ := safecast.Conv[uint32](len(f.Content))
	if line-1 < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	return Span{File: f.ID, Start: start, End: end}
}

// Line returns the text of a 1-based line without the trailing \n.
func (f *File) Line(line int) string {
	sp := f.LineSpan(line)
	return string(f.Content[sp.Start:sp.End])
}

// Lines splits the content into lines without trailing newlines.
func (f *File) Lines() []string {
	raw := bytes.Split(f.Content, []byte{'\n'})
	out := make([]string, len(raw))
	for i, b := range raw {
		out[i] = string(b)
	}
	return out
}

// Slice returns the bytes covered by sp.
func (f *File) Slice(sp Span) []byte {
	if sp.File != f.ID || int(sp.End) > len(f.Content) || sp.Start > sp.End {
		return nil
	}
	return f.Content[sp.Start:sp.End]
}
