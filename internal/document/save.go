package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrReadOnly is returned when saving a read-only buffer.
var ErrReadOnly = errors.New("document is read-only")

// ErrNoPath is returned when saving a buffer that never got a path.
var ErrNoPath = errors.New("document has no path")

// Save writes the buffer back to its path and clears the modified flag.
func (d *Document) Save() error {
	if d.ReadOnly {
		return ErrReadOnly
	}
	if d.Path == "" {
		return ErrNoPath
	}
	if err := writeLocked(d.Path, []byte(d.Text)); err != nil {
		return err
	}
	d.Modified = false
	return nil
}

// SaveAs assigns a path and saves. Used for the first save of an untitled
// buffer.
func (d *Document) SaveAs(path string) error {
	if d.ReadOnly {
		return ErrReadOnly
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	d.Path = abs
	return d.Save()
}

// writeLocked writes data under an advisory lock so two instances editing
// the same file cannot interleave partial writes. The write itself goes
// through a temp file + rename.
func writeLocked(path string, data []byte) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%s is being saved by another process", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(path + ".lock")
	}()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
