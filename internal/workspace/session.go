package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Session format changes.
const sessionSchemaVersion uint16 = 1

// Session captures what was open when the editor quit, keyed by workspace
// root.
type Session struct {
	Schema uint16

	Root        string
	OpenPaths   []string
	ActiveIndex int
	TerminalCwd string

	SavedAt time.Time
}

// SessionStore reads and writes sessions in the user cache directory.
type SessionStore struct {
	dir string
}

// OpenSessionStore initializes a store at the standard cache location.
func OpenSessionStore(app string) (*SessionStore, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "sessions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SessionStore{dir: dir}, nil
}

func (s *SessionStore) pathFor(root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:16])+".msgpack")
}

// Save persists the session for its root.
func (s *SessionStore) Save(sess *Session) error {
	if sess == nil || sess.Root == "" {
		return fmt.Errorf("session has no root")
	}
	sess.Schema = sessionSchemaVersion
	sess.SavedAt = time.Now().UTC()

	raw, err := msgpack.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	path := s.pathFor(sess.Root)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp, path)
}

// Load returns the stored session for root. A missing file or a schema
// mismatch reports ok=false without error; stale formats are simply
// discarded.
func (s *SessionStore) Load(root string) (*Session, bool, error) {
	raw, err := os.ReadFile(s.pathFor(root))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sess Session
	if err := msgpack.Unmarshal(raw, &sess); err != nil {
		// corrupt cache entries are not fatal
		return nil, false, nil
	}
	if sess.Schema != sessionSchemaVersion {
		return nil, false, nil
	}
	return &sess, true, nil
}

// Clear removes the stored session for root.
func (s *SessionStore) Clear(root string) error {
	err := os.Remove(s.pathFor(root))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
