package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/storefront-labs/storeboard/pkg/debug"
)

// FileStore persists keys to one JSON document per terminal session under
// the XDG state directory:
//
//	~/.local/state/sb/sessions/<session-id>.json
//
// The session id comes from SB_SESSION_ID when set (useful for tests and
// multiplexers) and otherwise from the parent process id, which is stable
// across repeated sb invocations from the same shell. Files from dead
// sessions are pruned on open, so "session-scoped" degrades to "recent"
// rather than accumulating forever.
type FileStore struct {
	path   string
	values map[string]string
}

// maxSessionAge is how long an untouched session file survives before
// pruning removes it.
const maxSessionAge = 24 * time.Hour

// SessionID returns the id for the current terminal session.
func SessionID() string {
	if id := strings.TrimSpace(os.Getenv("SB_SESSION_ID")); id != "" {
		return sanitizeID(id)
	}
	return fmt.Sprintf("ppid-%d", os.Getppid())
}

func sanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, id)
}

// StateDir returns the XDG state directory for sb.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "sb")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "sb")
}

// OpenFileStore opens (or creates) the store for the current session in
// dir. An empty dir means StateDir(). A corrupt or missing session file
// starts the store empty; callers fall back to defaults per key.
func OpenFileStore(dir string) *FileStore {
	if dir == "" {
		dir = StateDir()
	}
	sessionsDir := filepath.Join(dir, "sessions")
	pruneStale(sessionsDir)

	s := &FileStore{
		path:   filepath.Join(sessionsDir, SessionID()+".json"),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s // first use this session
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		debug.Log("session: discarding unreadable state file %s: %v", s.path, err)
		s.values = make(map[string]string)
	}
	return s
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value and flushes the session file. Write failures (full
// disk, unwritable state dir) are swallowed: the in-memory value is kept
// and the next Set retries the flush.
func (s *FileStore) Set(key, value string) {
	s.values[key] = value
	s.flush()
}

// Path returns the session file location, mostly for tests.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) flush() {
	data, err := json.Marshal(s.values)
	if err != nil {
		debug.Log("session: marshal failed: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		debug.Log("session: cannot create %s: %v", filepath.Dir(s.path), err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		debug.Log("session: write failed: %v", err)
	}
}

// pruneStale removes session files older than maxSessionAge.
func pruneStale(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxSessionAge)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
