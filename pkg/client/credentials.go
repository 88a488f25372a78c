package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Session is the authenticated identity state. It is all-or-nothing: a
// token is never stored without its username.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// CredentialStore owns the current Session. State lives in memory and,
// when a path is configured, in a JSON file so the session survives
// process restarts. Absence of the file means logged out.
type CredentialStore struct {
	mu      sync.Mutex
	path    string
	session *Session
}

const (
	configDirName   = "textgate"
	sessionFileName = "session.json"
)

// NewCredentialStore creates a store persisted at path. An empty path
// keeps the session in memory only. An existing session file is loaded;
// a file that does not hold a complete session is treated as absent.
func NewCredentialStore(path string) *CredentialStore {
	s := &CredentialStore{path: path}
	s.load()
	return s
}

// DefaultCredentialStore persists the session under the user config dir.
func DefaultCredentialStore() (*CredentialStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewCredentialStore(filepath.Join(dir, configDirName, sessionFileName)), nil
}

func (s *CredentialStore) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return
	}
	if session.Token == "" || session.Username == "" {
		return
	}
	s.session = &session
}

// SetSession stores a new Session, replacing any prior one.
func (s *CredentialStore) SetSession(username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &Session{Token: token, Username: username}
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(s.session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Token returns the current session token, empty when logged out.
func (s *CredentialStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Username returns the current session username, empty when logged out.
func (s *CredentialStore) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Username
}

// ClearSession removes the Session unconditionally. Idempotent.
func (s *CredentialStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// IsAuthenticated reports whether a Session is present.
func (s *CredentialStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}
