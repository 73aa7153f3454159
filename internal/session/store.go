// Package session persists the student's login session between edudesk
// runs. Layout: ~/.config/edudesk/session.json.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"edudesk/internal/jsonutil"
)

const (
	// ConfigDirEnv is the env var override for the config dir (for testing).
	ConfigDirEnv = "EDUDESK_CONFIG_DIR"
	// DefaultConfigBase is the default config dir under the user's home.
	DefaultConfigBase = ".config/edudesk"

	sessionFile = "session.json"
)

// ErrNoSession is returned by Load when no session has been saved.
var ErrNoSession = errors.New("session: not signed in")

// Session is the persisted login state.
type Session struct {
	AccessToken string `json:"access_token"`
	StudentID   string `json:"student_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

// Store reads and writes the session file.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the user's home + DefaultConfigBase,
// or at the path in EDUDESK_CONFIG_DIR if set.
func NewStore() (*Store, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, DefaultConfigBase)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the config directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the session to disk, creating the config dir if needed.
// The file is user-only: it holds a bearer token.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, sessionFile), data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load reads the saved session. Returns ErrNoSession when the file does
// not exist.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	var sess Session
	if err := jsonutil.UnmarshalWithContext(data, &sess, "parse session file"); err != nil {
		return Session{}, err
	}
	if sess.AccessToken == "" {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Clear removes the saved session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
