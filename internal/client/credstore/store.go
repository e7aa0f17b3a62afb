// Package credstore persists the current session identity on disk, the way the
// browser console kept it in localStorage: three entries (authToken, user,
// credentials) that are written together and cleared together.
//
// The token is the reversible Basic-Auth encoding of "username:password",
// not a cryptographic hash. It stays valid until the server rejects it; there
// is no expiry and no refresh.
package credstore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

type fileData struct {
	AuthToken   string              `json:"authToken,omitempty"`
	User        *models.User        `json:"user,omitempty"`
	Credentials *models.Credentials `json:"credentials,omitempty"`
}

// Store is a file-backed credential store. All methods are safe for
// concurrent use, though the console itself drives it from a single goroutine.
type Store struct {
	path string

	mu   sync.Mutex
	data fileData
}

// Open loads the store at path. A missing file yields an empty store; an
// unreadable or corrupt file is an error so callers can surface it instead of
// silently dropping a session.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read credential store: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode credential store: %w", err)
	}
	return s, nil
}

// EncodeToken derives the Basic-Auth token for a credential pair.
func EncodeToken(creds models.Credentials) string {
	return base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
}

// SetToken derives the token from creds and persists both the token and the
// credentials.
func (s *Store) SetToken(creds models.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := creds
	s.data.AuthToken = EncodeToken(creds)
	s.data.Credentials = &c
	return s.save()
}

// Token returns the persisted token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AuthToken
}

// Credentials returns a copy of the persisted credential pair, or nil.
func (s *Store) Credentials() *models.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Credentials == nil {
		return nil
	}
	c := *s.data.Credentials
	return &c
}

// SetUser persists the last-known user record.
func (s *Store) SetUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.User = &u
	return s.save()
}

// User returns a copy of the persisted user record, or nil.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.User == nil {
		return nil
	}
	u := *s.data.User
	return &u
}

// Clear removes the token, user and credentials together.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = fileData{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credential store: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether both a token and a user record are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AuthToken != "" && s.data.User != nil
}

// save is called with s.mu held.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("credential store dir: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credential store: %w", err)
	}
	return nil
}
