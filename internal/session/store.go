// Package session owns the bearer token the client presents to the
// backend. The token is opaque: no structure or expiry is inspected
// locally, the backend rejecting a request is the only expiry signal.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists at most one token in a single file, the CLI analog of
// an origin-scoped browser storage key.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the persisted token. The second return is false when no
// token is held, which means the user is anonymous.
func (s *Store) Token() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(data))
	if tok == "" {
		return "", false
	}
	return tok, true
}

// SetToken persists the token, overwriting any prior value.
func (s *Store) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent token is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}

// LoggedIn reports whether a non-empty token is held.
func (s *Store) LoggedIn() bool {
	_, ok := s.Token()
	return ok
}
