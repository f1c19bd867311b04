package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "token"))
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Token()
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())

	require.NoError(t, s.SetToken("abc.def.ghi"))
	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "abc.def.ghi", tok)
	assert.True(t, s.LoggedIn())
}

func TestStore_Overwrite(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetToken("first"))
	require.NoError(t, s.SetToken("second"))

	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "second", tok)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.Clear())

	_, ok := s.Token()
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())

	// Idempotent: clearing again is fine.
	require.NoError(t, s.Clear())
}

func TestStore_WhitespaceTokenIsAbsent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetToken("  \n"))
	_, ok := s.Token()
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())
}

func TestStore_CreatesParentDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "token"))
	require.NoError(t, s.SetToken("tok"))
	assert.True(t, s.LoggedIn())
}
