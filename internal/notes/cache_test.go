package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studylife/internal/api"
	"studylife/internal/models"
	"studylife/internal/session"
)

func sampleNotes() []models.Note {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []models.Note{
		{ID: 1, Title: "Polity revision", Description: "Articles 1-50", CreatedAt: base},
		{ID: 2, Title: "Maths formulas", Description: "mensuration", IsStarred: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, Title: "aptitude tricks", Description: "percentages and Ratios", CreatedAt: base.Add(time.Hour)},
		{ID: 4, Title: "Science notes", Description: "", IsStarred: true, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func cacheWith(t *testing.T, notes []models.Note) *Cache {
	t.Helper()
	c := NewCache(nil)
	c.notes = notes
	return c
}

func titles(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestQuery_Search(t *testing.T) {
	c := cacheWith(t, sampleNotes())

	t.Run("matches title or description case-insensitively", func(t *testing.T) {
		got := c.Query("RATIO", SortNewest)
		require.Len(t, got, 1)
		assert.Equal(t, "aptitude tricks", got[0].Title)
	})

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.Len(t, c.Query("", SortNewest), 4)
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		assert.Empty(t, c.Query("zzz", SortNewest))
	})
}

func TestQuery_Modes(t *testing.T) {
	c := cacheWith(t, sampleNotes())

	t.Run("newest and oldest are reverses of each other", func(t *testing.T) {
		newest := c.Query("", SortNewest)
		oldest := c.Query("", SortOldest)
		require.Len(t, newest, 4)
		for i := range newest {
			assert.Equal(t, newest[i].ID, oldest[len(oldest)-1-i].ID)
		}
		assert.Equal(t, []string{"Science notes", "Maths formulas", "aptitude tricks", "Polity revision"}, titles(newest))
	})

	t.Run("starred filters without reordering", func(t *testing.T) {
		got := c.Query("", SortStarred)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"Maths formulas", "Science notes"}, titles(got))
		for _, n := range got {
			assert.True(t, n.IsStarred)
		}
	})

	t.Run("az orders titles case-insensitively", func(t *testing.T) {
		got := c.Query("", SortAZ)
		assert.Equal(t, []string{"aptitude tricks", "Maths formulas", "Polity revision", "Science notes"}, titles(got))
	})

	t.Run("search narrows before the mode applies", func(t *testing.T) {
		got := c.Query("notes", SortStarred)
		require.Len(t, got, 1)
		assert.Equal(t, "Science notes", got[0].Title)
	})
}

func TestQuery_DoesNotMutateCache(t *testing.T) {
	c := cacheWith(t, sampleNotes())
	_ = c.Query("", SortAZ)
	assert.Equal(t, []string{"Polity revision", "Maths formulas", "aptitude tricks", "Science notes"}, titles(c.Notes()))
}

func TestRefresh(t *testing.T) {
	serve := sampleNotes()
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
			return
		}
		json.NewEncoder(w).Encode(serve)
	}))
	defer srv.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.SetToken("tok"))
	c := NewCache(api.New(srv.URL, store, zap.NewNop()))

	t.Run("success replaces the cache", func(t *testing.T) {
		require.NoError(t, c.Refresh(context.Background()))
		assert.Equal(t, 4, c.Len())
	})

	t.Run("failure leaves the previous cache untouched", func(t *testing.T) {
		fail = true
		err := c.Refresh(context.Background())
		require.Error(t, err)
		assert.True(t, api.IsRejected(err))
		assert.Equal(t, 4, c.Len())
	})

	t.Run("no session fails without clearing", func(t *testing.T) {
		require.NoError(t, store.Clear())
		err := c.Refresh(context.Background())
		require.Error(t, err)
		assert.True(t, api.IsNoSession(err))
		assert.Equal(t, 4, c.Len())
	})
}
