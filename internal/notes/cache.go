// Package notes holds the last-fetched note list in memory and derives
// filtered and sorted views from it without extra network round trips.
// The cache is never the source of truth: mutations go through the API
// client and callers re-Refresh afterwards.
package notes

import (
	"context"
	"sort"
	"strings"
	"sync"

	"studylife/internal/api"
	"studylife/internal/models"
)

// SortMode selects the mode-specific step applied after search
// narrowing.
type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortOldest  SortMode = "oldest"
	SortStarred SortMode = "starred"
	SortAZ      SortMode = "az"
)

// Cache is view-scoped: create one per notes view and Refresh it after
// every successful mutation.
type Cache struct {
	client *api.Client

	mu    sync.Mutex
	notes []models.Note
}

func NewCache(client *api.Client) *Cache {
	return &Cache{client: client}
}

// Refresh replaces the cached list with the server's. On failure the
// previous cache is left untouched. The mutex doubles as an in-flight
// guard: overlapping refreshes serialize instead of racing.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fetched, err := c.client.Notes(ctx)
	if err != nil {
		return err
	}
	c.notes = fetched
	return nil
}

// Notes returns a copy of the cached list in fetch order.
func (c *Cache) Notes() []models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Len reports the cached note count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notes)
}

// Query narrows by a case-insensitive substring match on title or
// description, then applies the mode: newest/oldest order by creation
// time, starred keeps only starred notes in their original order, az
// orders by title. An empty search term matches everything.
func (c *Cache) Query(term string, mode SortMode) []models.Note {
	term = strings.ToLower(term)

	filtered := make([]models.Note, 0)
	for _, n := range c.Notes() {
		if term == "" ||
			strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Description), term) {
			filtered = append(filtered, n)
		}
	}

	switch mode {
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortStarred:
		starred := filtered[:0]
		for _, n := range filtered {
			if n.IsStarred {
				starred = append(starred, n)
			}
		}
		filtered = starred
	case SortAZ:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})
	}
	return filtered
}
