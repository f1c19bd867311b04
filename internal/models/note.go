package models

import "time"

// DefaultNoteColor is applied when a note is created without an
// explicit color.
const DefaultNoteColor = "#fff7b1"

type Note struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	IsStarred   bool      `json:"is_starred"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
