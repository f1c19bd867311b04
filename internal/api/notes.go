package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"studylife/internal/models"
)

// Notes lists the user's notes. Callers on read paths typically degrade
// to an empty list on failure rather than surfacing the error.
func (c *Client) Notes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := c.get(ctx, "/api/notes/", true, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote requires a non-blank title; a blank one is blocked before
// any network call. An empty color gets the default.
func (c *Client) CreateNote(ctx context.Context, title, description, color string) (models.Note, error) {
	var note models.Note
	if strings.TrimSpace(title) == "" {
		return note, rejectedErr(0, "note title is required")
	}
	if color == "" {
		color = models.DefaultNoteColor
	}
	payload := notePayload{Title: title, Description: description, Color: color}
	err := c.do(ctx, http.MethodPost, "/api/notes/", true, payload, &note)
	return note, err
}

// UpdateNote replaces the three editable fields wholesale.
func (c *Client) UpdateNote(ctx context.Context, id int, title, description, color string) (models.Note, error) {
	var note models.Note
	payload := notePayload{Title: title, Description: description, Color: color}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notes/%d", id), true, payload, &note)
	return note, err
}

// ToggleStar flips the starred flag server-side and returns the updated
// note.
func (c *Client) ToggleStar(ctx context.Context, id int) (models.Note, error) {
	var note models.Note
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/notes/%d/star", id), true, nil, &note)
	return note, err
}

func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), true, nil, nil)
}

type notePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
