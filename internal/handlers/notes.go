package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"studylife/internal/auth"
	"studylife/internal/models"
)

type noteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func scanNote(row interface{ Scan(...any) error }) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Description, &n.Color, &n.IsStarred, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func fetchNote(db *sql.DB, id, userID int) (models.Note, error) {
	row := db.QueryRow(`
		SELECT id, user_id, title, description, color, is_starred, created_at, updated_at
		FROM notes WHERE id = ? AND user_id = ?`, id, userID)
	return scanNote(row)
}

func noteID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func ListNotesHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		rows, err := db.Query(`
			SELECT id, user_id, title, description, color, is_starred, created_at, updated_at
			FROM notes WHERE user_id = ? ORDER BY id`, userID)
		if err != nil {
			fail(w, "Failed to fetch notes", http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		notes := []models.Note{}
		for rows.Next() {
			n, err := scanNote(rows)
			if err != nil {
				fail(w, "Failed to fetch notes", http.StatusInternalServerError)
				return
			}
			notes = append(notes, n)
		}

		respond(w, notes, http.StatusOK)
	}
}

func CreateNoteHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			fail(w, "Title is required", http.StatusBadRequest)
			return
		}
		if req.Color == "" {
			req.Color = models.DefaultNoteColor
		}

		userID := auth.UserIDFromContext(r.Context())
		now := time.Now().UTC()
		res, err := db.Exec(`
			INSERT INTO notes (user_id, title, description, color, is_starred, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			userID, req.Title, req.Description, req.Color, false, now, now)
		if err != nil {
			fail(w, "Failed to create note", http.StatusInternalServerError)
			return
		}
		id, _ := res.LastInsertId()

		note, err := fetchNote(db, int(id), userID)
		if err != nil {
			fail(w, "Failed to create note", http.StatusInternalServerError)
			return
		}
		respond(w, note, http.StatusOK)
	}
}

func UpdateNoteHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := noteID(r)
		if !ok {
			fail(w, "Invalid note id", http.StatusBadRequest)
			return
		}
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID := auth.UserIDFromContext(r.Context())
		if _, err := fetchNote(db, id, userID); err != nil {
			fail(w, "Note not found", http.StatusNotFound)
			return
		}

		if _, err := db.Exec(`
			UPDATE notes SET title = ?, description = ?, color = ?, updated_at = ?
			WHERE id = ? AND user_id = ?`,
			req.Title, req.Description, req.Color, time.Now().UTC(), id, userID); err != nil {
			fail(w, "Failed to update note", http.StatusInternalServerError)
			return
		}

		note, err := fetchNote(db, id, userID)
		if err != nil {
			fail(w, "Note not found", http.StatusNotFound)
			return
		}
		respond(w, note, http.StatusOK)
	}
}

// ToggleStarHandler flips is_starred and returns the updated note.
func ToggleStarHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := noteID(r)
		if !ok {
			fail(w, "Invalid note id", http.StatusBadRequest)
			return
		}

		userID := auth.UserIDFromContext(r.Context())
		note, err := fetchNote(db, id, userID)
		if err != nil {
			fail(w, "Note not found", http.StatusNotFound)
			return
		}

		if _, err := db.Exec(`
			UPDATE notes SET is_starred = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
			!note.IsStarred, time.Now().UTC(), id, userID); err != nil {
			fail(w, "Failed to update note", http.StatusInternalServerError)
			return
		}

		note, err = fetchNote(db, id, userID)
		if err != nil {
			fail(w, "Note not found", http.StatusNotFound)
			return
		}
		respond(w, note, http.StatusOK)
	}
}

func DeleteNoteHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := noteID(r)
		if !ok {
			fail(w, "Invalid note id", http.StatusBadRequest)
			return
		}

		userID := auth.UserIDFromContext(r.Context())
		if _, err := fetchNote(db, id, userID); err != nil {
			fail(w, "Note not found", http.StatusNotFound)
			return
		}

		if _, err := db.Exec("DELETE FROM notes WHERE id = ? AND user_id = ?", id, userID); err != nil {
			fail(w, "Failed to delete note", http.StatusInternalServerError)
			return
		}
		message(w, "Note deleted successfully")
	}
}
