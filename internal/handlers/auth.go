package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"studylife/internal/auth"
	"studylife/internal/models"
)

// SignupHandler registers a new account. It does not log the user in.
func SignupHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			FullName string `json:"full_name"`
			Course   string `json:"course"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Password == "" {
			fail(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		var exists int
		if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", req.Email).Scan(&exists); err == nil && exists > 0 {
			fail(w, "Email already registered", http.StatusBadRequest)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			fail(w, "Error creating user", http.StatusInternalServerError)
			return
		}

		now := time.Now().UTC()
		res, err := db.Exec(
			"INSERT INTO users (email, password, full_name, course, created_at) VALUES (?, ?, ?, ?, ?)",
			req.Email, string(hashed), req.FullName, req.Course, now)
		if err != nil {
			fail(w, "Email already registered", http.StatusBadRequest)
			return
		}
		id, _ := res.LastInsertId()

		respond(w, models.User{
			ID:        int(id),
			Email:     req.Email,
			FullName:  req.FullName,
			Course:    req.Course,
			CreatedAt: now,
		}, http.StatusOK)
	}
}

// LoginHandler checks form-encoded credentials and issues a bearer
// token.
func LoginHandler(db *sql.DB, jwtService *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			fail(w, "Invalid form body", http.StatusBadRequest)
			return
		}
		email := r.PostFormValue("username")
		password := r.PostFormValue("password")

		var id int
		var hashed string
		err := db.QueryRow("SELECT id, password FROM users WHERE email = ?", email).Scan(&id, &hashed)
		if err != nil {
			fail(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
			fail(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := jwtService.GenerateToken(email)
		if err != nil {
			fail(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		respond(w, models.TokenResponse{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
	}
}

func currentUser(db *sql.DB, r *http.Request) (models.User, error) {
	var u models.User
	err := db.QueryRow(
		"SELECT id, email, full_name, course, created_at FROM users WHERE id = ?",
		auth.UserIDFromContext(r.Context())).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Course, &u.CreatedAt)
	return u, err
}

func MeHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(db, r)
		if err != nil {
			fail(w, "User not found", http.StatusUnauthorized)
			return
		}
		respond(w, user, http.StatusOK)
	}
}

func UpdateProfileHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FullName string `json:"full_name"`
			Course   string `json:"course"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID := auth.UserIDFromContext(r.Context())
		// Empty fields are left as they are, matching the backend.
		if req.FullName != "" {
			if _, err := db.Exec("UPDATE users SET full_name = ? WHERE id = ?", req.FullName, userID); err != nil {
				fail(w, "Failed to update profile", http.StatusInternalServerError)
				return
			}
		}
		if req.Course != "" {
			if _, err := db.Exec("UPDATE users SET course = ? WHERE id = ?", req.Course, userID); err != nil {
				fail(w, "Failed to update profile", http.StatusInternalServerError)
				return
			}
		}

		user, err := currentUser(db, r)
		if err != nil {
			fail(w, "User not found", http.StatusNotFound)
			return
		}
		respond(w, user, http.StatusOK)
	}
}

func ChangePasswordHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID := auth.UserIDFromContext(r.Context())
		var hashed string
		if err := db.QueryRow("SELECT password FROM users WHERE id = ?", userID).Scan(&hashed); err != nil {
			fail(w, "User not found", http.StatusNotFound)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(req.CurrentPassword)); err != nil {
			fail(w, "Current password is incorrect", http.StatusUnauthorized)
			return
		}

		newHashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			fail(w, "Failed to change password", http.StatusInternalServerError)
			return
		}
		if _, err := db.Exec("UPDATE users SET password = ? WHERE id = ?", string(newHashed), userID); err != nil {
			fail(w, "Failed to change password", http.StatusInternalServerError)
			return
		}

		message(w, "Password changed successfully")
	}
}

// DeleteAccountHandler removes the user and everything they own.
func DeleteAccountHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		if _, err := db.Exec("DELETE FROM notes WHERE user_id = ?", userID); err != nil {
			fail(w, "Failed to delete account", http.StatusInternalServerError)
			return
		}
		if _, err := db.Exec("DELETE FROM progress WHERE user_id = ?", userID); err != nil {
			fail(w, "Failed to delete account", http.StatusInternalServerError)
			return
		}
		if _, err := db.Exec("DELETE FROM users WHERE id = ?", userID); err != nil {
			fail(w, "Failed to delete account", http.StatusInternalServerError)
			return
		}

		message(w, "Account deleted successfully")
	}
}
