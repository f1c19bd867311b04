package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"studylife/internal/auth"
)

// NewRouter wires the full backend contract. Quiz listing and fetching
// are public; everything else under /api requires a bearer token.
func NewRouter(db *sql.DB, jwtService *auth.JWTService) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond(w, map[string]string{"status": "healthy"}, http.StatusOK)
	}).Methods("GET")

	// Public
	r.HandleFunc("/api/auth/signup", SignupHandler(db)).Methods("POST")
	r.HandleFunc("/api/auth/login", LoginHandler(db, jwtService)).Methods("POST")
	r.HandleFunc("/api/quiz/all", ListQuizzesHandler(db)).Methods("GET")
	r.HandleFunc("/api/quiz/{id:[0-9]+}", GetQuizHandler(db)).Methods("GET")

	// Authenticated
	s := r.PathPrefix("/").Subrouter()
	s.Use(auth.RequireUser(jwtService, db))

	s.HandleFunc("/api/auth/me", MeHandler(db)).Methods("GET")
	s.HandleFunc("/api/auth/update-profile", UpdateProfileHandler(db)).Methods("PUT")
	s.HandleFunc("/api/auth/change-password", ChangePasswordHandler(db)).Methods("POST")
	s.HandleFunc("/api/auth/delete-account", DeleteAccountHandler(db)).Methods("DELETE")

	s.HandleFunc("/api/quiz/submit/{id:[0-9]+}", SubmitQuizHandler(db)).Methods("POST")

	s.HandleFunc("/api/notes/", ListNotesHandler(db)).Methods("GET")
	s.HandleFunc("/api/notes/", CreateNoteHandler(db)).Methods("POST")
	s.HandleFunc("/api/notes/{id:[0-9]+}", UpdateNoteHandler(db)).Methods("PUT")
	s.HandleFunc("/api/notes/{id:[0-9]+}/star", ToggleStarHandler(db)).Methods("PATCH")
	s.HandleFunc("/api/notes/{id:[0-9]+}", DeleteNoteHandler(db)).Methods("DELETE")

	s.HandleFunc("/api/progress/", ListProgressHandler(db)).Methods("GET")
	s.HandleFunc("/api/progress/stats", StatsHandler(db)).Methods("GET")

	return r
}
