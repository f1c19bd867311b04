package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
)

type key int

const userIDKey key = 0

// RequireUser guards a subrouter: it extracts the bearer token from the
// Authorization header (the raw token is also accepted, matching the
// deployed backend), validates it, resolves the user and stores the id
// in the request context. Failures answer 401 with a detail body.
func RequireUser(jwtService *JWTService, db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Fields(header)
			tokenStr := parts[len(parts)-1]

			email, err := jwtService.ValidateToken(tokenStr)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			var userID int
			err = db.QueryRow("SELECT id FROM users WHERE email = ?", email).Scan(&userID)
			if err != nil {
				unauthorized(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id, or 0 outside a
// guarded route.
func UserIDFromContext(ctx context.Context) int {
	userID, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return 0
	}
	return userID
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
