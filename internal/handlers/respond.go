// Package handlers implements the dev server's HTTP API: the same
// contract the deployed study-platform backend exposes, backed by a
// local database.
package handlers

import (
	"encoding/json"
	"net/http"
)

func respond(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// fail answers with the backend's {detail} error shape.
func fail(w http.ResponseWriter, detail string, status int) {
	respond(w, map[string]string{"detail": detail}, status)
}

func message(w http.ResponseWriter, msg string) {
	respond(w, map[string]string{"message": msg}, http.StatusOK)
}
