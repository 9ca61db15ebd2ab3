package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// Helper functions shared by the post and comment controllers.

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps a service error onto the HTTP error taxonomy:
// validation failures become a 400 with the field->messages mapping as the
// body, missing records become a 404, and anything else is a storage-level
// failure surfaced as a 500.
func sendServiceError(w http.ResponseWriter, err error) {
	var verr models.ValidationError
	if errors.As(err, &verr) {
		sendJSON(w, http.StatusBadRequest, verr)
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, "Not found.", http.StatusNotFound)
		return
	}
	sendError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
}

// parseID converts a path variable into a record ID.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
