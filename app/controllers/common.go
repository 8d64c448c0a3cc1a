package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"empirek/app/notify"
	"empirek/app/repositories"
	"empirek/app/services"
)

// sendJSON writes data as a JSON response
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes an error as a JSON response with the status implied by the
// error type
func sendError(w http.ResponseWriter, err error) {
	sendJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps the service error taxonomy onto HTTP status codes
func statusFor(err error) int {
	var vErr *services.ValidationError
	var dErr *notify.DispatchError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &dErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes a JSON request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &services.ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct == "application/json" || len(ct) > 16 && ct[:16] == "application/json"
}
