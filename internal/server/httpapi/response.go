package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/politask/politask/internal/common"
)

// authResponse is the session envelope returned by register and login.
// It never includes the password hash.
type authResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError maps service-level errors to HTTP responses.
// Validation errors carry their per-field messages; everything
// unexpected becomes a generic 500 with the detail logged server-side
// only.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var v *common.ValidationError
	switch {
	case errors.As(err, &v):
		writeJSON(w, http.StatusBadRequest, v.Fields)
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, common.ErrorConflict):
		writeMessage(w, http.StatusConflict, "Already exists")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error(), "path", r.URL.Path)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requirePrincipal returns the authenticated principal or writes a 401.
// The gate never rejects requests itself; this is where protected
// handlers enforce access.
func (s *HTTPServer) requirePrincipal(w http.ResponseWriter, r *http.Request) (*Principal, bool) {
	p, ok := PrincipalFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return p, true
}
