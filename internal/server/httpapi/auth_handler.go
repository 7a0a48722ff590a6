package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/politask/politask/internal/common"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.services.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			writeJSON(w, http.StatusConflict, map[string]string{"email": "Email is already registered"})
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", result.Email)

	writeJSON(w, http.StatusCreated, authResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
	})
}

func (s *HTTPServer) handleAuthTest(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Auth endpoint is working!")
}
