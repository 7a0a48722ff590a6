package httpapi

import (
	"encoding/json"
	"net/http"
)

type memberRequest struct {
	ProjectID int64  `json:"projectId"`
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
}

func (s *HTTPServer) handleMembersByProject(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requirePrincipal(w, r); !ok {
		return
	}

	projectID, ok := pathID(r, "projectId")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	list, err := s.services.Members.GetByProjectID(r.Context(), projectID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleAddMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requirePrincipal(w, r); !ok {
		return
	}

	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := s.services.Members.Add(r.Context(), req.ProjectID, req.UserID, req.Role)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (s *HTTPServer) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requirePrincipal(w, r); !ok {
		return
	}

	projectID, okP := pathID(r, "projectId")
	userID, okU := pathID(r, "userId")
	if !okP || !okU {
		writeMessage(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	if err := s.services.Members.Remove(r.Context(), projectID, userID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
