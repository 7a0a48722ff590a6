package httpapi

import (
	"encoding/json"
	"net/http"
)

type commentRequest struct {
	TaskID  int64  `json:"taskId"`
	Content string `json:"content"`
}

func (s *HTTPServer) handleCommentsByTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requirePrincipal(w, r); !ok {
		return
	}

	taskID, ok := pathID(r, "taskId")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	list, err := s.services.Comments.GetByTaskID(r.Context(), taskID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handleCreateComment attributes the comment to the caller, not to any
// author field the client may have sent.
func (s *HTTPServer) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.requirePrincipal(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := s.services.Comments.Create(r.Context(), principal.UserID, req.TaskID, req.Content)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
