package httpapi

import "net/http"

// handleListUsers requires a principal unless the deployment has
// deliberately allow-listed /api/users (the original system exposed it
// unauthenticated for testing; that is opt-in here, never the default).
func (s *HTTPServer) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if !s.isPublicPath(r.URL.Path) {
		if _, ok := s.requirePrincipal(w, r); !ok {
			return
		}
	}

	list, err := s.services.Users.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}
