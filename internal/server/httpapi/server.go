// Package httpapi serves the HTTP surface: the auth endpoints, the
// protected CRUD routes, and the middleware pipeline (request logging,
// CORS, the authentication gate).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/politask/politask/internal/logging"
	"github.com/politask/politask/internal/server/services"
)

// Services groups the business services the HTTP layer dispatches to.
type Services struct {
	Auth     *services.AuthService
	Users    *services.UserService
	Projects *services.ProjectService
	Tasks    *services.TaskService
	Comments *services.CommentService
	Members  *services.ProjectUserService
}

type HTTPServer struct {
	address     string
	logger      logging.Logger
	services    Services
	jwtSecret   []byte
	publicPaths []string
}

func NewHTTPServer(address string, l logging.Logger, svc Services, secretKey string, publicPaths []string) *HTTPServer {
	return &HTTPServer{
		address:     address,
		logger:      l.With("module", "http_server"),
		services:    svc,
		jwtSecret:   []byte(secretKey),
		publicPaths: publicPaths,
	}
}

// Handler builds the full middleware-wrapped route table.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/test", s.handleAuthTest)

	mux.HandleFunc("GET /api/users", s.handleListUsers)

	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("POST /api/projects", s.handleCreateProject)
	mux.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	mux.HandleFunc("PUT /api/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", s.handleDeleteProject)

	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("GET /api/tasks/project/{projectId}", s.handleTasksByProject)

	mux.HandleFunc("GET /api/comments/task/{taskId}", s.handleCommentsByTask)
	mux.HandleFunc("POST /api/comments", s.handleCreateComment)

	mux.HandleFunc("GET /api/project-users/{projectId}", s.handleMembersByProject)
	mux.HandleFunc("POST /api/project-users", s.handleAddMember)
	mux.HandleFunc("DELETE /api/project-users/{projectId}/{userId}", s.handleRemoveMember)

	return s.requestLogger(s.cors(s.authenticate(mux)))
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
