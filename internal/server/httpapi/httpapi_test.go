package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/dbx"
	"github.com/politask/politask/internal/logging"
	"github.com/politask/politask/internal/server/config"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/comments"
	"github.com/politask/politask/internal/server/repositories/projects"
	"github.com/politask/politask/internal/server/repositories/projectusers"
	"github.com/politask/politask/internal/server/repositories/tasks"
	"github.com/politask/politask/internal/server/repositories/users"
	"github.com/politask/politask/internal/server/services"
)

const testSecret = "test-secret"

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memUsersRepo is a map-backed credential store, enough to drive the
// register/login flow and the gate's subject lookup end to end.
type memUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{nextID: 1, byID: map[int64]*models.User{}}
}

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorConflict
		}
	}
	stored := *u
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++
	r.byID[stored.ID] = &stored
	return &stored, nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.byID))
	for _, u := range r.byID {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

type stubProjectsRepo struct {
	createOut *models.Project
	createErr error
	byIDOut   *models.Project
	byIDErr   error
	listOut   []*models.Project
	listErr   error
	updateOut *models.Project
	updateErr error
	deleteErr error
}

func (f *stubProjectsRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	created := *p
	created.ID = 1
	return &created, nil
}

func (f *stubProjectsRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *stubProjectsRepo) List(ctx context.Context) ([]*models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *stubProjectsRepo) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *stubProjectsRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type stubTasksRepo struct {
	createOut    *models.Task
	createErr    error
	byIDOut      *models.Task
	byIDErr      error
	listOut      []*models.Task
	listErr      error
	byProjectOut []*models.Task
	byProjectErr error
	updateOut    *models.Task
	updateErr    error
	deleteErr    error
}

func (f *stubTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *stubTasksRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *stubTasksRepo) List(ctx context.Context) ([]*models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *stubTasksRepo) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Task, error) {
	if f.byProjectErr != nil {
		return nil, f.byProjectErr
	}
	return f.byProjectOut, nil
}

func (f *stubTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *stubTasksRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type stubCommentsRepo struct {
	created   []*models.Comment
	createErr error
	byTaskOut []*models.Comment
	byTaskErr error
}

func (f *stubCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, c)
	stored := *c
	stored.ID = int64(len(f.created))
	return &stored, nil
}

func (f *stubCommentsRepo) GetByTaskID(ctx context.Context, taskID int64) ([]*models.Comment, error) {
	if f.byTaskErr != nil {
		return nil, f.byTaskErr
	}
	return f.byTaskOut, nil
}

type stubProjectUsersRepo struct {
	added        []*models.ProjectUser
	addErr       error
	byProjectOut []*models.ProjectUser
	byProjectErr error
	removeErr    error
}

func (f *stubProjectUsersRepo) Add(ctx context.Context, m *models.ProjectUser) (*models.ProjectUser, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, m)
	return m, nil
}

func (f *stubProjectUsersRepo) GetByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectUser, error) {
	if f.byProjectErr != nil {
		return nil, f.byProjectErr
	}
	return f.byProjectOut, nil
}

func (f *stubProjectUsersRepo) Remove(ctx context.Context, projectID, userID int64) error {
	return f.removeErr
}

type stubRepoManager struct {
	users        users.Repository
	projects     projects.Repository
	tasks        tasks.Repository
	comments     comments.Repository
	projectUsers projectusers.Repository
}

func (m *stubRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *stubRepoManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *stubRepoManager) Projects(db dbx.DBTX) projects.Repository            { return m.projects }
func (m *stubRepoManager) Tasks(db dbx.DBTX) tasks.Repository                  { return m.tasks }
func (m *stubRepoManager) Comments(db dbx.DBTX) comments.Repository            { return m.comments }
func (m *stubRepoManager) ProjectUsers(db dbx.DBTX) projectusers.Repository {
	return m.projectUsers
}

// testEnv bundles a fully wired handler with the fakes behind it.
type testEnv struct {
	handler      http.Handler
	users        *memUsersRepo
	projects     *stubProjectsRepo
	tasks        *stubTasksRepo
	comments     *stubCommentsRepo
	projectUsers *stubProjectUsersRepo
	mock         sqlmock.Sqlmock
}

func newTestEnv(t *testing.T, publicPaths ...string) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	env := &testEnv{
		users:        newMemUsersRepo(),
		projects:     &stubProjectsRepo{},
		tasks:        &stubTasksRepo{},
		comments:     &stubCommentsRepo{},
		projectUsers: &stubProjectUsersRepo{},
		mock:         mock,
	}

	m := &stubRepoManager{
		users:        env.users,
		projects:     env.projects,
		tasks:        env.tasks,
		comments:     env.comments,
		projectUsers: env.projectUsers,
	}

	if publicPaths == nil {
		publicPaths = []string{"/api/auth/login", "/api/auth/register", "/api/auth/test"}
	}

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
		PublicPaths:           publicPaths,
	}

	svc := Services{
		Auth:     services.NewAuthService(db, m, cfg),
		Users:    services.NewUserService(db, m),
		Projects: services.NewProjectService(db, m),
		Tasks:    services.NewTaskService(db, m),
		Comments: services.NewCommentService(db, m),
		Members:  services.NewProjectUserService(db, m),
	}

	srv := NewHTTPServer(":0", discardLogger(), svc, cfg.SecretKey, cfg.PublicPaths)
	env.handler = srv.Handler()
	return env
}
