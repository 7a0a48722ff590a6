package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/politask/politask/internal/dbx"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/comments"
	"github.com/politask/politask/internal/server/repositories/projects"
	"github.com/politask/politask/internal/server/repositories/projectusers"
	"github.com/politask/politask/internal/server/repositories/tasks"
	"github.com/politask/politask/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeRepoManager hands out the configured fakes regardless of the
// database handle it is given.
type fakeRepoManager struct {
	users        users.Repository
	projects     projects.Repository
	tasks        tasks.Repository
	comments     comments.Repository
	projectUsers projectusers.Repository
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *fakeRepoManager) Projects(db dbx.DBTX) projects.Repository            { return m.projects }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasks.Repository                  { return m.tasks }
func (m *fakeRepoManager) Comments(db dbx.DBTX) comments.Repository            { return m.comments }
func (m *fakeRepoManager) ProjectUsers(db dbx.DBTX) projectusers.Repository {
	return m.projectUsers
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	listOut []*models.User
	listErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeProjectsRepo struct {
	createOut *models.Project
	createErr error

	byIDOut *models.Project
	byIDErr error

	listOut []*models.Project
	listErr error

	updateOut *models.Project
	updateErr error

	deleteErr error
}

func (f *fakeProjectsRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeProjectsRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeProjectsRepo) List(ctx context.Context) ([]*models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeProjectsRepo) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeProjectsRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeProjectUsersRepo struct {
	added  []*models.ProjectUser
	addErr error

	byProjectOut []*models.ProjectUser
	byProjectErr error

	removeErr error
}

func (f *fakeProjectUsersRepo) Add(ctx context.Context, m *models.ProjectUser) (*models.ProjectUser, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, m)
	return m, nil
}

func (f *fakeProjectUsersRepo) GetByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectUser, error) {
	if f.byProjectErr != nil {
		return nil, f.byProjectErr
	}
	return f.byProjectOut, nil
}

func (f *fakeProjectUsersRepo) Remove(ctx context.Context, projectID, userID int64) error {
	return f.removeErr
}

type fakeTasksRepo struct {
	createOut *models.Task
	createErr error

	byIDOut *models.Task
	byIDErr error

	listOut []*models.Task
	listErr error

	byProjectOut []*models.Task
	byProjectErr error

	updateOut *models.Task
	updateErr error

	deleteErr error
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeTasksRepo) List(ctx context.Context) ([]*models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTasksRepo) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Task, error) {
	if f.byProjectErr != nil {
		return nil, f.byProjectErr
	}
	return f.byProjectOut, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeCommentsRepo struct {
	createOut *models.Comment
	createErr error

	byTaskOut []*models.Comment
	byTaskErr error
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeCommentsRepo) GetByTaskID(ctx context.Context, taskID int64) ([]*models.Comment, error) {
	if f.byTaskErr != nil {
		return nil, f.byTaskErr
	}
	return f.byTaskOut, nil
}
