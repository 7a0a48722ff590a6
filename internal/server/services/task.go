package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/repomanager"
)

// TaskInput carries the client-settable task fields.
type TaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	ProjectID   int64
	AssigneeID  *int64
}

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (*models.Task, error) {
	if v := validateTaskInput(in, true); v.HasErrors() {
		return nil, v
	}

	task := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		ProjectID:   in.ProjectID,
		AssigneeID:  in.AssigneeID,
	}
	if task.Status == "" {
		task.Status = "todo"
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}

	return s.repomanager.Tasks(s.db).Create(ctx, task)
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repomanager.Tasks(s.db).GetByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	return s.repomanager.Tasks(s.db).List(ctx)
}

func (s *TaskService) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Task, error) {
	return s.repomanager.Tasks(s.db).GetByProjectID(ctx, projectID)
}

func (s *TaskService) Update(ctx context.Context, id int64, in TaskInput) (*models.Task, error) {
	if v := validateTaskInput(in, false); v.HasErrors() {
		return nil, v
	}

	return s.repomanager.Tasks(s.db).Update(ctx, &models.Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		AssigneeID:  in.AssigneeID,
	})
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Tasks(s.db).Delete(ctx, id)
}

func validateTaskInput(in TaskInput, requireProject bool) *common.ValidationError {
	v := common.NewValidationError()
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title", "Title is required")
	}
	if requireProject && in.ProjectID <= 0 {
		v.Add("projectId", "Project is required")
	}
	return v
}
