package services

import (
	"context"
	"database/sql"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/repomanager"
)

type ProjectUserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectUserService(db *sql.DB, m repomanager.RepositoryManager) *ProjectUserService {
	return &ProjectUserService{db: db, repomanager: m}
}

// Add enrolls a user into a project. Adding the same user twice yields
// common.ErrorConflict from the composite primary key.
func (s *ProjectUserService) Add(ctx context.Context, projectID, userID int64, role string) (*models.ProjectUser, error) {
	v := common.NewValidationError()
	if projectID <= 0 {
		v.Add("projectId", "Project is required")
	}
	if userID <= 0 {
		v.Add("userId", "User is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	if role == "" {
		role = "member"
	}

	return s.repomanager.ProjectUsers(s.db).Add(ctx, &models.ProjectUser{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	})
}

func (s *ProjectUserService) GetByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectUser, error) {
	return s.repomanager.ProjectUsers(s.db).GetByProjectID(ctx, projectID)
}

func (s *ProjectUserService) Remove(ctx context.Context, projectID, userID int64) error {
	return s.repomanager.ProjectUsers(s.db).Remove(ctx, projectID, userID)
}
