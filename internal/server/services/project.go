package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/dbx"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/repomanager"
)

// ProjectService manages projects and their owner membership.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

// Create persists the project and the owner's membership row in one
// transaction, so a project never exists without its owner as a member.
func (s *ProjectService) Create(ctx context.Context, ownerID int64, name, description string) (*models.Project, error) {
	v := common.NewValidationError()
	if strings.TrimSpace(name) == "" {
		v.Add("name", "Name is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	var project *models.Project
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.repomanager.Projects(tx).Create(ctx, &models.Project{
			Name:        name,
			Description: description,
			OwnerID:     ownerID,
		})
		if err != nil {
			return err
		}

		_, err = s.repomanager.ProjectUsers(tx).Add(ctx, &models.ProjectUser{
			ProjectID: p.ID,
			UserID:    ownerID,
			Role:      "owner",
		})
		if err != nil {
			return err
		}

		project = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.repomanager.Projects(s.db).GetByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, id int64, name, description string) (*models.Project, error) {
	v := common.NewValidationError()
	if strings.TrimSpace(name) == "" {
		v.Add("name", "Name is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	return s.repomanager.Projects(s.db).Update(ctx, &models.Project{
		ID:          id,
		Name:        name,
		Description: description,
	})
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Projects(s.db).Delete(ctx, id)
}
