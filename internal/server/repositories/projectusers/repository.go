// Package projectusers persists project membership rows, keyed by
// (project_id, user_id).
package projectusers

import (
	"context"

	"github.com/politask/politask/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, membership *models.ProjectUser) (*models.ProjectUser, error)
	GetByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectUser, error)
	Remove(ctx context.Context, projectID, userID int64) error
}
