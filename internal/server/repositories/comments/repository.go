package comments

import (
	"context"

	"github.com/politask/politask/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByTaskID(ctx context.Context, taskID int64) ([]*models.Comment, error)
}
