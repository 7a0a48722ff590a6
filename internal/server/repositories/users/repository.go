// Package users persists credential records. The email column is
// unique; a concurrent duplicate insert surfaces as ErrorConflict.
package users

import (
	"context"

	"github.com/politask/politask/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}
