package projectusers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/dbx"
	"github.com/politask/politask/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, membership *models.ProjectUser) (*models.ProjectUser, error) {

	query :=
		`INSERT INTO project_users (project_id, user_id, role)
		 VALUES ($1, $2, $3)
		 RETURNING joined_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		membership.ProjectID, membership.UserID, membership.Role).
		Scan(&membership.JoinedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return membership, nil
}

func (r *PostgresRepository) GetByProjectID(ctx context.Context, projectID int64) ([]*models.ProjectUser, error) {
	query :=
		`SELECT project_id, user_id, role, joined_at FROM project_users
		 WHERE project_id = $1
		 ORDER BY joined_at
		 `

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ProjectUser
	for rows.Next() {
		m := &models.ProjectUser{}
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, projectID, userID int64) error {
	query := `DELETE FROM project_users WHERE project_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
