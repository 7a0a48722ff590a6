// Package repomanager wires concrete repositories over a shared
// database handle. The factory methods accept dbx.DBTX so callers can
// pass either the pool or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/politask/politask/internal/dbx"
	"github.com/politask/politask/internal/server/repositories/comments"
	"github.com/politask/politask/internal/server/repositories/projects"
	"github.com/politask/politask/internal/server/repositories/projectusers"
	"github.com/politask/politask/internal/server/repositories/tasks"
	"github.com/politask/politask/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Comments(db dbx.DBTX) comments.Repository
	ProjectUsers(db dbx.DBTX) projectusers.Repository
}
