package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/repomanager"
)

type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// Create stores a comment authored by the given user.
func (s *CommentService) Create(ctx context.Context, authorID, taskID int64, content string) (*models.Comment, error) {
	v := common.NewValidationError()
	if strings.TrimSpace(content) == "" {
		v.Add("content", "Content is required")
	}
	if taskID <= 0 {
		v.Add("taskId", "Task is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	return s.repomanager.Comments(s.db).Create(ctx, &models.Comment{
		Content:  content,
		TaskID:   taskID,
		AuthorID: authorID,
	})
}

func (s *CommentService) GetByTaskID(ctx context.Context, taskID int64) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).GetByTaskID(ctx, taskID)
}
