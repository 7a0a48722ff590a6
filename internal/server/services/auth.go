// Package services contains server-side business logic. AuthService
// handles registration and login and issues session tokens; the CRUD
// services wrap the repositories for their record kind.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/politask/politask/internal/common"
	"github.com/politask/politask/internal/server/auth"
	"github.com/politask/politask/internal/server/config"
	"github.com/politask/politask/internal/server/models"
	"github.com/politask/politask/internal/server/repositories/repomanager"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthResult is the session envelope returned after a successful
// registration or login. It never carries the password hash.
type AuthResult struct {
	Token  string
	UserID int64
	Name   string
	Email  string
}

// AuthService provides authentication operations:
//   - Register: validate, hash, persist a credential, mint a token
//   - Login: verify credentials and mint a token
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a credential for a new user. A duplicate email
// yields common.ErrorConflict whether detected by the pre-check or by
// the store's unique index during a concurrent insert; either way no
// second row is created.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	v := common.NewValidationError()
	if strings.TrimSpace(name) == "" {
		v.Add("name", "Name is required")
	}
	validateEmailField(v, email)
	if password == "" {
		v.Add("password", "Password is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorConflict
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, common.ErrorInternal
	}

	return s.issueSession(user)
}

// Login verifies the password against the stored hash. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	v := common.NewValidationError()
	validateEmailField(v, email)
	if password == "" {
		v.Add("password", "Password is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	return s.issueSession(user)
}

func (s *AuthService) issueSession(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.Email, user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}

func validateEmailField(v *common.ValidationError, email string) {
	if strings.TrimSpace(email) == "" {
		v.Add("email", "Email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		v.Add("email", "Email format is invalid")
	}
}
