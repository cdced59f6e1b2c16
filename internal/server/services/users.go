// Package services contains the server-side business rules. Services own
// hashing, token issuance, uniqueness, and ownership decisions; handlers
// only translate their results to HTTP.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
	"github.com/dmitrijs2005/skillbridge/internal/server/config"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
)

// UserService handles registration, login, profile management, and the
// admin account surface.
type UserService struct {
	repomanager           repomanager.RepositoryManager
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repomanager:           m,
		logger:                logger,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account and issues its first bearer token. The email
// uniqueness check is delegated to the repository, where it is atomic with
// the insert; a duplicate surfaces as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown account type %q", common.ErrorValidation, role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repomanager.Users().Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and mints a bearer token. An unknown email and
// a wrong password are indistinguishable to the caller. The last-login stamp
// is best effort; a failed stamp never fails the login.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", common.ErrorInvalidCredentials
	}

	now := time.Now()
	if err := s.repomanager.Users().RecordLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn(ctx, "failed to record login time", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// Profile returns the account behind the principal.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, userID)
}

// UpdateProfile changes name and email only. Role and password stay fixed.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", common.ErrorValidation)
	}
	return s.repomanager.Users().UpdateProfile(ctx, userID, name, email)
}

// List returns every account. Callers gate this to admins.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users().List(ctx)
}

// Delete removes an account. Callers gate this to admins.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Users().Delete(ctx, id)
}
