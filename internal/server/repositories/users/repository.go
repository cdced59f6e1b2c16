// Package users persists account records. Two implementations exist, one
// per storage backend, plus a switching repository that consults the
// storage-mode selector on every call.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. The uniqueness check on email is atomic
	// with the insert; the loser of a race gets common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)

	// UpdateProfile mutates name and email only. Role and password hash are
	// not reachable through this surface.
	UpdateProfile(ctx context.Context, id, name, email string) (*models.User, error)

	// RecordLogin stamps the last successful authentication.
	RecordLogin(ctx context.Context, id string, at time.Time) error

	Delete(ctx context.Context, id string) error
}
