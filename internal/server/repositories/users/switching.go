package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/server/backend"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

// SwitchingRepository routes every call to the backend selected by the
// storage-mode flag. The mode is read per call, not cached: the
// volatile-to-durable transition can happen after the repository has
// already served volatile reads.
type SwitchingRepository struct {
	selector *backend.Selector
	volatile Repository
	durable  Repository
}

func NewSwitchingRepository(selector *backend.Selector, volatile, durable Repository) *SwitchingRepository {
	return &SwitchingRepository{selector: selector, volatile: volatile, durable: durable}
}

func (r *SwitchingRepository) active() Repository {
	if r.selector.Mode() == backend.Durable {
		return r.durable
	}
	return r.volatile
}

func (r *SwitchingRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return r.active().Create(ctx, user)
}

func (r *SwitchingRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.active().GetByID(ctx, id)
}

func (r *SwitchingRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.active().GetByEmail(ctx, email)
}

func (r *SwitchingRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.active().List(ctx)
}

func (r *SwitchingRepository) UpdateProfile(ctx context.Context, id, name, email string) (*models.User, error) {
	return r.active().UpdateProfile(ctx, id, name, email)
}

func (r *SwitchingRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	return r.active().RecordLogin(ctx, id, at)
}

func (r *SwitchingRepository) Delete(ctx context.Context, id string) error {
	return r.active().Delete(ctx, id)
}
