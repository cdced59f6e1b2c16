package courses

import (
	"context"

	"github.com/dmitrijs2005/skillbridge/internal/server/backend"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

// SwitchingRepository routes every call to the backend selected by the
// storage-mode flag, read per call.
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

func (r *SwitchingRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	return r.active().Create(ctx, course)
}

func (r *SwitchingRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return r.active().GetByID(ctx, id)
}

func (r *SwitchingRepository) List(ctx context.Context) ([]*models.Course, error) {
	return r.active().List(ctx)
}

func (r *SwitchingRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	return r.active().Update(ctx, course)
}

func (r *SwitchingRepository) Delete(ctx context.Context, id string) error {
	return r.active().Delete(ctx, id)
}

func (r *SwitchingRepository) Enroll(ctx context.Context, courseID, studentID string) error {
	return r.active().Enroll(ctx, courseID, studentID)
}
