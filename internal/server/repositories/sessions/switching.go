package sessions

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

func (r *SwitchingRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	return r.active().Create(ctx, session)
}

func (r *SwitchingRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return r.active().GetByID(ctx, id)
}

func (r *SwitchingRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Session, error) {
	return r.active().ListByStudent(ctx, studentID)
}

func (r *SwitchingRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.Session, error) {
	return r.active().ListByMentor(ctx, mentorID)
}

func (r *SwitchingRepository) ListAll(ctx context.Context) ([]*models.Session, error) {
	return r.active().ListAll(ctx)
}

func (r *SwitchingRepository) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.Session, error) {
	return r.active().UpdateStatus(ctx, id, status)
}

func (r *SwitchingRepository) Delete(ctx context.Context, id string) error {
	return r.active().Delete(ctx, id)
}
