package sessions

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]*models.Session
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*models.Session)}
}

func (r *InMemoryRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *session
	stored.ID = strconv.FormatInt(r.nextID, 10)
	stored.CreatedAt = time.Now()
	r.items[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *s
	return &copied, nil
}

func (r *InMemoryRepository) list(match func(*models.Session) bool) []*models.Session {
	result := make([]*models.Session, 0)
	for _, s := range r.items {
		if match(s) {
			copied := *s
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

func (r *InMemoryRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(func(s *models.Session) bool { return s.StudentID == studentID }), nil
}

func (r *InMemoryRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(func(s *models.Session) bool { return s.MentorID == mentorID }), nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(func(*models.Session) bool { return true }), nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	s.Status = status

	copied := *s
	return &copied, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}

	delete(r.items, id)
	return nil
}
