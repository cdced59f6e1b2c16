package doubts

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]*models.Doubt
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*models.Doubt)}
}

func copyDoubt(d *models.Doubt) *models.Doubt {
	copied := *d
	copied.Replies = slices.Clone(d.Replies)
	if copied.Replies == nil {
		copied.Replies = []models.Reply{}
	}
	if d.MentorID != nil {
		mentorID := *d.MentorID
		copied.MentorID = &mentorID
	}
	return &copied
}

func (r *InMemoryRepository) Create(ctx context.Context, doubt *models.Doubt) (*models.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := copyDoubt(doubt)
	stored.ID = strconv.FormatInt(r.nextID, 10)
	stored.CreatedAt = time.Now()
	stored.Replies = []models.Reply{}
	r.items[stored.ID] = stored

	return copyDoubt(stored), nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Doubt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return copyDoubt(d), nil
}

func (r *InMemoryRepository) list(match func(*models.Doubt) bool) []*models.Doubt {
	result := make([]*models.Doubt, 0)
	for _, d := range r.items {
		if match(d) {
			result = append(result, copyDoubt(d))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

func (r *InMemoryRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Doubt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(func(d *models.Doubt) bool { return d.StudentID == studentID }), nil
}

func (r *InMemoryRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.Doubt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(func(d *models.Doubt) bool {
		return d.MentorID != nil && *d.MentorID == mentorID
	}), nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*models.Doubt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.list(func(*models.Doubt) bool { return true }), nil
}

func (r *InMemoryRepository) AddReply(ctx context.Context, doubtID string, reply models.Reply) (*models.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.items[doubtID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	d.Replies = append(d.Replies, reply)

	return copyDoubt(d), nil
}
