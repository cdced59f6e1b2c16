package users

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

// InMemoryRepository is the volatile fallback store: a mutex-guarded table
// keyed by a monotonically increasing counter, reset on process restart.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]*models.User
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// uniqueness check and insert happen under one lock
	for _, u := range r.items {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	r.nextID++
	stored := *user
	stored.ID = strconv.FormatInt(r.nextID, 10)
	stored.CreatedAt = time.Now()
	r.items[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *u
	return &copied, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}

	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.items))
	for _, u := range r.items {
		copied := *u
		result = append(result, &copied)
	}

	return result, nil
}

func (r *InMemoryRepository) UpdateProfile(ctx context.Context, id, name, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	for otherID, other := range r.items {
		if otherID != id && other.Email == email {
			return nil, common.ErrorAlreadyExists
		}
	}

	u.Name = name
	u.Email = email

	copied := *u
	return &copied, nil
}

func (r *InMemoryRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return common.ErrorNotFound
	}

	t := at
	u.LastLogin = &t
	return nil
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
