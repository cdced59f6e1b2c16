package courses

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
	items  map[string]*models.Course
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*models.Course)}
}

func copyCourse(c *models.Course) *models.Course {
	copied := *c
	copied.Students = slices.Clone(c.Students)
	if copied.Students == nil {
		copied.Students = []string{}
	}
	return &copied
}

func (r *InMemoryRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := copyCourse(course)
	stored.ID = strconv.FormatInt(r.nextID, 10)
	stored.CreatedAt = time.Now()
	stored.Rating = 0
	stored.Students = []string{}
	r.items[stored.ID] = stored

	return copyCourse(stored), nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return copyCourse(c), nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Course, 0, len(r.items))
	for _, c := range r.items {
		result = append(result, copyCourse(c))
	}

	// newest first, matching the durable backend ordering
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[course.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	existing.Title = course.Title
	existing.Description = course.Description
	existing.Price = course.Price
	existing.Category = course.Category
	existing.Level = course.Level
	existing.Duration = course.Duration

	return copyCourse(existing), nil
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

func (r *InMemoryRepository) Enroll(ctx context.Context, courseID, studentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[courseID]
	if !ok {
		return common.ErrorNotFound
	}

	if slices.Contains(c.Students, studentID) {
		return common.ErrorAlreadyExists
	}

	c.Students = append(c.Students, studentID)
	return nil
}
