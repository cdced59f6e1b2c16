// Package courses persists course offerings and enrollments.
package courses

import (
	"context"

	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)

	// Update persists the mutable course fields (title, description, price,
	// category, level, duration). Ownership checks belong to the service.
	Update(ctx context.Context, course *models.Course) (*models.Course, error)

	Delete(ctx context.Context, id string) error

	// Enroll adds a student to a course. common.ErrorAlreadyExists when the
	// student is already enrolled, common.ErrorNotFound when the course is
	// missing.
	Enroll(ctx context.Context, courseID, studentID string) error
}
