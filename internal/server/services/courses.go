package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
)

// CourseService handles course offerings and enrollments. Ownership of a
// course belongs to the mentor who created it.
type CourseService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCourseService(m repomanager.RepositoryManager, logger logging.Logger) *CourseService {
	return &CourseService{repomanager: m, logger: logger}
}

// CourseUpdate carries the mutable course fields for a partial update.
// Nil fields are left untouched.
type CourseUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Level       *models.CourseLevel
	Duration    *int
}

// Create registers a new course owned by the principal.
func (s *CourseService) Create(ctx context.Context, p *auth.Principal, course *models.Course) (*models.Course, error) {
	if course.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if course.Level == "" {
		course.Level = models.LevelBeginner
	}
	if !course.Level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %q", common.ErrorValidation, course.Level)
	}
	course.MentorID = p.UserID
	return s.repomanager.Courses().Create(ctx, course)
}

func (s *CourseService) List(ctx context.Context) ([]*models.Course, error) {
	return s.repomanager.Courses().List(ctx)
}

func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	return s.repomanager.Courses().GetByID(ctx, id)
}

// Update applies a partial update to a course the principal owns.
func (s *CourseService) Update(ctx context.Context, p *auth.Principal, id string, upd CourseUpdate) (*models.Course, error) {
	course, err := s.repomanager.Courses().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(p, course.MentorID) {
		return nil, common.ErrorForbidden
	}

	if upd.Title != nil {
		course.Title = *upd.Title
	}
	if upd.Description != nil {
		course.Description = *upd.Description
	}
	if upd.Price != nil {
		course.Price = *upd.Price
	}
	if upd.Category != nil {
		course.Category = *upd.Category
	}
	if upd.Level != nil {
		if !upd.Level.Valid() {
			return nil, fmt.Errorf("%w: unknown level %q", common.ErrorValidation, *upd.Level)
		}
		course.Level = *upd.Level
	}
	if upd.Duration != nil {
		course.Duration = *upd.Duration
	}

	return s.repomanager.Courses().Update(ctx, course)
}

// Delete removes a course the principal owns.
func (s *CourseService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	course, err := s.repomanager.Courses().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.IsOwner(p, course.MentorID) {
		return common.ErrorForbidden
	}
	return s.repomanager.Courses().Delete(ctx, id)
}

// Enroll adds the principal to a course's student list. Enrolling twice
// surfaces as common.ErrorAlreadyExists.
func (s *CourseService) Enroll(ctx context.Context, p *auth.Principal, courseID string) error {
	return s.repomanager.Courses().Enroll(ctx, courseID, p.UserID)
}
