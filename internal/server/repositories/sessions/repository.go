// Package sessions persists mentoring session requests.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)

	ListByStudent(ctx context.Context, studentID string) ([]*models.Session, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*models.Session, error)
	ListAll(ctx context.Context) ([]*models.Session, error)

	UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
