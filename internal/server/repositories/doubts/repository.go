// Package doubts persists student questions and their reply threads.
package doubts

import (
	"context"

	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doubt *models.Doubt) (*models.Doubt, error)
	GetByID(ctx context.Context, id string) (*models.Doubt, error)

	ListByStudent(ctx context.Context, studentID string) ([]*models.Doubt, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*models.Doubt, error)
	ListAll(ctx context.Context) ([]*models.Doubt, error)

	// AddReply appends a reply to the thread and returns the whole doubt.
	AddReply(ctx context.Context, doubtID string, reply models.Reply) (*models.Doubt, error)
}
