package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
)

// DoubtService handles student questions and their reply threads.
type DoubtService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewDoubtService(m repomanager.RepositoryManager, logger logging.Logger) *DoubtService {
	return &DoubtService{repomanager: m, logger: logger}
}

// Create posts a new question from the principal. A fresh doubt is open and
// has no mentor assigned.
func (s *DoubtService) Create(ctx context.Context, p *auth.Principal, doubt *models.Doubt) (*models.Doubt, error) {
	if doubt.Question == "" {
		return nil, fmt.Errorf("%w: question is required", common.ErrorValidation)
	}
	doubt.StudentID = p.UserID
	doubt.MentorID = nil
	doubt.Status = models.DoubtOpen
	return s.repomanager.Doubts().Create(ctx, doubt)
}

// ListFor returns the doubts visible to the principal: students see their
// own, mentors the ones assigned to them, admins everything.
func (s *DoubtService) ListFor(ctx context.Context, p *auth.Principal) ([]*models.Doubt, error) {
	switch p.Role {
	case models.RoleStudent:
		return s.repomanager.Doubts().ListByStudent(ctx, p.UserID)
	case models.RoleMentor:
		return s.repomanager.Doubts().ListByMentor(ctx, p.UserID)
	default:
		return s.repomanager.Doubts().ListAll(ctx)
	}
}

// AddReply appends the principal's message to a doubt thread.
func (s *DoubtService) AddReply(ctx context.Context, p *auth.Principal, doubtID, message string) (*models.Doubt, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", common.ErrorValidation)
	}
	reply := models.Reply{
		UserID:    p.UserID,
		Message:   message,
		Timestamp: time.Now(),
	}
	return s.repomanager.Doubts().AddReply(ctx, doubtID, reply)
}
