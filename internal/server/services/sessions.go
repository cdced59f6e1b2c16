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

// SessionService handles one-on-one mentoring session requests. A session
// belongs to exactly two parties: the requesting student and the mentor.
type SessionService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewSessionService(m repomanager.RepositoryManager, logger logging.Logger) *SessionService {
	return &SessionService{repomanager: m, logger: logger}
}

// Create records a new session request from the principal. Every session
// starts pending.
func (s *SessionService) Create(ctx context.Context, p *auth.Principal, session *models.Session) (*models.Session, error) {
	if session.MentorID == "" {
		return nil, fmt.Errorf("%w: mentor is required", common.ErrorValidation)
	}
	session.StudentID = p.UserID
	session.Status = models.SessionPending
	return s.repomanager.Sessions().Create(ctx, session)
}

// ListFor returns the sessions visible to the principal: students see their
// own requests, mentors the ones addressed to them, admins everything.
func (s *SessionService) ListFor(ctx context.Context, p *auth.Principal) ([]*models.Session, error) {
	switch p.Role {
	case models.RoleStudent:
		return s.repomanager.Sessions().ListByStudent(ctx, p.UserID)
	case models.RoleMentor:
		return s.repomanager.Sessions().ListByMentor(ctx, p.UserID)
	default:
		return s.repomanager.Sessions().ListAll(ctx)
	}
}

// UpdateStatus lets the addressed mentor accept or reject a request.
func (s *SessionService) UpdateStatus(ctx context.Context, p *auth.Principal, id string, status models.SessionStatus) (*models.Session, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, status)
	}
	session, err := s.repomanager.Sessions().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(p, session.MentorID) {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Sessions().UpdateStatus(ctx, id, status)
}

// Delete removes a session. Either party may delete it.
func (s *SessionService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	session, err := s.repomanager.Sessions().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.IsOwner(p, session.StudentID) && !auth.IsOwner(p, session.MentorID) {
		return common.ErrorForbidden
	}
	return s.repomanager.Sessions().Delete(ctx, id)
}
