package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
)

func newTestSessionService() *SessionService {
	return NewSessionService(repomanager.NewInMemoryRepositoryManager(), testLogger())
}

func adminPrincipal(id string) *auth.Principal {
	return &auth.Principal{UserID: id, Email: id + "@example.com", Role: models.RoleAdmin}
}

func TestSessionService_CreateStartsPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService()

	session, err := svc.Create(ctx, studentPrincipal("3"), &models.Session{
		MentorID: "2",
		Date:     "2026-09-10",
		Time:     "15:00",
		Subject:  "Goroutines",
		Status:   models.SessionAccepted, // client-supplied status is ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "3", session.StudentID)
	assert.Equal(t, models.SessionPending, session.Status)
}

func TestSessionService_CreateRequiresMentor(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService()

	_, err := svc.Create(ctx, studentPrincipal("3"), &models.Session{Subject: "Goroutines"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestSessionService_ListForRole(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService()

	_, err := svc.Create(ctx, studentPrincipal("3"), &models.Session{MentorID: "2", Subject: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, studentPrincipal("4"), &models.Session{MentorID: "2", Subject: "B"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, studentPrincipal("3"), &models.Session{MentorID: "5", Subject: "C"})
	require.NoError(t, err)

	own, err := svc.ListFor(ctx, studentPrincipal("3"))
	require.NoError(t, err)
	assert.Len(t, own, 2)

	addressed, err := svc.ListFor(ctx, mentorPrincipal("2"))
	require.NoError(t, err)
	assert.Len(t, addressed, 2)

	all, err := svc.ListFor(ctx, adminPrincipal("1"))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSessionService_UpdateStatusOnlyAddressedMentor(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService()

	session, err := svc.Create(ctx, studentPrincipal("3"), &models.Session{MentorID: "2", Subject: "A"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, mentorPrincipal("5"), session.ID, models.SessionAccepted)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = svc.UpdateStatus(ctx, mentorPrincipal("2"), session.ID, models.SessionStatus("done"))
	assert.ErrorIs(t, err, common.ErrorValidation)

	updated, err := svc.UpdateStatus(ctx, mentorPrincipal("2"), session.ID, models.SessionAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.SessionAccepted, updated.Status)
}

func TestSessionService_DeleteByEitherParty(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService()

	forStudent, err := svc.Create(ctx, studentPrincipal("3"), &models.Session{MentorID: "2", Subject: "A"})
	require.NoError(t, err)
	forMentor, err := svc.Create(ctx, studentPrincipal("3"), &models.Session{MentorID: "2", Subject: "B"})
	require.NoError(t, err)

	err = svc.Delete(ctx, studentPrincipal("4"), forStudent.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	require.NoError(t, svc.Delete(ctx, studentPrincipal("3"), forStudent.ID))
	require.NoError(t, svc.Delete(ctx, mentorPrincipal("2"), forMentor.ID))

	err = svc.Delete(ctx, studentPrincipal("3"), forStudent.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
