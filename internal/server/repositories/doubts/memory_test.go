package doubts

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoubt(studentID string) *models.Doubt {
	return &models.Doubt{
		StudentID: studentID,
		Subject:   "Go",
		Question:  "What is a goroutine?",
		Status:    models.DoubtOpen,
	}
}

func TestInMemory_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newDoubt("s1"))
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	assert.Nil(t, created.MentorID)
	assert.Empty(t, created.Replies)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DoubtOpen, got.Status)

	_, err = repo.GetByID(ctx, "999")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemory_ListFilters(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newDoubt("s1"))
	require.NoError(t, err)

	mentorID := "m1"
	assigned := newDoubt("s2")
	assigned.MentorID = &mentorID
	assigned.Status = models.DoubtAssigned
	_, err = repo.Create(ctx, assigned)
	require.NoError(t, err)

	byStudent, err := repo.ListByStudent(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, byStudent, 1)

	byMentor, err := repo.ListByMentor(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, byMentor, 1)
	assert.Equal(t, "s2", byMentor[0].StudentID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInMemory_AddReply(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newDoubt("s1"))
	require.NoError(t, err)

	reply := models.Reply{UserID: "m1", Message: "A lightweight thread.", Timestamp: time.Now()}
	updated, err := repo.AddReply(ctx, created.ID, reply)
	require.NoError(t, err)
	require.Len(t, updated.Replies, 1)
	assert.Equal(t, "m1", updated.Replies[0].UserID)

	_, err = repo.AddReply(ctx, "999", reply)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
