package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitching_ReadsModePerCall(t *testing.T) {
	t.Parallel()

	sel := backend.NewSelector()
	volatileRepo := NewInMemoryRepository()
	durableRepo := NewInMemoryRepository() // stands in for postgres here

	repo := NewSwitchingRepository(sel, volatileRepo, durableRepo)
	ctx := context.Background()

	// before the probe resolves, writes land in the volatile table
	_, err := repo.Create(ctx, newUser("early@example.com"))
	require.NoError(t, err)

	_, err = volatileRepo.GetByEmail(ctx, "early@example.com")
	assert.NoError(t, err)
	_, err = durableRepo.GetByEmail(ctx, "early@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// probe succeeds, the same repository handle now addresses the durable table
	require.NoError(t, sel.Probe(ctx, func(ctx context.Context) error { return nil }, time.Second))

	_, err = repo.Create(ctx, newUser("late@example.com"))
	require.NoError(t, err)

	_, err = durableRepo.GetByEmail(ctx, "late@example.com")
	assert.NoError(t, err)
	_, err = volatileRepo.GetByEmail(ctx, "late@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
