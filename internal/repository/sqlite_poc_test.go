package repository_test

import (
	"context"
	"testing"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/arjunshenoy/funnelcast/internal/repository"
	"github.com/arjunshenoy/funnelcast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPocCRUD(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePocRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Poc{ID: "p1", Name: "Amey"}))
	require.NoError(t, repo.Create(ctx, &domain.Poc{ID: "p2", Name: "Sneha"}))

	pocs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, pocs, 2)

	require.NoError(t, repo.Delete(ctx, "p1"))
	pocs, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, pocs, 1)
	assert.Equal(t, "Sneha", pocs[0].Name)

	assert.ErrorIs(t, repo.Delete(ctx, "p1"), repository.ErrNotFound)
}

func TestPocNameIsUnique(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePocRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Poc{ID: "p1", Name: "Amey"}))
	assert.Error(t, repo.Create(ctx, &domain.Poc{ID: "p2", Name: "Amey"}))
}
