package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/storage/memory"
)

func TestRepositoryCRUD(t *testing.T) {
	require := require.New(t)
	repo := memory.NewRepository()
	ctx := context.TODO()

	rec := model.SandboxRecord{
		ID:        "sbx-1",
		Provider:  "daytona",
		ProjectID: "proj-9",
		CreatedAt: time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(repo.CreateSandboxRecord(ctx, rec))
	require.ErrorIs(repo.CreateSandboxRecord(ctx, rec), model.ErrAlreadyExists)

	got, err := repo.GetSandboxRecord(ctx, "sbx-1")
	require.NoError(err)
	assert.Equal(t, &rec, got)

	_, err = repo.GetSandboxRecord(ctx, "missing")
	require.ErrorIs(err, model.ErrNotFound)

	require.NoError(repo.DeleteSandboxRecord(ctx, "sbx-1"))
	require.ErrorIs(repo.DeleteSandboxRecord(ctx, "sbx-1"), model.ErrNotFound)
}

func TestRepositoryListOrdering(t *testing.T) {
	require := require.New(t)
	repo := memory.NewRepository()
	ctx := context.TODO()

	older := model.SandboxRecord{ID: "sbx-1", Provider: "daytona", CreatedAt: time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)}
	newer := model.SandboxRecord{ID: "sbx-2", Provider: "docker", CreatedAt: time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)}
	require.NoError(repo.CreateSandboxRecord(ctx, newer))
	require.NoError(repo.CreateSandboxRecord(ctx, older))

	recs, err := repo.ListSandboxRecords(ctx)
	require.NoError(err)
	assert.Equal(t, []model.SandboxRecord{older, newer}, recs)
}

func TestRepositoryTouch(t *testing.T) {
	require := require.New(t)
	repo := memory.NewRepository()
	ctx := context.TODO()

	rec := model.SandboxRecord{ID: "sbx-1", Provider: "daytona", CreatedAt: time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)}
	require.NoError(repo.CreateSandboxRecord(ctx, rec))

	resolvedAt := time.Date(2026, 2, 12, 9, 30, 0, 0, time.UTC)
	require.NoError(repo.TouchSandboxRecord(ctx, "sbx-1", resolvedAt))

	got, err := repo.GetSandboxRecord(ctx, "sbx-1")
	require.NoError(err)
	require.NotNil(got.LastResolvedAt)
	assert.Equal(t, resolvedAt, *got.LastResolvedAt)

	require.ErrorIs(repo.TouchSandboxRecord(ctx, "missing", resolvedAt), model.ErrNotFound)
}
