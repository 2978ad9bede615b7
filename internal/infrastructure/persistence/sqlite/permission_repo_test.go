package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/domain/repository"
	"github.com/bnema/codeora/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/codeora/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newPermissionRepo(t *testing.T) repository.PermissionRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "codeora.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return sqlite.NewPermissionRepository(db)
}

const (
	originA = "https://chat.example.com"
	originB = "https://other.example.com"
)

func TestPermissionRepository_GetMissingReturnsNil(t *testing.T) {
	repo := newPermissionRepo(t)

	got, err := repo.Get(testCtx(), originA, entity.PermissionTypeMicrophone)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPermissionRepository_SetUpserts(t *testing.T) {
	ctx := testCtx()
	repo := newPermissionRepo(t)

	require.NoError(t, repo.Set(ctx, &entity.PermissionRecord{
		Origin: originA, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionDenied, UpdatedAt: 100,
	}))
	require.NoError(t, repo.Set(ctx, &entity.PermissionRecord{
		Origin: originA, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionGranted, UpdatedAt: 200,
	}))

	got, err := repo.Get(ctx, originA, entity.PermissionTypeMicrophone)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.PermissionGranted, got.Decision)
	assert.Equal(t, int64(200), got.UpdatedAt)
	assert.True(t, got.IsGranted())
}

func TestPermissionRepository_SetStampsUpdatedAt(t *testing.T) {
	ctx := testCtx()
	repo := newPermissionRepo(t)

	require.NoError(t, repo.Set(ctx, &entity.PermissionRecord{
		Origin: originA, Type: entity.PermissionTypeStorageRead, Decision: entity.PermissionGranted,
	}))

	got, err := repo.Get(ctx, originA, entity.PermissionTypeStorageRead)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Positive(t, got.UpdatedAt)
}

func TestPermissionRepository_SetRejectsNilAndBadDecision(t *testing.T) {
	ctx := testCtx()
	repo := newPermissionRepo(t)

	assert.Error(t, repo.Set(ctx, nil))
	assert.Error(t, repo.Set(ctx, &entity.PermissionRecord{
		Origin: originA, Type: entity.PermissionTypeMicrophone, Decision: "maybe",
	}), "CHECK constraint rejects unknown decisions")
}

func TestPermissionRepository_GetAllListAndDelete(t *testing.T) {
	ctx := testCtx()
	repo := newPermissionRepo(t)

	for _, rec := range []*entity.PermissionRecord{
		{Origin: originB, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionDenied, UpdatedAt: 1},
		{Origin: originA, Type: entity.PermissionTypeStorageRead, Decision: entity.PermissionGranted, UpdatedAt: 1},
		{Origin: originA, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionGranted, UpdatedAt: 1},
	} {
		require.NoError(t, repo.Set(ctx, rec))
	}

	forA, err := repo.GetAll(ctx, originA)
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, entity.PermissionTypeMicrophone, forA[0].Type)
	assert.Equal(t, entity.PermissionTypeStorageRead, forA[1].Type)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, originA, all[0].Origin)
	assert.Equal(t, originB, all[2].Origin)

	require.NoError(t, repo.Delete(ctx, originA, entity.PermissionTypeStorageRead))
	forA, err = repo.GetAll(ctx, originA)
	require.NoError(t, err)
	assert.Len(t, forA, 1)

	removed, err := repo.DeleteAll(ctx, originB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeleteAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLazyPermissionRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "codeora.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyPermissionRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Set(ctx, &entity.PermissionRecord{
		Origin: originA, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionGranted,
	}))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Get(ctx, originA, entity.PermissionTypeMicrophone)
	require.NoError(t, err)
	assert.True(t, got.IsGranted())
}
