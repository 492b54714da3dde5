package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repositories(t *testing.T) map[string]Repository {
	t.Helper()

	fileRepo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	sqliteRepo, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqliteRepo.Close(context.Background())
	})

	return map[string]Repository{
		"file":   fileRepo,
		"sqlite": sqliteRepo,
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Load(ctx, DefaultKey)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, repo.Save(ctx, DefaultKey, []byte(`{"score":42}`)))
			data, err := repo.Load(ctx, DefaultKey)
			require.NoError(t, err)
			assert.JSONEq(t, `{"score":42}`, string(data))

			// Overwrite replaces the previous blob.
			require.NoError(t, repo.Save(ctx, DefaultKey, []byte(`{"score":43}`)))
			data, err = repo.Load(ctx, DefaultKey)
			require.NoError(t, err)
			assert.JSONEq(t, `{"score":43}`, string(data))

			require.NoError(t, repo.Delete(ctx, DefaultKey))
			_, err = repo.Load(ctx, DefaultKey)
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing key is not an error.
			assert.NoError(t, repo.Delete(ctx, DefaultKey))
		})
	}
}

func TestRepositoryKeyValidation(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, repo.Save(ctx, "", []byte("x")))
			assert.Error(t, repo.Save(ctx, "../escape", []byte("x")))
			_, err := repo.Load(ctx, "bad key")
			assert.Error(t, err)
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()

	type saveData struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, SaveJSON(ctx, repo, "slot-1", saveData{Name: "p1", Score: 9000}))

	var loaded saveData
	require.NoError(t, LoadJSON(ctx, repo, "slot-1", &loaded))
	assert.Equal(t, saveData{Name: "p1", Score: 9000}, loaded)

	var missing saveData
	assert.ErrorIs(t, LoadJSON(ctx, repo, "slot-2", &missing), ErrNotFound)
}
