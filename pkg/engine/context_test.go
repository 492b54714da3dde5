package engine

import (
	"context"
	"testing"

	"github.com/cbodonnell/ldengine/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSave struct {
	HighScore int    `json:"highScore"`
	Name      string `json:"name"`
}

func TestContextSaveData(t *testing.T) {
	repo, err := storage.NewFileRepository(t.TempDir())
	require.NoError(t, err)

	ctx := &Context{repo: repo, saveKey: storage.DefaultKey}

	var loaded testSave
	assert.ErrorIs(t, ctx.LoadData(&loaded), storage.ErrNotFound)

	require.NoError(t, ctx.SetData(testSave{HighScore: 100, Name: "p1"}))
	require.NoError(t, ctx.LoadData(&loaded))
	assert.Equal(t, testSave{HighScore: 100, Name: "p1"}, loaded)

	// The data was persisted, not just cached.
	raw, err := repo.Load(context.Background(), storage.DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"highScore":100,"name":"p1"}`, string(raw))
}

func TestContextSaveDataWithoutRepository(t *testing.T) {
	ctx := &Context{saveKey: storage.DefaultKey}

	require.NoError(t, ctx.SetData(testSave{HighScore: 5}))

	var loaded testSave
	require.NoError(t, ctx.LoadData(&loaded))
	assert.Equal(t, 5, loaded.HighScore)
}

func TestContextRem(t *testing.T) {
	ctx := &Context{remToPx: 16}
	assert.InDelta(t, 40.0, ctx.Rem(2.5), 1e-9)
}
