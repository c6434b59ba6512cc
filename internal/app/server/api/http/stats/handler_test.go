package stats

import (
	"context"
	"path/filepath"
	"testing"

	"librarydesk/internal/domain/media"
	"librarydesk/internal/infrastructure/storage/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_Stats(t *testing.T) {
	store, err := jsonfile.New(filepath.Join(t.TempDir(), "catalog.json"), slog.Default())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, 1))

	h := NewHandler(media.NewService(store, slog.Default()), slog.Default(), nil)

	out, err := h.stats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Body.TotalItems)
	assert.Equal(t, 1, out.Body.TotalFavorites)
	assert.Equal(t, map[string]int{"Book": 2, "Film": 2}, out.Body.Categories)
}
