package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidvault/internal/infrastructure/blob/memory"
	"vidvault/pkg/apperr"
)

func TestGetAsset(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	getter := NewGetter(store)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "vid-1.jpg", strings.NewReader("jpeg bytes"), 10, "image/jpeg"))

	rc, info, err := getter.GetAsset(ctx, "vid-1.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
	assert.Equal(t, "image/jpeg", info.ContentType)
	assert.Equal(t, int64(10), info.Size)
}

func TestGetAsset_UnknownKey(t *testing.T) {
	t.Parallel()

	getter := NewGetter(memory.NewStore())

	_, _, err := getter.GetAsset(context.Background(), "never-written.jpg")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetAsset_PathShapedKey(t *testing.T) {
	t.Parallel()

	getter := NewGetter(memory.NewStore())

	for _, key := range []string{"", "../secrets", "a/b.jpg", `a\b.jpg`} {
		_, _, err := getter.GetAsset(context.Background(), key)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), key)
	}
}
