package memory

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidvault/internal/domain/repository/blob"
)

func TestWriteRead(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	err := store.Write(ctx, "abc.jpg", strings.NewReader("jpeg bytes"), 10, "image/jpeg")
	require.NoError(t, err)

	rc, info, err := store.Read(ctx, "abc.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
	assert.Equal(t, int64(10), info.Size)
	assert.Equal(t, "image/jpeg", info.ContentType)
}

func TestOverwrite(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "abc.jpg", strings.NewReader("old"), 3, "image/jpeg"))
	require.NoError(t, store.Write(ctx, "abc.jpg", strings.NewReader("newer"), 5, "image/png"))

	rc, info, err := store.Read(ctx, "abc.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "newer", string(data))
	assert.Equal(t, "image/png", info.ContentType)
}

func TestReadUnknownKey(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, _, err := store.Read(context.Background(), "never-written")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "abc.mp4", strings.NewReader("mp4"), 3, "video/mp4"))
	require.NoError(t, store.Remove(ctx, "abc.mp4"))

	_, _, err := store.Read(ctx, "abc.mp4")
	assert.ErrorIs(t, err, blob.ErrNotFound)

	assert.ErrorIs(t, store.Remove(ctx, "abc.mp4"), blob.ErrNotFound)
}
