package minio

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"vidvault/internal/domain/repository/blob"
)

const (
	minioImage    = "minio/minio:latest"
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	minioBucket   = "test-assets"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()

	minioReq := testcontainers.ContainerRequest{
		Image:        minioImage,
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioPassword,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: minioReq,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start MinIO container: %v", err)
	}
	t.Cleanup(func() {
		if err := minioC.Terminate(context.Background()); err != nil {
			t.Errorf("Failed to terminate MinIO container: %v", err)
		}
	})

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err)

	storeCfg := StoreConfig{
		Timeout: 10000,
		Bucket:  minioBucket,
	}
	client, err := NewClient(ClientConfig{
		AccessKey: minioUser,
		SecretKey: minioPassword,
		Endpoint:  endpoint,
	}, storeCfg)
	require.NoError(t, err)

	return NewStore(client, storeCfg)
}

func TestStoreRoundTrip_Integration(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	content := "not really a jpeg"
	err := store.Write(ctx, "vid-1.jpg", strings.NewReader(content), int64(len(content)), "image/jpeg")
	require.NoError(t, err)

	rc, info, err := store.Read(ctx, "vid-1.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, "image/jpeg", info.ContentType)

	// Overwrite under the same key, read back the newest bytes.
	err = store.Write(ctx, "vid-1.jpg", strings.NewReader("second upload"), int64(len("second upload")), "image/jpeg")
	require.NoError(t, err)

	rc, _, err = store.Read(ctx, "vid-1.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err = io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second upload", string(data))
}

func TestStoreUnknownKey_Integration(t *testing.T) {
	store := setupStore(t)

	_, _, err := store.Read(context.Background(), "never-written.bin")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}
