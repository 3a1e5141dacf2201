package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"vidvault/internal/domain/model"
	repo "vidvault/internal/domain/repository/database"
)

const (
	mongoImage    = "mongo:latest"
	mongoUser     = "testuser"
	mongoPassword = "testpass"
	mongoDBName   = "testdb"
)

func setupDatabase(t *testing.T) *Database {
	t.Helper()

	ctx := context.Background()

	mongoReq := testcontainers.ContainerRequest{
		Image:        mongoImage,
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": mongoUser,
			"MONGO_INITDB_ROOT_PASSWORD": mongoPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: mongoReq,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}
	t.Cleanup(func() {
		if err := mongoC.Terminate(context.Background()); err != nil {
			t.Errorf("Failed to terminate MongoDB container: %v", err)
		}
	})

	endpoint, err := mongoC.Endpoint(ctx, "")
	require.NoError(t, err)

	db, err := Connect(Config{
		URI:               fmt.Sprintf("mongodb://%s:%s@%s", mongoUser, mongoPassword, endpoint),
		DBName:            mongoDBName,
		ConnectionTimeout: 10000,
		QueryTimeout:      5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Stop())
	})

	return db
}

func TestVideoRoundTrip_Integration(t *testing.T) {
	db := setupDatabase(t)

	writer := NewVideoWriter(db)
	retriever := NewVideoRetriever(db)
	updater := NewVideoUpdater(db)

	ctx := context.Background()

	video := &model.Video{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		Title:     "road trip",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, writer.Create(ctx, video))

	got, err := retriever.GetByID(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, video.ID, got.ID)
	assert.Equal(t, video.UserID, got.UserID)
	assert.Equal(t, "road trip", got.Title)
	assert.Nil(t, got.ThumbnailURL)
	assert.Nil(t, got.VideoURL)

	url := "http://localhost:8091/assets/" + video.ID + ".jpg"
	require.NoError(t, updater.SetAssetURL(ctx, video.ID, model.FieldThumbnailURL, url))

	got, err = retriever.GetByID(ctx, video.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ThumbnailURL)
	assert.Equal(t, url, *got.ThumbnailURL)
	assert.Nil(t, got.VideoURL)
	assert.True(t, got.UpdatedAt.After(video.UpdatedAt) || got.UpdatedAt.Equal(video.UpdatedAt))
}

func TestVideoNotFound_Integration(t *testing.T) {
	db := setupDatabase(t)

	retriever := NewVideoRetriever(db)
	updater := NewVideoUpdater(db)

	ctx := context.Background()

	_, err := retriever.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repo.ErrVideoNotFound)

	err = updater.SetAssetURL(ctx, uuid.NewString(), model.FieldVideoURL, "http://example.com/assets/x.mp4")
	assert.ErrorIs(t, err, repo.ErrVideoNotFound)
}
