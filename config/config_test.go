package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidvault/internal/domain/model"
)

func TestLoadFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, ":8091", cfg.Server.Address)
	assert.Equal(t, "http://localhost:8091", cfg.Server.PublicBaseURL)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)

	assert.Equal(t, "thumbnail", cfg.Uploads.Thumbnail.Class)
	assert.Equal(t, model.FieldThumbnailURL, cfg.Uploads.Thumbnail.URLField)
	assert.Equal(t, int64(10485760), cfg.Uploads.Thumbnail.MaxBytes)
	assert.Equal(t, []string{"image/jpeg", "image/png"}, cfg.Uploads.Thumbnail.AllowedTypes)

	assert.Equal(t, "video", cfg.Uploads.Video.Class)
	assert.Equal(t, model.FieldVideoURL, cfg.Uploads.Video.URLField)
	assert.Equal(t, []string{"video/mp4"}, cfg.Uploads.Video.AllowedTypes)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("./config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./does-not-exist.yml")
	require.Error(t, err)
}
