package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vidvault/internal/application/usecase"
	"vidvault/internal/domain/model"
	"vidvault/internal/infrastructure/auth"
	blobminio "vidvault/internal/infrastructure/blob/minio"
	"vidvault/internal/infrastructure/database"
	"vidvault/pkg/logger"
)

// Storage backend names accepted by the storage.backend key.
const (
	BackendMinIO  = "minio"
	BackendMemory = "memory"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment string                 `yaml:"environment"`
	Server      ServerConfig           `yaml:"server"`
	Storage     StorageConfig          `yaml:"storage"`
	MinIOClient blobminio.ClientConfig `yaml:"minio_client"`
	MinIOStore  blobminio.StoreConfig  `yaml:"minio_store"`
	DBConfig    database.Config        `yaml:"db_config"`
	Uploads     UploadsConfig          `yaml:"uploads"`
	Logger      logger.Config          `yaml:"logger"`
	Auth        auth.Config            `yaml:"-"`
}

type ServerConfig struct {
	Address       string `yaml:"address"`
	PublicBaseURL string `yaml:"public_base_url"`
	BodyLimit     string `yaml:"body_limit"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
}

type UploadsConfig struct {
	Thumbnail usecase.UploadPolicy `yaml:"thumbnail"`
	Video     usecase.UploadPolicy `yaml:"video"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.Auth.Secret = os.Getenv("JWT_SECRET")

	config.Uploads.Thumbnail.Class = "thumbnail"
	config.Uploads.Thumbnail.URLField = model.FieldThumbnailURL
	config.Uploads.Video.Class = "video"
	config.Uploads.Video.URLField = model.FieldVideoURL

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Server.PublicBaseURL == "" {
		return Error{reason: "server.public_base_url must be set"}
	}
	if c.Auth.Secret == "" {
		return Error{reason: "JWT_SECRET must be set in the environment"}
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendMinIO:
		if c.MinIOClient.Endpoint == "" || c.MinIOStore.Bucket == "" {
			return Error{reason: "minio backend needs minio_client.endpoint and minio_store.bucket"}
		}
	default:
		return Error{reason: "storage.backend must be \"minio\" or \"memory\""}
	}

	for _, policy := range []usecase.UploadPolicy{c.Uploads.Thumbnail, c.Uploads.Video} {
		if policy.FormField == "" {
			return Error{reason: "uploads." + policy.Class + ".form_field must be set"}
		}
		if policy.MaxBytes <= 0 {
			return Error{reason: "uploads." + policy.Class + ".max_bytes must be positive"}
		}
		if len(policy.AllowedTypes) == 0 {
			return Error{reason: "uploads." + policy.Class + ".allowed_types must not be empty"}
		}
	}

	return nil
}
