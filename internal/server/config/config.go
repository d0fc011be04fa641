// Package config handles configuration for the server component, including
// defaults, environment variables (with optional .env file), JSON overlay,
// and command-line flags.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Storage backend selectors.
const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

// Config holds runtime settings for the files-manager server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DBHost / DBPort / DBDatabase: MongoDB connection settings.
//   - RedisAddr: address of the Redis instance backing sessions.
//   - FolderPath: root directory of the local blob store.
//   - StorageBackend: "local" or "s3".
//   - S3*: object-storage settings, used when StorageBackend is "s3".
type Config struct {
	Addr string `validate:"required"`

	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBDatabase string `validate:"required"`

	RedisAddr string `validate:"required"`

	FolderPath     string `validate:"required"`
	StorageBackend string `validate:"oneof=local s3"`

	S3Bucket       string
	S3Region       string
	S3RootUser     string
	S3RootPassword string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults matching a local
// MongoDB and Redis.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.DBHost = "localhost"
	c.DBPort = "27017"
	c.DBDatabase = "files_manager"
	c.RedisAddr = "localhost:6379"
	c.FolderPath = "/tmp/files_manager"
	c.StorageBackend = StorageBackendLocal
	c.S3Bucket = "files-manager"
	c.S3Region = "us-east-1"
}

// MongoURI renders the connection string for the metadata store.
func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.DBHost, c.DBPort)
}

// Validate reports the first invalid field, if any.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
