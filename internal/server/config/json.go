package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ASLawan/alx-files-manager/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON configuration file. Only the
// fields present in the file override the running config.
type jsonConfig struct {
	Addr           *string `json:"addr"`
	DBHost         *string `json:"db_host"`
	DBPort         *string `json:"db_port"`
	DBDatabase     *string `json:"db_database"`
	RedisAddr      *string `json:"redis_addr"`
	FolderPath     *string `json:"folder_path"`
	StorageBackend *string `json:"storage_backend"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3RootUser     *string `json:"s3_root_user"`
	S3RootPassword *string `json:"s3_root_password"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
}

// parseJSON loads configuration from the file named by the -c/-config flag.
// No flag means no JSON overlay.
func parseJSON(config *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&config.Addr, c.Addr)
	overlay(&config.DBHost, c.DBHost)
	overlay(&config.DBPort, c.DBPort)
	overlay(&config.DBDatabase, c.DBDatabase)
	overlay(&config.RedisAddr, c.RedisAddr)
	overlay(&config.FolderPath, c.FolderPath)
	overlay(&config.StorageBackend, c.StorageBackend)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	return nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
