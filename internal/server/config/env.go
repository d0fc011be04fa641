package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		config.Addr = ":" + v
	}
	setIfPresent(&config.DBHost, "DB_HOST")
	setIfPresent(&config.DBPort, "DB_PORT")
	setIfPresent(&config.DBDatabase, "DB_DATABASE")
	setIfPresent(&config.RedisAddr, "REDIS_ADDR")
	setIfPresent(&config.FolderPath, "FOLDER_PATH")
	setIfPresent(&config.StorageBackend, "STORAGE_BACKEND")
	setIfPresent(&config.S3Bucket, "S3_BUCKET")
	setIfPresent(&config.S3Region, "S3_REGION")
	setIfPresent(&config.S3RootUser, "S3_ROOT_USER")
	setIfPresent(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setIfPresent(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
