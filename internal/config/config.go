package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ModelPath       string
	MetadataPath    string
	UploadDir       string
	MaxUploadMemory int64 // multipart memory threshold in bytes; larger uploads spill to disk
}

func Load() *Config {
	// Optional .env file for local runs; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		ModelPath:       getEnv("MODEL_PATH", "models/model_embedded.onnx"),
		MetadataPath:    getEnv("METADATA_PATH", "models/model_metadata.json"),
		UploadDir:       getEnv("UPLOAD_DIR", ""),
		MaxUploadMemory: getEnvInt64("MAX_UPLOAD_MEMORY_MB", 32) << 20,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
