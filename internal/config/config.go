package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	JWTSecret string

	BinderByteAPIKey  string
	BinderByteBaseURL string

	// UploadDir is where product images and payment proofs land,
	// served back under /uploads.
	UploadDir string
}

func Load() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		BinderByteAPIKey:  os.Getenv("BINDERBYTE_API_KEY"),
		BinderByteBaseURL: getenv("BINDERBYTE_BASE_URL", "https://api.binderbyte.com"),
		UploadDir:         getenv("UPLOAD_DIR", "uploads"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
