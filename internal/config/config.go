package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/accommotrack/client-go/internal/utils"
)

type Config struct {
	AppName         string
	BaseURL         string
	StorageDir      string
	RequestTimeout  time.Duration
	ProfileCacheTTL time.Duration
	EmailDebounce   time.Duration
}

const AppName = "accommotrack"

func LoadConfig() *Config {
	baseURL := os.Getenv("ACCOMMO_API_URL")
	if baseURL == "" {
		utils.Logger.Fatal("ACCOMMO_API_URL env var is missing")
	}

	storageDir := os.Getenv("ACCOMMO_STORAGE_DIR")
	if storageDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			utils.Logger.WithError(err).Fatal("cannot resolve home dir for session storage")
		}
		storageDir = filepath.Join(home, ".accommotrack")
	}

	return &Config{
		AppName:         AppName,
		BaseURL:         baseURL,
		StorageDir:      storageDir,
		RequestTimeout:  durationEnv("ACCOMMO_REQUEST_TIMEOUT", 30*time.Second),
		ProfileCacheTTL: durationEnv("ACCOMMO_PROFILE_CACHE_TTL", 30*time.Second),
		EmailDebounce:   durationEnv("ACCOMMO_EMAIL_DEBOUNCE", 500*time.Millisecond),
	}
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %s", key, raw, def)
		return def
	}
	return d
}
