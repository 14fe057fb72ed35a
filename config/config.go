package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs from the environment. It is
// loaded once in main and passed down explicitly; nothing else in the
// codebase reads os.Getenv.
type Config struct {
	Addr                 string
	DatabasePath         string
	UploadDir            string
	Secret               string
	TokenTTL             time.Duration
	DefaultAdminPassword string
}

const defaultTokenTTLHours = 168 // 7 days

// Load builds a Config from environment variables. SECRET is mandatory,
// everything else has a development default.
func Load() (Config, error) {
	cfg := Config{
		Addr:                 getenv("ADDR", ":8000"),
		DatabasePath:         getenv("DATABASE_PATH", "sports_school.db"),
		UploadDir:            getenv("UPLOAD_DIR", "uploads"),
		Secret:               os.Getenv("SECRET"),
		DefaultAdminPassword: getenv("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}

	if cfg.Secret == "" {
		return Config{}, errors.New("SECRET variable is not set")
	}

	hours := defaultTokenTTLHours
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return Config{}, errors.New("TOKEN_TTL_HOURS must be a positive integer")
		}
		hours = parsed
	}
	cfg.TokenTTL = time.Duration(hours) * time.Hour

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
