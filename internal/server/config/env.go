package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first when present; a missing file is not
// an error.
//
// Recognized variables: ADDRESS, DB_URL, JWT_SECRET, POLKA_KEY, PLATFORM,
// STATIC_DIR, SWEEP_SCHEDULE, HASH_WORKERS.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DB_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("POLKA_KEY"); v != "" {
		config.PolkaKey = v
	}
	if v := os.Getenv("PLATFORM"); v != "" {
		config.Platform = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		config.StaticDir = v
	}
	if v := os.Getenv("SWEEP_SCHEDULE"); v != "" {
		config.SweepSchedule = v
	}
	if v := os.Getenv("HASH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.HashWorkers = n
		}
	}
}
