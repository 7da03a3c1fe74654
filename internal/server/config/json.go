package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avekseev/chirpy/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Duration fields accept Go duration strings such as "1h". After
// unmarshalling, non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	Addr                         string `json:"addr"`
	DatabaseDSN                  string `json:"database_dsn"`
	SecretKey                    string `json:"secret_key"`
	PolkaKey                     string `json:"polka_key"`
	Platform                     string `json:"platform"`
	StaticDir                    string `json:"static_dir"`
	AccessTokenValidityDuration  string `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration string `json:"refresh_token_validity_duration"`
	SweepSchedule                string `json:"sweep_schedule"`
	HashWorkers                  int    `json:"hash_workers"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. An unreadable file or
// invalid JSON is a startup failure and panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.PolkaKey != "" {
		config.PolkaKey = c.PolkaKey
	}
	if c.Platform != "" {
		config.Platform = c.Platform
	}
	if c.StaticDir != "" {
		config.StaticDir = c.StaticDir
	}
	if c.SweepSchedule != "" {
		config.SweepSchedule = c.SweepSchedule
	}
	if c.HashWorkers > 0 {
		config.HashWorkers = c.HashWorkers
	}
	if c.AccessTokenValidityDuration != "" {
		config.AccessTokenValidityDuration = mustParseDuration(c.AccessTokenValidityDuration)
	}
	if c.RefreshTokenValidityDuration != "" {
		config.RefreshTokenValidityDuration = mustParseDuration(c.RefreshTokenValidityDuration)
	}
}

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
