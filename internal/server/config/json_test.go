package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	raw := `{
		"addr": ":9000",
		"database_dsn": "postgres://x",
		"secret_key": "s",
		"polka_key": "k",
		"platform": "prod",
		"access_token_validity_duration": "30m",
		"refresh_token_validity_duration": "720h"
	}`

	var c JsonConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, "postgres://x", c.DatabaseDSN)
	assert.Equal(t, "prod", c.Platform)
	assert.Equal(t, 30*time.Minute, mustParseDuration(c.AccessTokenValidityDuration))
	assert.Equal(t, 720*time.Hour, mustParseDuration(c.RefreshTokenValidityDuration))
}

func TestMustParseDuration_PanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { mustParseDuration("soon") })
}
