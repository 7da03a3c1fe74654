package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avekseev/chirpy/internal/common"
)

var (
	testSecret  = []byte("test-secret-key")
	wrongSecret = []byte("wrong-secret-key")
)

const testUserID = "test-user-123"

func TestMakeJWT_Structure(t *testing.T) {
	token, err := MakeJWT(testUserID, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
}

func TestMakeJWT_PayloadClaims(t *testing.T) {
	before := time.Now().Unix()
	token, err := MakeJWT(testUserID, testSecret, time.Hour)
	require.NoError(t, err)
	after := time.Now().Unix()

	payload, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[1])
	require.NoError(t, err)

	var claims struct {
		Iss string `json:"iss"`
		Sub string `json:"sub"`
		Iat int64  `json:"iat"`
		Exp int64  `json:"exp"`
	}
	require.NoError(t, json.Unmarshal(payload, &claims))

	assert.Equal(t, TokenIssuer, claims.Iss)
	assert.Equal(t, testUserID, claims.Sub)
	assert.GreaterOrEqual(t, claims.Iat, before)
	assert.LessOrEqual(t, claims.Iat, after)
	assert.Equal(t, claims.Iat+3600, claims.Exp)
}

func TestValidateJWT_RoundTrip(t *testing.T) {
	token, err := MakeJWT(testUserID, testSecret, time.Hour)
	require.NoError(t, err)

	userID, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := MakeJWT(testUserID, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, wrongSecret)
	assert.ErrorIs(t, err, common.ErrorInvalidSignature)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := MakeJWT(testUserID, testSecret, 1*time.Second)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = ValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, common.ErrorTokenExpired)
}

func TestValidateJWT_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no dots", "invalid-token"},
		{"two segments", "header.payload"},
		{"four segments", "not.a.valid.jwt"},
		{"garbage segments", "invalid.invalid.invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateJWT(tc.token, testSecret)
			assert.ErrorIs(t, err, common.ErrorTokenMalformed)
		})
	}
}

func TestValidateJWT_MissingSubject(t *testing.T) {
	token, err := MakeJWT("", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, common.ErrorMissingSubject)
}

func TestMakeJWT_DifferentUsersDifferentTokens(t *testing.T) {
	t1, err := MakeJWT("user1", testSecret, time.Hour)
	require.NoError(t, err)
	t2, err := MakeJWT("user2", testSecret, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
