package auth

import (
	"strings"

	"github.com/avekseev/chirpy/internal/common"
)

// apiKeyScheme is matched literally and case-sensitively.
const apiKeyScheme = "ApiKey "

// GetBearerToken extracts the token from an Authorization header value of the
// form "Bearer <token>". An absent header is common.ErrorMissingAuthHeader.
// The token itself is not validated here: a header with no second field
// yields an empty token, which fails downstream signature verification.
func GetBearerToken(header string) (string, error) {
	if header == "" {
		return "", common.ErrorMissingAuthHeader
	}
	fields := strings.Split(header, " ")
	if len(fields) < 2 {
		return "", nil
	}
	return fields[1], nil
}

// GetAPIKey extracts the key from an Authorization header value of the form
// "ApiKey <key>". An absent header is common.ErrorMissingAuthHeader. The
// scheme match is case-sensitive and the first occurrence wins; when the
// scheme is absent or the key empty, an empty string is returned and fails
// the equality check against the configured secret.
func GetAPIKey(header string) (string, error) {
	if header == "" {
		return "", common.ErrorMissingAuthHeader
	}
	parts := strings.Split(header, apiKeyScheme)
	if len(parts) < 2 {
		return "", nil
	}
	return parts[1], nil
}
