// Package auth implements the credential primitives of the server: signed
// access tokens, argon2id password hashing and Authorization header parsing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avekseev/chirpy/internal/common"
)

// TokenIssuer is the fixed "iss" claim carried by every access token.
const TokenIssuer = "chirpy"

// MakeJWT mints a compact HS256-signed token for userID. Claims are the
// registered set only: issuer, subject, issued-at and expiry (now+expiresIn).
func MakeJWT(userID string, secret []byte, expiresIn time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT verifies the signature and expiry of tokenString and returns
// its subject. Failures map onto the closed error set:
// common.ErrorTokenMalformed, common.ErrorInvalidSignature,
// common.ErrorTokenExpired and common.ErrorMissingSubject.
func ValidateJWT(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrorTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrorInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrorTokenExpired
		default:
			return "", common.ErrorTokenMalformed
		}
	}

	if claims.Subject == "" {
		return "", common.ErrorMissingSubject
	}

	return claims.Subject, nil
}
