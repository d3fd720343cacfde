// Package auth implements the credential primitives of the server: signed
// time-limited access tokens (JWT, HS256 only) and salted password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sergiomezzz/mi-api-juegos2/internal/common"
)

// Claims includes the registered claims plus the authenticated user's
// identifier, serialized as "id".
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// GenerateToken issues a signed HS256 token carrying the user's identifier
// and an expiry validityDuration from now.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies signature, expiry, and signing algorithm of the
// given token and returns the user identifier it carries. Tokens signed with
// anything other than HS256 are rejected. The returned error is one of the
// common token kinds (ErrTokenMalformed, ErrTokenExpired, ErrSignatureInvalid,
// ErrAlgorithmMismatch) or the generic common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, common.ErrAlgorithmMismatch
		}
		return secretKey, nil
	})
	if err != nil {
		return "", translateTokenError(err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.UserID, nil
}

func translateTokenError(err error) error {
	switch {
	case errors.Is(err, common.ErrAlgorithmMismatch):
		return common.ErrAlgorithmMismatch
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrSignatureInvalid
	default:
		return common.ErrInvalidToken
	}
}
