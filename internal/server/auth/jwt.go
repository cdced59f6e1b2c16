// Package auth implements the credential primitives of the server:
// bearer token issue/verify, password hashing, and the role predicates
// used by the HTTP layer.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Principal is the decoded payload of a verified token. It lives for a
// single request and is never persisted.
type Principal struct {
	UserID string
	Email  string
	Role   models.Role
}

// Claims extends the registered JWT claims with the user identity the
// API needs for authorization decisions.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"type"`
}

// GenerateToken issues an HS256-signed bearer token for the given user.
// The token is self-contained: verification never consults the store.
func GenerateToken(user *models.User, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a bearer token and
// returns the embedded Principal.
//
// Errors: common.ErrTokenExpired when the signature is valid but the token
// has expired, common.ErrInvalidToken for anything else (bad signature,
// malformed structure, wrong algorithm).
//
// Verification is pure: role changes or account deletion do not invalidate
// already-issued tokens until they expire.
func ParseToken(tokenString string, secretKey []byte) (*Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Principal{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
