// Package auth issues and verifies the JWTs that carry a caller's role and
// owning customer, and moves the resulting identity through request contexts.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"loan-engine/internal/domain/user"
)

// Identity is the authenticated caller as seen by the access checks.
// CustomerID is zero for ADMIN users.
type Identity struct {
	UserID     uint64
	Username   string
	Role       user.Role
	CustomerID uint64
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID     uint64 `json:"user_id"`
	Role       string `json:"role"`
	CustomerID uint64 `json:"customer_id,omitempty"`
}

func GenerateToken(u *user.User, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID,
		Role:   string(u.Role),
	}
	if u.CustomerID != nil {
		claims.CustomerID = *u.CustomerID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("GenerateToken: %w", err)
	}
	return signed, nil
}

func ValidateToken(tokenString string, secret string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ValidateToken: %w", err)
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("ValidateToken: invalid token claims")
	}

	return &Identity{
		UserID:     tc.UserID,
		Username:   tc.Subject,
		Role:       user.Role(tc.Role),
		CustomerID: tc.CustomerID,
	}, nil
}
