// Package auth provides password hashing and JWT access token utilities.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/seoscribe/seoscribe/internal/model"
)

var (
	// ErrInvalidToken indicates the token is malformed or its signature is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the JWT claims embedded in access tokens.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer returns an issuer signing with the given secret.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Expiry returns the configured token lifetime.
func (i *TokenIssuer) Expiry() time.Duration {
	return i.expiry
}

// Issue signs a new access token for the user.
func (i *TokenIssuer) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:    user.Email,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning the identity it carries.
func (i *TokenIssuer) Verify(tokenString string) (*model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &model.Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}
