package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")

// TokenManager issues and verifies HS256-signed bearer tokens carrying the
// user identifier as the "userId" claim. When ttl is zero tokens carry no
// expiry claim and remain valid until the signing secret changes.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
	}
	if m.ttl > 0 {
		claims["exp"] = time.Now().Add(m.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses raw, checks the signature against the process secret and
// returns the bound user identifier. Expired tokens yield ErrTokenExpired;
// every other failure mode (bad signature, malformed payload, wrong
// algorithm, missing claim) yields ErrTokenInvalid.
func (m *TokenManager) Verify(raw string) (int64, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !tkn.Valid {
		return 0, ErrTokenInvalid
	}

	// JSON numbers decode into float64 inside MapClaims.
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, ErrTokenInvalid
	}
	return int64(id), nil
}
