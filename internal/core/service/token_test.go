package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_IssueVerify(t *testing.T) {
	m := NewTokenManager("secret", 0)

	token, err := m.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected userID 42, got %d", userID)
	}
}

func TestTokenManager_NoTTLMeansNoExpiry(t *testing.T) {
	m := NewTokenManager("secret", 0)

	token, err := m.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatalf("expected no exp claim, got %v", claims["exp"])
	}
}

func TestTokenManager_TTLSetsExpiry(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": float64(42),
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewTokenManager("secret", 0)
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_BadSignature(t *testing.T) {
	other := NewTokenManager("other-secret", 0)
	token, err := other.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	m := NewTokenManager("secret", 0)
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_WrongAlgorithm(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"userId": float64(42),
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewTokenManager("secret", 0)
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_MissingUserClaim(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "someone",
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewTokenManager("secret", 0)
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("secret", 0)
	if _, err := m.Verify("garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_UserBindingIsExact(t *testing.T) {
	m := NewTokenManager("secret", 0)

	tokenA, err := m.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tokenB, err := m.Issue(2)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	idA, err := m.Verify(tokenA)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	idB, err := m.Verify(tokenB)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if idA != 1 || idB != 2 {
		t.Fatalf("identifier binding broken: got %d and %d", idA, idB)
	}
}
