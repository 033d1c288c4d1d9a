package ports

import (
	"context"

	"github.com/favoritos/favorites-api/internal/core/domain"
)

// AuthService implements registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserGate answers whether a user identifier extracted from a verified
// token still corresponds to an existing account.
type UserGate interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}
