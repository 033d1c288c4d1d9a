package ports

import (
	"context"

	"github.com/favoritos/favorites-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user and returns it with the store-assigned ID.
	// A duplicate email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Exists reports whether a user with the given ID is present.
	Exists(ctx context.Context, id int64) (bool, error)
}
