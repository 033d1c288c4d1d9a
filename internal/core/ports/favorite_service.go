package ports

import (
	"context"

	"github.com/favoritos/favorites-api/internal/core/domain"
)

// FavoriteService defines use-case operations for favorites.
type FavoriteService interface {
	List(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	Add(ctx context.Context, userID int64, name, itemID string) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, favoriteID int64) error
}
