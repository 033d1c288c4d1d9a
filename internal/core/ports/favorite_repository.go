package ports

import (
	"context"

	"github.com/favoritos/favorites-api/internal/core/domain"
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	// Insert persists a new favorite and returns it with the store-assigned ID.
	// A duplicate (user, item) pair surfaces as domain.ErrFavoriteExists.
	Insert(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	// Delete removes the favorite with the given ID when it belongs to userID.
	// A missing row surfaces as domain.ErrFavoriteNotFound.
	Delete(ctx context.Context, userID, favoriteID int64) error
}
