package service

import (
	"context"
	"time"

	"github.com/favoritos/favorites-api/internal/core/domain"
	"github.com/favoritos/favorites-api/internal/core/ports"
)

// FavoriteService implements the favorites use cases. All operations are
// scoped to the authenticated user's identifier; a favorite belonging to
// another user is indistinguishable from a missing one.
type FavoriteService struct {
	repo ports.FavoriteRepository
}

func NewFavoriteService(repo ports.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *FavoriteService) Add(ctx context.Context, userID int64, name, itemID string) (*domain.Favorite, error) {
	fav := &domain.Favorite{
		UserID:    userID,
		Name:      name,
		ItemID:    itemID,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, fav)
}

func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID int64) error {
	return s.repo.Delete(ctx, userID, favoriteID)
}
