package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/favoritos/favorites-api/internal/core/domain"
	"github.com/favoritos/favorites-api/internal/core/ports"
)

type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Insert(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	created := *fav
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, name, item_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		fav.UserID, fav.Name, fav.ItemID, fav.CreatedAt,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrFavoriteExists
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}
	return &created, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, item_id, created_at
		 FROM favorites WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*domain.Favorite{}
	for rows.Next() {
		fav := &domain.Favorite{}
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.Name, &fav.ItemID, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, favoriteID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE id = $1 AND user_id = $2`,
		favoriteID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if affected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
