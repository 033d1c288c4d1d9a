package domain

import (
	"errors"
	"time"
)

var ErrFavoriteNotFound = errors.New("favorite not found")
var ErrFavoriteExists = errors.New("favorite already exists")

// Favorite pairs a display name with an external item identifier,
// scoped to the owning user.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}
