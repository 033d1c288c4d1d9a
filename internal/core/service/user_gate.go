package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/favoritos/favorites-api/internal/core/ports"
)

// ExistenceCache remembers recently confirmed user identifiers so the auth
// gate does not hit the store on every request. Only positive results are
// cached; a miss means "ask the store", never "user is gone".
type ExistenceCache interface {
	Seen(ctx context.Context, userID int64) (bool, error)
	Mark(ctx context.Context, userID int64) error
}

// UserGate confirms that a verified token's user still exists, consulting
// the cache before the repository.
type UserGate struct {
	repo  ports.UserRepository
	cache ExistenceCache
	log   zerolog.Logger
}

func NewUserGate(repo ports.UserRepository, cache ExistenceCache, log zerolog.Logger) *UserGate {
	return &UserGate{repo: repo, cache: cache, log: log}
}

func (g *UserGate) Exists(ctx context.Context, userID int64) (bool, error) {
	if g.cache != nil {
		hit, err := g.cache.Seen(ctx, userID)
		if err != nil {
			g.log.Warn().Err(err).Int64("user_id", userID).Msg("existence cache lookup failed")
		} else if hit {
			return true, nil
		}
	}

	exists, err := g.repo.Exists(ctx, userID)
	if err != nil {
		return false, err
	}
	if exists && g.cache != nil {
		if err := g.cache.Mark(ctx, userID); err != nil {
			g.log.Warn().Err(err).Int64("user_id", userID).Msg("existence cache write failed")
		}
	}
	return exists, nil
}

var _ ports.UserGate = (*UserGate)(nil)
