package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/favoritos/favorites-api/internal/api/metrics"
	"github.com/favoritos/favorites-api/internal/core/ports"
	"github.com/favoritos/favorites-api/internal/core/service"
)

const bearerPrefix = "Bearer "

// ContextUserID is the echo context key the verified user identifier is
// stored under.
const ContextUserID = "userId"

// Auth validates the bearer token and injects the bound user identifier
// into the request context. Rejection outcomes, checked in order:
//
//	no Authorization header          → 403
//	header without "Bearer " prefix  → 400
//	"Bearer " with empty remainder   → 400
//	expired token                    → 401
//	any other verification failure   → 401
//	verified but user no longer kept → 401
//
// gate may be nil, in which case the signature alone authorises the request.
func Auth(verifier ports.TokenVerifier, gate ports.UserGate, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "missing token")
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_scheme").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "malformed authorization scheme")
			}

			raw := strings.TrimSpace(header[len(bearerPrefix):])
			if raw == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("empty").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "empty bearer token")
			}

			userID, err := verifier.Verify(raw)
			if err != nil {
				if errors.Is(err, service.ErrTokenExpired) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				log.Debug().Err(err).Msg("token verification failed")
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if gate != nil {
				exists, err := gate.Exists(c.Request().Context(), userID)
				if err != nil {
					// Fail open: the signature already verified and the
					// store being down must not lock every client out.
					log.Warn().Err(err).Int64("user_id", userID).Msg("user existence check failed")
				} else if !exists {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
