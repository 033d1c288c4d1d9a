package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/favoritos/favorites-api/internal/api/metrics"
	"github.com/favoritos/favorites-api/internal/core/domain"
	"github.com/favoritos/favorites-api/internal/core/ports"
)

// FavoriteHandler handles HTTP requests for the authenticated user's
// favorites. All routes sit behind the Auth middleware.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

type addFavoriteRequest struct {
	Name   string `json:"name" validate:"required"`
	ItemID string `json:"itemId" validate:"required"`
}

type favoriteResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ItemID    string `json:"itemId"`
	CreatedAt string `json:"createdAt"`
}

func toFavoriteResponse(fav *domain.Favorite) favoriteResponse {
	return favoriteResponse{
		ID:        fav.ID,
		Name:      fav.Name,
		ItemID:    fav.ItemID,
		CreatedAt: fav.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List handles GET /api/favorites.
//
// @Summary      List the authenticated user's favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   favoriteResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		metrics.FavoriteOpsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("list", "ok").Inc()
	out := make([]favoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		out = append(out, toFavoriteResponse(fav))
	}
	return c.JSON(http.StatusOK, out)
}

// Add handles POST /api/favorites.
//
// @Summary      Add a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFavoriteRequest  true  "Favorite details"
// @Success      201   {object}  favoriteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fav, err := h.service.Add(c.Request().Context(), userID, req.Name, req.ItemID)
	if err != nil {
		metrics.FavoriteOpsTotal.WithLabelValues("add", "error").Inc()
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("add", "ok").Inc()
	return c.JSON(http.StatusCreated, toFavoriteResponse(fav))
}

// Remove handles DELETE /api/favorites/:id.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Security     BearerAuth
// @Param        id  path  int  true  "Favorite ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	favoriteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid favorite id")
	}

	if err := h.service.Remove(c.Request().Context(), userID, favoriteID); err != nil {
		metrics.FavoriteOpsTotal.WithLabelValues("remove", "error").Inc()
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("remove", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}
