package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/favoritos/favorites-api/internal/api/middleware"
	"github.com/favoritos/favorites-api/internal/core/domain"
)

type stubFavoriteService struct {
	listFn   func(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	addFn    func(ctx context.Context, userID int64, name, itemID string) (*domain.Favorite, error)
	removeFn func(ctx context.Context, userID, favoriteID int64) error
}

func (s *stubFavoriteService) List(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	return s.listFn(ctx, userID)
}

func (s *stubFavoriteService) Add(ctx context.Context, userID int64, name, itemID string) (*domain.Favorite, error) {
	return s.addFn(ctx, userID, name, itemID)
}

func (s *stubFavoriteService) Remove(ctx context.Context, userID, favoriteID int64) error {
	return s.removeFn(ctx, userID, favoriteID)
}

func newFavContext(t *testing.T, method, path, body string, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set(middleware.ContextUserID, userID)
	}
	return c, rec
}

func TestFavoriteHandler_List(t *testing.T) {
	stub := &stubFavoriteService{
		listFn: func(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
			if userID != 5 {
				t.Fatalf("expected userID 5, got %d", userID)
			}
			return []*domain.Favorite{
				{ID: 1, UserID: 5, Name: "Thing", ItemID: "item-1", CreatedAt: time.Now()},
			}, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newFavContext(t, http.MethodGet, "/api/favorites", "", 5)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["itemId"] != "item-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestFavoriteHandler_List_NoClaims(t *testing.T) {
	stub := &stubFavoriteService{
		listFn: func(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newFavContext(t, http.MethodGet, "/api/favorites", "", 0)
	if err := h.List(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestFavoriteHandler_Add(t *testing.T) {
	stub := &stubFavoriteService{
		addFn: func(ctx context.Context, userID int64, name, itemID string) (*domain.Favorite, error) {
			if userID != 5 || name != "Thing" || itemID != "item-9" {
				t.Fatalf("unexpected args: %d %s %s", userID, name, itemID)
			}
			return &domain.Favorite{ID: 3, UserID: userID, Name: name, ItemID: itemID, CreatedAt: time.Now()}, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newFavContext(t, http.MethodPost, "/api/favorites", `{"name":"Thing","itemId":"item-9"}`, 5)
	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(3) || resp["itemId"] != "item-9" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestFavoriteHandler_Add_MissingFields(t *testing.T) {
	stub := &stubFavoriteService{
		addFn: func(ctx context.Context, userID int64, name, itemID string) (*domain.Favorite, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newFavContext(t, http.MethodPost, "/api/favorites", `{"name":"Thing"}`, 5)
	err := h.Add(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	c.Echo().HTTPErrorHandler(err, c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFavoriteHandler_Remove(t *testing.T) {
	stub := &stubFavoriteService{
		removeFn: func(ctx context.Context, userID, favoriteID int64) error {
			if userID != 5 || favoriteID != 12 {
				t.Fatalf("unexpected args: %d %d", userID, favoriteID)
			}
			return nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newFavContext(t, http.MethodDelete, "/api/favorites/12", "", 5)
	c.SetParamNames("id")
	c.SetParamValues("12")
	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestFavoriteHandler_Remove_BadID(t *testing.T) {
	stub := &stubFavoriteService{
		removeFn: func(ctx context.Context, userID, favoriteID int64) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newFavContext(t, http.MethodDelete, "/api/favorites/abc", "", 5)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Remove(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFavoriteHandler_Remove_NotFoundPropagates(t *testing.T) {
	stub := &stubFavoriteService{
		removeFn: func(ctx context.Context, userID, favoriteID int64) error {
			return domain.ErrFavoriteNotFound
		},
	}
	h := NewFavoriteHandler(stub)

	c, _ := newFavContext(t, http.MethodDelete, "/api/favorites/12", "", 5)
	c.SetParamNames("id")
	c.SetParamValues("12")
	if err := h.Remove(c); err != domain.ErrFavoriteNotFound {
		t.Fatalf("expected ErrFavoriteNotFound to propagate, got %v", err)
	}
}
