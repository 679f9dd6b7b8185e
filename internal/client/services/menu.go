package services

import (
	"context"

	"github.com/sanaol/canteen/internal/client/credentials"
	"github.com/sanaol/canteen/internal/client/models"
)

type menuAPI interface {
	MenuItems(ctx context.Context, category string) ([]models.MenuItem, error)
	MenuCategories(ctx context.Context) ([]models.Category, error)
}

// MenuService wraps menu browsing plus the local "new items" check the
// mobile app used for its lightweight notification.
type MenuService interface {
	Items(ctx context.Context, category string) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]models.Category, error)
	// CheckNewItems fetches the menu, compares its size against the last
	// seen count, stores the new count, and reports how many items were
	// added since the previous check (0 on first run).
	CheckNewItems(ctx context.Context) (int, error)
}

type menuService struct {
	api   menuAPI
	store *credentials.Store
}

func NewMenuService(api menuAPI, store *credentials.Store) MenuService {
	return &menuService{api: api, store: store}
}

func (s *menuService) Items(ctx context.Context, category string) ([]models.MenuItem, error) {
	return s.api.MenuItems(ctx, category)
}

func (s *menuService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.MenuCategories(ctx)
}

func (s *menuService) CheckNewItems(ctx context.Context) (int, error) {
	items, err := s.api.MenuItems(ctx, "")
	if err != nil {
		return 0, err
	}

	last, err := s.store.LastMenuCount(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.store.SetLastMenuCount(ctx, len(items)); err != nil {
		return 0, err
	}

	// First run: nothing to compare against.
	if last == 0 || len(items) <= last {
		return 0, nil
	}
	return len(items) - last, nil
}
