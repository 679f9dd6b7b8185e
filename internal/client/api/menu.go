package api

import (
	"context"
	"net/url"

	"github.com/sanaol/canteen/internal/client/models"
)

// MenuItems lists orderable items, optionally filtered by category. The
// endpoint works both authenticated and anonymous.
func (c *Client) MenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {category}}
	}

	var items []models.MenuItem
	if err := c.get(ctx, "/menu/menu-items/", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MenuCategories lists the menu groupings.
func (c *Client) MenuCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/menu/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Notifications lists the account's notifications. Auth required.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.get(ctx, "/notifications/", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
