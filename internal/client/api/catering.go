package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sanaol/canteen/internal/client/models"
)

// CreateCateringEvent schedules a catering event. The backend echoes the
// created record, including its assigned ID.
func (c *Client) CreateCateringEvent(ctx context.Context, event models.CateringEvent) (*models.CateringEvent, error) {
	var created models.CateringEvent
	if err := c.post(ctx, "/catering-events/", event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UserCateringEvents lists the events booked under a client name.
func (c *Client) UserCateringEvents(ctx context.Context, clientName string) ([]models.CateringEvent, error) {
	path := fmt.Sprintf("/catering-events/user-events/%s/", url.PathEscape(clientName))

	var events []models.CateringEvent
	if err := c.get(ctx, path, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
