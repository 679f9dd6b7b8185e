package api

import (
	"context"

	"github.com/sanaol/canteen/internal/client/models"
)

// SendFeedback submits a feedback entry. Works without authentication.
func (c *Client) SendFeedback(ctx context.Context, category, message string) (*models.Feedback, error) {
	body := models.Feedback{Category: category, Message: message}

	var created models.Feedback
	if err := c.post(ctx, "/feedback/", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Feedback lists submitted feedback entries.
func (c *Client) Feedback(ctx context.Context) ([]models.Feedback, error) {
	var entries []models.Feedback
	if err := c.get(ctx, "/feedback/", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
