package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sanaol/canteen/internal/client/models"
)

// CreateOrder submits a new order. Each submission carries a fresh
// idempotency key so a retried request (401 replay or a nervous double
// tap upstream) cannot create a duplicate; the backend answers 409 for a
// true duplicate.
func (c *Client) CreateOrder(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error) {
	header := http.Header{"X-Idempotency-Key": {uuid.NewString()}}

	var confirmation models.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/create_order/", nil, order, &confirmation, header); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// Orders lists the account's past orders.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderStatus fetches the live status of one order.
func (c *Client) OrderStatus(ctx context.Context, orderNumber string) (*models.OrderStatus, error) {
	var status models.OrderStatus
	if err := c.get(ctx, fmt.Sprintf("/orders/%s/status/", orderNumber), nil, &status); err != nil {
		return nil, err
	}
	if status.OrderNumber == "" {
		status.OrderNumber = orderNumber
	}
	return &status, nil
}

// ConfirmPayment marks an order as paid with the given method
// (e.g. "cash", "gcash").
func (c *Client) ConfirmPayment(ctx context.Context, orderNumber, method string) (*models.PaymentResult, error) {
	body := map[string]string{"method": method}

	var result models.PaymentResult
	if err := c.post(ctx, fmt.Sprintf("/orders/%s/confirm_payment/", orderNumber), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GcashQR fetches the GCash QR image URL for an order.
func (c *Client) GcashQR(ctx context.Context, orderNumber string) (*models.GcashDetails, error) {
	var details models.GcashDetails
	if err := c.get(ctx, fmt.Sprintf("/orders/%s/gcash_qr/", orderNumber), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// GcashLink fetches the GCash checkout link for an order.
func (c *Client) GcashLink(ctx context.Context, orderNumber string) (*models.GcashDetails, error) {
	var details models.GcashDetails
	if err := c.get(ctx, fmt.Sprintf("/orders/%s/gcash_link/", orderNumber), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// CancelOrder cancels a pending order.
func (c *Client) CancelOrder(ctx context.Context, orderNumber string) error {
	return c.delete(ctx, fmt.Sprintf("/orders/%s/cancel/", orderNumber))
}

// CreditPoints returns the account's spendable credit points.
func (c *Client) CreditPoints(ctx context.Context) (float64, error) {
	var payload struct {
		CreditPoints float64 `json:"credit_points"`
	}
	if err := c.get(ctx, "/orders/user-credit-points/", nil, &payload); err != nil {
		return 0, err
	}
	return payload.CreditPoints, nil
}

// RedeemOffer exchanges a promo code for credit points; the new balance
// comes back.
func (c *Client) RedeemOffer(ctx context.Context, code string) (float64, error) {
	body := map[string]string{"code": code}

	var payload struct {
		CreditPoints float64 `json:"credit_points"`
	}
	if err := c.post(ctx, "/orders/redeem-offer/", body, &payload); err != nil {
		return 0, err
	}
	return payload.CreditPoints, nil
}
