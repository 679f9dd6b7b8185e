package services

import (
	"context"
	"errors"
	"time"

	"github.com/sanaol/canteen/internal/client/models"
	"github.com/sethvargo/go-retry"
)

// Service-level validation errors for order placement.
var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrNoProfile  = errors.New("user profile not available")
	ErrNotTracked = errors.New("order did not reach a final status in time")
)

type orderAPI interface {
	CreateOrder(ctx context.Context, order models.OrderRequest) (*models.OrderConfirmation, error)
	Orders(ctx context.Context) ([]models.Order, error)
	OrderStatus(ctx context.Context, orderNumber string) (*models.OrderStatus, error)
	ConfirmPayment(ctx context.Context, orderNumber, method string) (*models.PaymentResult, error)
	GcashQR(ctx context.Context, orderNumber string) (*models.GcashDetails, error)
	GcashLink(ctx context.Context, orderNumber string) (*models.GcashDetails, error)
	CancelOrder(ctx context.Context, orderNumber string) error
	CreditPoints(ctx context.Context) (float64, error)
	RedeemOffer(ctx context.Context, code string) (float64, error)
}

// OrderService owns order placement and follow-up: payment, tracking,
// cancellation, and credit points.
type OrderService interface {
	// PlaceOrder builds the payload from the profile and cart lines.
	// creditPoints is clamped to the cart total, so the backend never
	// sees a discount larger than the order.
	PlaceOrder(ctx context.Context, profile *models.UserProfile, items []models.OrderItem, creditPoints float64) (*models.OrderConfirmation, error)
	History(ctx context.Context) ([]models.Order, error)
	Status(ctx context.Context, orderNumber string) (*models.OrderStatus, error)
	// Track polls the status endpoint every interval until the order
	// reaches a terminal state or ctx expires. Each update is passed to
	// onUpdate.
	Track(ctx context.Context, orderNumber string, interval time.Duration, onUpdate func(*models.OrderStatus)) (*models.OrderStatus, error)
	Pay(ctx context.Context, orderNumber, method string) (*models.PaymentResult, error)
	GcashDetails(ctx context.Context, orderNumber string) (*models.GcashDetails, error)
	Cancel(ctx context.Context, orderNumber string) error
	CreditPoints(ctx context.Context) (float64, error)
	RedeemOffer(ctx context.Context, code string) (float64, error)
}

type orderService struct {
	api orderAPI
}

func NewOrderService(api orderAPI) OrderService {
	return &orderService{api: api}
}

func (s *orderService) PlaceOrder(ctx context.Context, profile *models.UserProfile, items []models.OrderItem, creditPoints float64) (*models.OrderConfirmation, error) {
	if profile == nil {
		return nil, ErrNoProfile
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	if creditPoints < 0 {
		creditPoints = 0
	}
	if creditPoints > total {
		creditPoints = total
	}

	name := profile.Name
	if name == "" {
		name = profile.Username
	}

	return s.api.CreateOrder(ctx, models.OrderRequest{
		CustomerName:     name,
		TotalAmount:      total,
		CreditPointsUsed: creditPoints,
		Items:            items,
	})
}

func (s *orderService) History(ctx context.Context) ([]models.Order, error) {
	return s.api.Orders(ctx)
}

func (s *orderService) Status(ctx context.Context, orderNumber string) (*models.OrderStatus, error) {
	return s.api.OrderStatus(ctx, orderNumber)
}

func (s *orderService) Track(ctx context.Context, orderNumber string, interval time.Duration, onUpdate func(*models.OrderStatus)) (*models.OrderStatus, error) {
	var last *models.OrderStatus

	backoff := retry.NewConstant(interval)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		status, err := s.api.OrderStatus(ctx, orderNumber)
		if err != nil {
			// Status fetch failures end tracking; manual retry is up to
			// the caller.
			return err
		}
		last = status
		if onUpdate != nil {
			onUpdate(status)
		}
		if !status.Terminal() {
			return retry.RetryableError(ErrNotTracked)
		}
		return nil
	})
	if err != nil {
		// Deadline ran out while the order was still in flight: hand the
		// last observed status back alongside the sentinel.
		if last != nil && (errors.Is(err, ErrNotTracked) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
			return last, ErrNotTracked
		}
		return nil, err
	}
	return last, nil
}

func (s *orderService) Pay(ctx context.Context, orderNumber, method string) (*models.PaymentResult, error) {
	return s.api.ConfirmPayment(ctx, orderNumber, method)
}

// GcashDetails merges the QR and checkout-link lookups into one answer;
// either side may be missing depending on what the backend has configured.
func (s *orderService) GcashDetails(ctx context.Context, orderNumber string) (*models.GcashDetails, error) {
	qr, err := s.api.GcashQR(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	link, err := s.api.GcashLink(ctx, orderNumber)
	if err != nil {
		return qr, nil
	}
	if qr.Link == "" {
		qr.Link = link.Link
	}
	return qr, nil
}

func (s *orderService) Cancel(ctx context.Context, orderNumber string) error {
	return s.api.CancelOrder(ctx, orderNumber)
}

func (s *orderService) CreditPoints(ctx context.Context) (float64, error) {
	return s.api.CreditPoints(ctx)
}

func (s *orderService) RedeemOffer(ctx context.Context, code string) (float64, error) {
	return s.api.RedeemOffer(ctx, code)
}
