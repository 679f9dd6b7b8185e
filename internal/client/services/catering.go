package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanaol/canteen/internal/client/models"
)

type cateringAPI interface {
	CreateCateringEvent(ctx context.Context, event models.CateringEvent) (*models.CateringEvent, error)
	UserCateringEvents(ctx context.Context, clientName string) ([]models.CateringEvent, error)
}

// CateringService books catering events and lists a client's bookings.
type CateringService interface {
	Schedule(ctx context.Context, event models.CateringEvent) (*models.CateringEvent, error)
	UserEvents(ctx context.Context, clientName string) ([]models.CateringEvent, error)
}

type cateringService struct {
	api cateringAPI
}

func NewCateringService(api cateringAPI) CateringService {
	return &cateringService{api: api}
}

// Schedule validates the booking form before it goes to the backend,
// mirroring the required fields the mobile screen enforced.
func (s *cateringService) Schedule(ctx context.Context, event models.CateringEvent) (*models.CateringEvent, error) {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", event.Name},
		{"client_name", event.ClientName},
		{"event_date", event.EventDate},
		{"start_time", event.StartTime},
		{"end_time", event.EndTime},
		{"location", event.Location},
		{"contact_name", event.ContactName},
		{"contact_phone", event.ContactPhone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if event.GuestCount <= 0 {
		missing = append(missing, "guest_count")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if len(event.Items) == 0 {
		return nil, fmt.Errorf("at least one menu item is required")
	}

	return s.api.CreateCateringEvent(ctx, event)
}

func (s *cateringService) UserEvents(ctx context.Context, clientName string) ([]models.CateringEvent, error) {
	return s.api.UserCateringEvents(ctx, clientName)
}
