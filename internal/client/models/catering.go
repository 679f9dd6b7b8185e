package models

// CateringItem is one menu item attached to a catering event.
type CateringItem struct {
	MenuItem  string  `json:"menu_item"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes,omitempty"`
}

// CateringEvent is the payload/record for /catering-events/.
type CateringEvent struct {
	ID           int64          `json:"id,omitempty"`
	Name         string         `json:"name"`
	ClientName   string         `json:"client_name"`
	ContactName  string         `json:"contact_name"`
	ContactPhone string         `json:"contact_phone"`
	EventDate    string         `json:"event_date"`
	StartTime    string         `json:"start_time"`
	EndTime      string         `json:"end_time"`
	Location     string         `json:"location"`
	GuestCount   int            `json:"guest_count"`
	Notes        string         `json:"notes,omitempty"`
	Items        []CateringItem `json:"items"`
}

// Feedback is a record from /api/feedback/.
type Feedback struct {
	ID        int64  `json:"id,omitempty"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}
