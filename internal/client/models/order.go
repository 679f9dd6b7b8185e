package models

// OrderItem is one line of an order payload.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderRequest is the payload for POST /create_order/.
type OrderRequest struct {
	CustomerName     string      `json:"customer_name"`
	TotalAmount      float64     `json:"total_amount"`
	CreditPointsUsed float64     `json:"credit_points_used"`
	Items            []OrderItem `json:"items"`
}

// OrderConfirmation is the backend's answer to a placed order. Total is the
// backend-calculated final amount, which may differ from the client-side sum.
type OrderConfirmation struct {
	OrderNumber      string  `json:"order_number"`
	Total            float64 `json:"total"`
	CreditPointsUsed float64 `json:"credit_points_used"`
}

// Order is a historical order from GET /orders/.
type Order struct {
	OrderNumber string      `json:"order_number"`
	Status      string      `json:"status"`
	Total       float64     `json:"total"`
	CreatedAt   string      `json:"created_at"`
	Items       []OrderItem `json:"items"`
}

// OrderStatus is the live status of an order from GET /orders/{n}/status/.
type OrderStatus struct {
	OrderNumber string      `json:"order_number"`
	Status      string      `json:"status"`
	StatusIndex int         `json:"status_index"`
	Total       float64     `json:"total"`
	Items       []OrderItem `json:"items"`
}

// Terminal reports whether the order has reached a state that will no
// longer change, so status polling can stop.
func (s *OrderStatus) Terminal() bool {
	switch s.Status {
	case "completed", "cancelled", "refunded":
		return true
	}
	return false
}

// PaymentResult is the answer to POST /orders/{n}/confirm_payment/.
type PaymentResult struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	Reference   string `json:"reference,omitempty"`
}

// GcashDetails carries the QR image and checkout link for GCash payments.
type GcashDetails struct {
	QRURL string `json:"qr_url,omitempty"`
	Link  string `json:"link,omitempty"`
}
