package models

// MenuItem is a single orderable item from GET /menu/menu-items/.
type MenuItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image,omitempty"`
	Available bool    `json:"available"`
}

// Category is a menu grouping from GET /menu/categories/.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Notification is a backend push record from GET /notifications/.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}
