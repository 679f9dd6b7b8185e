// Package cart holds the in-memory cart the CLI builds an order from.
// It is the Go stand-in for the mobile app's cart reducer: plain state,
// no persistence.
package cart

import (
	"sort"
	"sync"

	"github.com/sanaol/canteen/internal/client/models"
)

// Line is one cart entry.
type Line struct {
	Item     models.MenuItem
	Quantity int
}

// Cart accumulates menu items before checkout. Safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*Line
}

func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// Add puts qty of the item into the cart, merging with an existing line.
// Non-positive quantities are ignored.
func (c *Cart) Add(item models.MenuItem, qty int) {
	if qty <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity += qty
		return
	}
	c.lines[item.ID] = &Line{Item: item, Quantity: qty}
}

// SetQuantity pins a line to qty; qty <= 0 removes the line.
func (c *Cart) SetQuantity(itemID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		delete(c.lines, itemID)
		return
	}
	if line, ok := c.lines[itemID]; ok {
		line.Quantity = qty
	}
}

// Remove drops a line entirely.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lines, itemID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*Line)
}

// Lines returns the cart contents ordered by item name.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.Name < out[j].Item.Name })
	return out
}

// Total is the client-side sum; the backend recalculates the final total.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, line := range c.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Items converts the cart into order lines for the create-order payload.
func (c *Cart) Items() []models.OrderItem {
	lines := c.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		})
	}
	return items
}
