// Package cart holds the per-session shopping cart state machine. Every
// structural mutation recomputes the total before the lock is released, so
// no reader ever observes fresh lines next to a stale total.
package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// Line is one cart entry for a (product, size) pair.
type Line struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Size      *string         `json:"size,omitempty"`
	Product   *models.Product `json:"product,omitempty"`
}

// Cart owns an ordered line sequence, the derived total and the slide-over
// panel visibility flag.
type Cart struct {
	mu    sync.RWMutex
	lines []*Line
	total float64
	open  bool

	// overridable in tests; defaults to time.Now
	now func() time.Time
}

func New() *Cart {
	return &Cart{now: time.Now}
}

// sizeKey normalizes the optional size for line identity.
func sizeKey(size *string) string {
	if size == nil || *size == "" {
		return "default"
	}
	return *size
}

// recalculate must be called with the write lock held. Decimal arithmetic
// keeps 29.99 × 3 at exactly 89.97.
func (c *Cart) recalculate() {
	total := decimal.Zero
	for _, line := range c.lines {
		if line.Product == nil {
			continue
		}
		price := decimal.NewFromFloat(line.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	c.total = total.Round(2).InexactFloat64()
}

// AddItem merges into an existing (product, size) line or appends a new one.
// Callers enforce the stock clamp before calling; the cart does not consult
// stock. quantity must be >= 1.
func (c *Cart) AddItem(product *models.Product, quantity int, size *string) *Line {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.ProductID == product.ID.String() && sizeKey(line.Size) == sizeKey(size) {
			line.Quantity += quantity
			c.recalculate()
			return line
		}
	}

	line := &Line{
		ID:        fmt.Sprintf("%s-%s-%d", product.ID, sizeKey(size), c.now().UnixMilli()),
		ProductID: product.ID.String(),
		Quantity:  quantity,
		Size:      size,
		Product:   product,
	}
	c.lines = append(c.lines, line)
	c.recalculate()
	return line
}

// RemoveItem deletes the line with the given id. A missing id is a no-op.
func (c *Cart) RemoveItem(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	c.recalculate()
}

// SetQuantity sets a line's quantity; zero or below removes the line.
func (c *Cart) SetQuantity(lineID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		kept := c.lines[:0]
		for _, line := range c.lines {
			if line.ID != lineID {
				kept = append(kept, line)
			}
		}
		c.lines = kept
	} else {
		for _, line := range c.lines {
			if line.ID == lineID {
				line.Quantity = quantity
				break
			}
		}
	}
	c.recalculate()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.total = 0
}

// Lines returns a snapshot of the line sequence in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Line, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

// Total is the derived sum of price × quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.total
}

// ItemCount sums the quantities across all lines (cart badge).
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// TogglePanel flips the slide-over visibility; lines and total are untouched.
func (c *Cart) TogglePanel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
	return c.open
}

func (c *Cart) OpenPanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) ClosePanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

// PanelOpen reports the slide-over visibility flag.
func (c *Cart) PanelOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.open
}

// Snapshot is the JSON shape returned by the cart endpoints.
type Snapshot struct {
	Items     []Line  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
	IsOpen    bool    `json:"is_open"`
}

// Snapshot captures lines, total, count and panel state under one read lock.
func (c *Cart) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]Line, len(c.lines))
	count := 0
	for i, line := range c.lines {
		items[i] = *line
		count += line.Quantity
	}
	return Snapshot{Items: items, Total: c.total, ItemCount: count, IsOpen: c.open}
}
