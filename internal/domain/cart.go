package domain

import "time"

// CartLine represents one product's accumulated requested quantity in the
// active cart. At most one line exists per product id.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart represents a user's shopping cart.
type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for the given user.
func NewCart(userID string) *Cart {
	return &Cart{
		UserID:    userID,
		Lines:     []CartLine{},
		UpdatedAt: time.Now().UTC(),
	}
}

// ItemCount returns the sum of quantities across all cart lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// FindLineIndex returns the index of the cart line for the given product id.
// Returns -1 if not found.
func (c *Cart) FindLineIndex(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// RemoveLine deletes the line for the given product id if present.
// Returns true if a line was removed.
func (c *Cart) RemoveLine(productID string) bool {
	i := c.FindLineIndex(productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// Clear removes all lines from the cart.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}
