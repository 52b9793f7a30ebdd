package client

import (
	"log"

	"kbs-store/models"
)

// Line is one catalog item plus a quantity, held client-side only.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart is an insertion-ordered set of lines keyed by item id. All mutations
// happen on a single logical thread; persistence is fire-and-forget.
type Cart struct {
	lines []Line
	store Storage
}

// NewCart loads the saved snapshot from store. A missing or corrupt snapshot
// yields an empty cart; store may be nil for a purely in-memory cart.
func NewCart(store Storage) *Cart {
	c := &Cart{store: store}
	if store != nil {
		lines, err := store.LoadCart()
		if err != nil {
			log.Println("failed to load cart snapshot:", err)
		} else {
			c.lines = lines
		}
	}
	return c
}

// Add increments the quantity when the item is already in the cart,
// otherwise appends a new line with quantity 1.
func (c *Cart) Add(item models.Item) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	})
	c.persist()
}

// Remove deletes the line for the given item id; absent ids are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// SetQuantity sets the line's quantity exactly. Zero and negative values
// clamp to removal.
func (c *Cart) SetQuantity(id string, n int) {
	if n <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = n
			c.persist()
			return
		}
	}
}

// Total is the sum of price times quantity across all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Clear() {
	c.lines = nil
	if c.store != nil {
		if err := c.store.ClearCart(); err != nil {
			log.Println("failed to clear cart snapshot:", err)
		}
	}
}

// persist writes a full snapshot after every mutation. Errors are logged and
// never roll back the in-memory state.
func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.SaveCart(c.lines); err != nil {
		log.Println("failed to save cart snapshot:", err)
	}
}
