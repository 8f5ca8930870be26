package cart

import (
	"sync"

	"endlessvault/models"
)

// Cart holds the shopper's selections in process memory for the lifetime
// of the session. It is the sole mutator of entry quantities.
type Cart struct {
	mu      sync.RWMutex
	entries []models.CartEntry
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new entry with quantity 1. Repeat adds of the same item id
// get their own entry instead of bumping the existing one.
func (c *Cart) Add(item models.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, models.CartEntry{Item: item, Quantity: 1})
}

// Remove drops every entry matching itemID.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.Item.ID != itemID {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}

// UpdateQuantity sets the quantity on every entry matching itemID,
// clamped to a floor of 1. Dropping below the floor never removes the
// entry; removal is explicit.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries[i].Quantity = quantity
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Entries returns a snapshot copy of the cart lines.
func (c *Cart) Entries() []models.CartEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]models.CartEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// TotalPrice sums price x quantity over all entries. Items with a missing
// price count as 0.
func (c *Cart) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, e := range c.entries {
		total += e.Subtotal()
	}
	return total
}

func (c *Cart) TotalItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var count int
	for _, e := range c.entries {
		count += e.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries) == 0
}
