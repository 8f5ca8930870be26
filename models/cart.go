package models

// CartEntry is one line in the cart: a snapshot of the item at the time it
// was added, plus a quantity that never drops below 1.
type CartEntry struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}

func (e CartEntry) Subtotal() float64 {
	return e.Item.MRP * float64(e.Quantity)
}
