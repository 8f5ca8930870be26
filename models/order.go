package models

import "time"

// Order is a transient aggregate built at checkout time. It exists only to
// feed the order-notification email and is never persisted.
type Order struct {
	OrderID       string      `json:"orderId"`
	Date          time.Time   `json:"orderDate"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Entries       []CartEntry `json:"entries"`
	TotalItems    int         `json:"totalItems"`
	TotalAmount   float64     `json:"totalAmount"`
}
