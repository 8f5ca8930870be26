package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"endlessvault/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderID:       "ORD1724900000000",
		Date:          time.Date(2025, 8, 29, 14, 30, 5, 0, time.UTC),
		PaymentMethod: "Cash on Delivery",
		Address: models.Address{
			FullName: "Arjun Mehta",
			Phone:    "9876543210",
			Street:   "42 MG Road, Flat 3B",
			City:     "Bengaluru",
			State:    "Karnataka",
			Pincode:  "560001",
		},
		Entries: []models.CartEntry{
			{Item: models.CatalogItem{UniqueID: "ab12cd3", Name: "Skyline", Brand: "Hotwheels", MRP: 500}, Quantity: 2},
			{Item: models.CatalogItem{UniqueID: "ef45gh6", Name: "Supra", Brand: "MiniGT", MRP: 1200}, Quantity: 1},
		},
		TotalItems:  3,
		TotalAmount: 2200,
	}
}

func TestCompose(t *testing.T) {
	msg := Compose(sampleOrder())

	assert.Equal(t, "ORD1724900000000", msg.OrderID)
	assert.Equal(t, "Arjun Mehta", msg.CustomerName)
	assert.Equal(t, "9876543210", msg.CustomerPhone)
	assert.Equal(t, "42 MG Road, Flat 3B, Bengaluru, Karnataka - 560001", msg.CustomerAddress)
	assert.Equal(t, "Not provided", msg.Landmark, "empty landmark gets the placeholder")
	assert.Equal(t, "Cash on Delivery", msg.PaymentMethod)
	assert.Equal(t, 3, msg.TotalItems)
	assert.Equal(t, "₹2200.00", msg.TotalAmount)
	assert.Contains(t, msg.Message, "Arjun Mehta")
}

func TestComposeKeepsProvidedLandmark(t *testing.T) {
	order := sampleOrder()
	order.Address.Landmark = "Opposite the metro station"

	assert.Equal(t, "Opposite the metro station", Compose(order).Landmark)
}

func TestComposeCartItemsBlock(t *testing.T) {
	msg := Compose(sampleOrder())

	assert.Contains(t, msg.CartItems, "1. Skyline")
	assert.Contains(t, msg.CartItems, "Brand: Hotwheels")
	assert.Contains(t, msg.CartItems, "2. Supra")
	assert.Contains(t, msg.CartItems, "ID: ef45gh6")
	assert.Contains(t, msg.CartItems, "Qty: 2")
}

func TestComposeEmptyCart(t *testing.T) {
	order := sampleOrder()
	order.Entries = nil

	assert.Equal(t, "No items in cart", Compose(order).CartItems)
}

func TestBodyContainsEveryTemplateField(t *testing.T) {
	msg := Compose(sampleOrder())
	body := msg.body()

	for _, want := range []string{
		msg.OrderID, msg.OrderDate, msg.CustomerName, msg.CustomerPhone,
		msg.CustomerAddress, msg.Landmark, msg.PaymentMethod,
		msg.TotalAmount, msg.Message,
	} {
		assert.Contains(t, body, want)
	}
}
