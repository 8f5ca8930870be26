package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"endlessvault/models"
)

// OrderMessage is the templated payload of the order-notification email.
type OrderMessage struct {
	OrderID         string
	OrderDate       string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Landmark        string
	PaymentMethod   string
	CartItems       string
	TotalItems      int
	TotalAmount     string
	Message         string
}

// Compose flattens an order into the email template fields.
func Compose(order models.Order) OrderMessage {
	addr := order.Address

	landmark := addr.Landmark
	if landmark == "" {
		landmark = "Not provided"
	}

	return OrderMessage{
		OrderID:         order.OrderID,
		OrderDate:       order.Date.Format("02/01/2006, 3:04:05 pm"),
		CustomerName:    addr.FullName,
		CustomerPhone:   addr.Phone,
		CustomerAddress: fmt.Sprintf("%s, %s, %s - %s", addr.Street, addr.City, addr.State, addr.Pincode),
		Landmark:        landmark,
		PaymentMethod:   order.PaymentMethod,
		CartItems:       formatCartItems(order.Entries),
		TotalItems:      order.TotalItems,
		TotalAmount:     fmt.Sprintf("₹%.2f", order.TotalAmount),
		Message:         fmt.Sprintf("New order received from %s. Please process this order.", addr.FullName),
	}
}

func formatCartItems(entries []models.CartEntry) string {
	if len(entries) == 0 {
		return "No items in cart"
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf(
			"%d. %s\n   Brand: %s\n   Price: ₹%g\n   Qty: %d\n   ID: %s",
			i+1, e.Item.Name, e.Item.Brand, e.Item.MRP, e.Quantity, e.Item.UniqueID,
		))
	}
	return strings.Join(lines, "\n\n")
}

func (m OrderMessage) body() string {
	return fmt.Sprintf(
		"Order ID: %s\nOrder Date: %s\n\nCustomer: %s\nPhone: %s\nAddress: %s\nLandmark: %s\n\nPayment Method: %s\n\nItems:\n%s\n\nTotal Items: %d\nTotal Amount: %s\n\n%s\n",
		m.OrderID, m.OrderDate, m.CustomerName, m.CustomerPhone, m.CustomerAddress,
		m.Landmark, m.PaymentMethod, m.CartItems, m.TotalItems, m.TotalAmount, m.Message,
	)
}

// SMTPMailer sends order notifications to the seller's inbox.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
	log    *slog.Logger
}

func NewSMTPMailer(host string, port int, username, password, from, to string, log *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
		log:    log,
	}
}

func (m *SMTPMailer) SendOrder(ctx context.Context, order models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := Compose(order)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New order %s from %s", payload.OrderID, payload.CustomerName))
	msg.SetBody("text/plain", payload.body())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}

	m.log.Info("order email sent", "orderId", payload.OrderID, "to", m.to)
	return nil
}
