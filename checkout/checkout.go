package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"endlessvault/cart"
	"endlessvault/models"
)

type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

var (
	// ErrEmptyCart blocks submission with an informational message; the
	// mailer is never touched.
	ErrEmptyCart = errors.New("your cart is empty, please add items before placing an order")

	// ErrEmailDelivery wraps a failed order notification. The order is not
	// persisted anywhere else, so the shopper is told to expect a manual
	// follow-up.
	ErrEmailDelivery = errors.New("order notification failed")
)

// Mailer delivers the order notification to the seller.
// Consumers define this interface, not the SMTP implementation.
type Mailer interface {
	SendOrder(ctx context.Context, order models.Order) error
}

// Service runs the checkout flow: validate the shipping form and payment
// method, build the transient order aggregate from the cart, and hand it
// to the mailer. Success clears the cart; failure leaves everything
// intact for the shopper to retry by hand.
type Service struct {
	cart   *cart.Cart
	mailer Mailer
	log    *slog.Logger

	mu     sync.Mutex
	status Status
}

func New(c *cart.Cart, mailer Mailer, log *slog.Logger) *Service {
	return &Service{cart: c, mailer: mailer, log: log, status: StatusIdle}
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Service) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// PlaceOrder validates, builds the order and sends the notification.
func (s *Service) PlaceOrder(ctx context.Context, addr models.Address, paymentMethod string) (models.Order, error) {
	s.setStatus(StatusValidating)

	errs := ValidateAddress(addr)
	if msg := ValidatePayment(paymentMethod); msg != "" {
		errs["payment"] = msg
	}
	if len(errs) > 0 {
		s.setStatus(StatusIdle)
		return models.Order{}, errs
	}

	if s.cart.IsEmpty() {
		s.setStatus(StatusIdle)
		return models.Order{}, ErrEmptyCart
	}

	s.setStatus(StatusSubmitting)

	now := time.Now()
	order := models.Order{
		OrderID:       fmt.Sprintf("ORD%d", now.UnixMilli()),
		Date:          now,
		Address:       trimAddress(addr),
		PaymentMethod: paymentMethod,
		Entries:       s.cart.Entries(),
		TotalItems:    s.cart.TotalItemCount(),
		TotalAmount:   s.cart.TotalPrice(),
	}

	if err := s.mailer.SendOrder(ctx, order); err != nil {
		s.setStatus(StatusFailed)
		s.log.Error("order notification failed", "orderId", order.OrderID, "error", err)
		return order, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	s.cart.Clear()
	s.setStatus(StatusSucceeded)
	s.log.Info("order placed", "orderId", order.OrderID, "totalAmount", order.TotalAmount)
	return order, nil
}

func trimAddress(a models.Address) models.Address {
	return models.Address{
		FullName: strings.TrimSpace(a.FullName),
		Phone:    strings.TrimSpace(a.Phone),
		Street:   strings.TrimSpace(a.Street),
		City:     strings.TrimSpace(a.City),
		State:    strings.TrimSpace(a.State),
		Pincode:  strings.TrimSpace(a.Pincode),
		Landmark: strings.TrimSpace(a.Landmark),
	}
}
