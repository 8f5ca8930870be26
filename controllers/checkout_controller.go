package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"endlessvault/checkout"
	"endlessvault/models"
)

type CheckoutController struct {
	Service *checkout.Service
}

// PlaceOrder validates the shipping form, builds the order from the cart
// and sends the notification email. Field errors come back keyed per
// field; an email failure tells the shopper to expect a manual follow-up.
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	var body struct {
		Address       models.Address `json:"address"`
		PaymentMethod string         `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := cc.Service.PlaceOrder(c.Request.Context(), body.Address, body.PaymentMethod)
	if err != nil {
		var fieldErrs checkout.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Your cart is empty. Please add items before placing an order.",
			})
		case errors.Is(err, checkout.ErrEmailDelivery):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Order email failed to send. We will follow up manually.",
				"orderId": order.OrderID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "There was an error processing your order. Please try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order placed successfully! You will get a confirmation call/mail, please approve once received.",
		"orderId":       order.OrderID,
		"paymentMethod": order.PaymentMethod,
		"totalItems":    order.TotalItems,
		"totalAmount":   order.TotalAmount,
	})
}

// Status exposes the checkout state machine, mostly for the UI spinner.
func (cc *CheckoutController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": cc.Service.Status()})
}
