package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"endlessvault/cart"
	"endlessvault/catalog"
)

// CartController mutates the session cart. Items are snapshotted from the
// catalog store at add time.
type CartController struct {
	Cart  *cart.Cart
	Store *catalog.Store
}

func (cc *CartController) Add(c *gin.Context) {
	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	for _, item := range cc.Store.Items() {
		if item.ID == body.ItemID {
			cc.Cart.Add(item)
			c.JSON(http.StatusOK, gin.H{
				"message": "Added to cart",
				"item":    item,
				"count":   cc.Cart.TotalItemCount(),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
}

func (cc *CartController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetch success",
		"entries":    cc.Cart.Entries(),
		"totalItems": cc.Cart.TotalItemCount(),
		"totalPrice": cc.Cart.TotalPrice(),
	})
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	itemID := c.Param("itemId")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	cc.Cart.UpdateQuantity(itemID, body.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Cart updated",
		"entries":    cc.Cart.Entries(),
		"totalItems": cc.Cart.TotalItemCount(),
		"totalPrice": cc.Cart.TotalPrice(),
	})
}

func (cc *CartController) Remove(c *gin.Context) {
	itemID := c.Param("itemId")
	cc.Cart.Remove(itemID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Item removed from cart",
		"itemId":     itemID,
		"totalItems": cc.Cart.TotalItemCount(),
	})
}

func (cc *CartController) Clear(c *gin.Context) {
	cc.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
