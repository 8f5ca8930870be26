package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"endlessvault/controllers"
	"endlessvault/middleware"
)

// Deps are the wired controllers plus what the auth middleware needs.
type Deps struct {
	Auth      *controllers.AuthController
	Browse    *controllers.BrowseController
	Admin     *controllers.AdminController
	Cart      *controllers.CartController
	Checkout  *controllers.CheckoutController
	Secret    []byte
	Blacklist *mongo.Collection
}

func Register(r *gin.Engine, d Deps) {

	api := r.Group("/api")
	{
		api.POST("/login", d.Auth.Login)
		api.POST("/logout", d.Auth.Logout)

		api.GET("/items", d.Browse.List)

		api.POST("/cart", d.Cart.Add)
		api.GET("/cart", d.Cart.Get)
		api.PUT("/cart/:itemId", d.Cart.UpdateQuantity)
		api.DELETE("/cart/:itemId", d.Cart.Remove)
		api.DELETE("/cart", d.Cart.Clear)

		api.POST("/checkout", d.Checkout.PlaceOrder)
		api.GET("/checkout/status", d.Checkout.Status)

		admin := api.Group("/admin")
		admin.Use(middleware.Auth(d.Secret, d.Blacklist), middleware.AdminOnly())
		{
			admin.GET("/items", d.Admin.List)
			admin.POST("/items", d.Admin.Create)
			admin.PUT("/items/:id", d.Admin.Update)
			admin.DELETE("/items/:id", d.Admin.Delete)
		}
	}
}
