package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ductho-dev/ecommerce-api/controllers/cart"
)

// SetupCartRoutes registers the shopping cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	carts := r.Group("/api/v1/carts")
	{
		carts.GET("/:userId", cartControllers.GetCart(db))
		carts.POST("/add-to-cart", cartControllers.AddToCart(db))
		carts.POST("/update", cartControllers.UpdateQuantity(db))
		carts.POST("/remove", cartControllers.RemoveItem(db))
		carts.POST("/increase", cartControllers.IncreaseQuantity(db))
		carts.POST("/decrease", cartControllers.DecreaseQuantity(db))
		carts.POST("/clear", cartControllers.ClearCart(db))
	}
}
