package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/ductho-dev/ecommerce-api/controllers/order"
)

// SetupOrderRoutes registers order placement, lookups, the status lifecycle,
// and the live order feed.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/orders", orderControllers.CreateOrder(db))
		v1.GET("/orders", orderControllers.GetOrders(db))
		v1.GET("/orders/:userId/:orderId", orderControllers.GetOrderByID(db))
		v1.PATCH("/orders/:orderId/status", orderControllers.UpdateStatus(db))
	}

	r.GET("/ws/orders", orderControllers.OrderFeedHandler)
}
