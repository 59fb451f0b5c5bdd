package orderControllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

// -------- Request Structs --------

type OrderItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type CustomerInfoInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type CreateOrderRequest struct {
	UserID       string            `json:"userId" binding:"required"`
	Items        []OrderItemInput  `json:"items" binding:"required,min=1,dive"`
	CustomerInfo CustomerInfoInput `json:"customerInfo" binding:"required"`
	TotalPrice   float64           `json:"totalPrice" binding:"gte=0"`
	OrderNumber  string            `json:"orderNumber"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// generateOrderNumber yields "{millisecond timestamp}-{3-digit suffix}".
// A collision within the same millisecond is possible and not retried; the
// unique index surfaces it as a conflict.
func generateOrderNumber() string {
	return fmt.Sprintf("%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// -------- Handlers --------

// CreateOrder snapshots the submitted line items by value. Later catalog
// price changes never reach an order that has been placed.
// POST /api/v1/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation(err.Error()))
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}

		orderNumber := req.OrderNumber
		if orderNumber == "" {
			orderNumber = generateOrderNumber()
		}

		order := models.Order{
			UserID:      req.UserID,
			OrderNumber: orderNumber,
			Items:       items,
			CustomerInfo: models.CustomerInfo{
				Name:    req.CustomerInfo.Name,
				Phone:   req.CustomerInfo.Phone,
				Email:   req.CustomerInfo.Email,
				Address: req.CustomerInfo.Address,
			},
			TotalPrice: req.TotalPrice,
			Status:     models.OrderStatusPending,
			CreatedAt:  time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create order"))
			return
		}

		broadcastOrderEvent("order_created", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/v1/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch orders"))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID looks the order up scoped to its owner; a mismatched user id
// reads the same as a missing order.
// GET /api/v1/orders/:userId/:orderId
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid order id"))
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("user_id = ? AND id = ?", userID, orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("order not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve order"))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateStatus moves an order along its lifecycle. Delivered and cancelled
// orders never change again.
// PATCH /api/v1/orders/:orderId/status
func UpdateStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid order id"))
			return
		}

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("status is required"))
			return
		}

		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid status"))
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("order not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve order"))
			return
		}

		if order.Status.Terminal() {
			apperr.Respond(c, apperr.InvalidState("order can no longer be updated"))
			return
		}
		if !order.Status.CanTransition(newStatus) {
			apperr.Respond(c, apperr.InvalidState(fmt.Sprintf("cannot move order from %s to %s", order.Status, newStatus)))
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update order status"))
			return
		}

		order.Status = newStatus
		broadcastOrderEvent("order_status_changed", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
