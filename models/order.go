package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// nextStatuses encodes the status lifecycle. Delivered and cancelled have no
// outgoing edges and are terminal.
var nextStatuses = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:   {OrderStatusDelivered: true},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(s))
	if _, ok := nextStatuses[status]; !ok {
		return "", ErrInvalidOrderStatus
	}
	return status, nil
}

func (s OrderStatus) Terminal() bool {
	next, ok := nextStatuses[s]
	return ok && len(next) == 0
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return nextStatuses[s][to]
}

type CustomerInfo struct {
	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null" json:"phone"`
	Email   string `gorm:"not null" json:"email"`
	Address string `gorm:"not null" json:"address"`
}

type Order struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       string       `gorm:"not null;index" json:"user_id"`
	OrderNumber  string       `gorm:"uniqueIndex;not null" json:"order_number"`
	Items        []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CustomerInfo CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customer_info"`
	TotalPrice   float64      `gorm:"not null" json:"total_price"`
	Status       OrderStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// OrderItem is a value snapshot taken at checkout. It deliberately has no
// product foreign key so later catalog edits never reach past orders.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"order_id"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}
