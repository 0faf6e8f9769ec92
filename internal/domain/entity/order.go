package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the order lifecycle. Transitions are one-way:
// pending may become delivered or cancelled, both of which are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusPending {
		return false
	}

	return next == OrderStatusDelivered || next == OrderStatusCancelled
}

// DeliveryMethod is how the purchaser receives the order.
type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "Delivery"
	DeliveryMethodPickup   DeliveryMethod = "Pickup"
)

// Order is a purchase record. Line items snapshot the product name and price
// at order time so later catalog edits do not rewrite history.
type Order struct {
	ID             int64
	CustomerName   string
	Email          string
	Phone          *string
	Address        *string // Required for Delivery, nil for Pickup.
	DeliveryMethod DeliveryMethod
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal
	Status         OrderStatus
	Items          []*OrderItem
	CreatedAt      time.Time
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}
