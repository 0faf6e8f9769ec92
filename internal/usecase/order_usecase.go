package usecase

import (
	"context"

	"localfarm/internal/domain/entity"
)

// OrderItemInput is one requested product line in a new order.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// PlaceOrderInput carries the checkout form fields.
type PlaceOrderInput struct {
	CustomerName   string
	Email          string
	Phone          *string
	Address        *string
	DeliveryMethod entity.DeliveryMethod
	Items          []*OrderItemInput
}

// OrderUsecase defines order placement and fulfilment use cases.
type OrderUsecase interface {
	// ListOrders returns all orders with their items, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder returns a single order with its items.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// PlaceOrder snapshots the referenced products into a new pending order,
	// computes totals and publishes an order.created event.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// UpdateOrderStatus moves an order to delivered or cancelled. Orders in a
	// terminal status are rejected.
	UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
}
