package repository

import (
	"context"
	"errors"

	"localfarm/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// List retrieves all orders with their items, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// Create persists an order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the order status. The caller is responsible for
	// checking transition legality first.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
}
