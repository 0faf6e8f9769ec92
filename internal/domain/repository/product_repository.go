// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"localfarm/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves all products, newest identifier first. No pagination.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Create persists a new product. The store assigns ID and CreatedAt,
	// which are written back into the entity.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces name/category/price/stock/image of an existing product.
	// Returns ErrProductNotFound when the identifier does not exist.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by identifier.
	// Returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// Approve flips the approved flag to true and returns the updated row.
	// Approving an already-approved product is a state-wise no-op.
	Approve(ctx context.Context, id int64) (*entity.Product, error)
}
