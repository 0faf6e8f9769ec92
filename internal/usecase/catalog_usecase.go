// Package usecase defines the application's business logic interfaces and
// their input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"localfarm/internal/domain/entity"
)

// ProductInput carries the raw form values for creating or updating a
// product. Price and Stock arrive as strings and are coerced; coercion
// failure is a validation error, but no bounds are enforced beyond that.
type ProductInput struct {
	Name     string
	Category string
	Price    string
	Stock    string
	Image    *string // Stored upload path or absolute URL, nil when absent.
}

// CatalogUsecase defines product catalog management use cases.
type CatalogUsecase interface {
	// ListProducts returns every product, approved or not, newest first.
	// Image fields are rewritten to absolute URLs.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct validates and stores a new product. The result is always
	// unapproved regardless of the input.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's editable fields. A nil input image
	// clears the stored image.
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id int64) error

	// ApproveProduct flips the product's approved flag and publishes a
	// product.approved event.
	ApproveProduct(ctx context.Context, id int64) (*entity.Product, error)

	// ShareQRCode renders a PNG QR code linking to the product's public page.
	ShareQRCode(ctx context.Context, id int64) ([]byte, error)
}
