package repository

import (
	"context"

	"localfarm/internal/domain/entity"
)

// TestimonialRepository is the capability behind the testimonial endpoints:
// append and full-list, nothing else. The production wiring backs it with an
// in-process store; tests use a fresh empty one. Keeping it an interface lets
// a persistent implementation replace the in-memory one without touching call
// sites.
type TestimonialRepository interface {
	// Append stores a testimonial and assigns its identifier.
	Append(ctx context.Context, testimonial *entity.Testimonial) error

	// List returns all testimonials in insertion order.
	List(ctx context.Context) ([]*entity.Testimonial, error)
}
