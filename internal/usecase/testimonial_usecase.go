package usecase

import (
	"context"

	"localfarm/internal/domain/entity"
)

// TestimonialInput carries a submitted customer quote.
type TestimonialInput struct {
	Name   string
	Quote  string
	Avatar string
}

// TestimonialUsecase defines storefront testimonial use cases.
type TestimonialUsecase interface {
	// ListTestimonials returns all testimonials in insertion order.
	ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error)

	// SubmitTestimonial stores a new testimonial and returns it with its
	// assigned identifier.
	SubmitTestimonial(ctx context.Context, input *TestimonialInput) (*entity.Testimonial, error)
}
