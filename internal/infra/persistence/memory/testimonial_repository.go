// Package memory contains in-process implementations of persistence interfaces.
package memory

import (
	"context"
	"sync"

	"localfarm/internal/domain/entity"
	"localfarm/internal/domain/repository"
)

// testimonialRepository holds testimonials in process memory. Contents reset
// on restart. Identifiers are assigned as len+1; since no removal path exists
// they stay dense. The mutex makes concurrent appends safe.
type testimonialRepository struct {
	mu           sync.RWMutex
	testimonials []*entity.Testimonial
}

// NewTestimonialRepository is the constructor for testimonialRepository.
// Seed rows are assigned identifiers in order, starting at 1.
func NewTestimonialRepository(seed ...*entity.Testimonial) repository.TestimonialRepository {
	repo := &testimonialRepository{
		testimonials: make([]*entity.Testimonial, 0, len(seed)),
	}
	for _, testimonial := range seed {
		cloned := *testimonial
		cloned.ID = int64(len(repo.testimonials) + 1)
		repo.testimonials = append(repo.testimonials, &cloned)
	}

	return repo
}

// Append stores a testimonial and assigns the next identifier.
func (repo *testimonialRepository) Append(_ context.Context, testimonial *entity.Testimonial) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	testimonial.ID = int64(len(repo.testimonials) + 1)
	cloned := *testimonial
	repo.testimonials = append(repo.testimonials, &cloned)

	return nil
}

// List returns all testimonials in insertion order.
func (repo *testimonialRepository) List(_ context.Context) ([]*entity.Testimonial, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Testimonial, 0, len(repo.testimonials))
	for _, testimonial := range repo.testimonials {
		cloned := *testimonial
		out = append(out, &cloned)
	}

	return out, nil
}
