package repository

import (
	"context"

	"localfarm/internal/domain/entity"
)

// FarmerApplicationRepository defines the operations for vendor application
// persistence. Create and List address the same table; the original
// implementation read from a differently named table, which was a defect.
type FarmerApplicationRepository interface {
	// Create persists a new application. Optional fields are stored as NULL.
	Create(ctx context.Context, application *entity.FarmerApplication) error

	// List retrieves all applications, newest first.
	List(ctx context.Context) ([]*entity.FarmerApplication, error)
}
