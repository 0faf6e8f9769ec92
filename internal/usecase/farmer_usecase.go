package usecase

import (
	"context"

	"localfarm/internal/domain/entity"
)

// FarmerApplicationInput carries the seller application form fields.
type FarmerApplicationInput struct {
	BusinessName string
	OwnerName    string
	Email        string
	Phone        *string
	City         string
	Products     string
	BankDetails  *string
	Website      *string
	Photo        *string
}

// FarmerUsecase defines seller application use cases.
type FarmerUsecase interface {
	// Apply submits a new seller application.
	Apply(ctx context.Context, input *FarmerApplicationInput) (*entity.FarmerApplication, error)

	// ListApplications returns all submitted applications, newest first.
	ListApplications(ctx context.Context) ([]*entity.FarmerApplication, error)
}
