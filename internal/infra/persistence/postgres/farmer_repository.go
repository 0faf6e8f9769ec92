package postgres

import (
	"context"

	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/domain/repository"
	"localfarm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmerApplicationRepository implements repository.FarmerApplicationRepository using GORM.
type farmerApplicationRepository struct {
	db *gorm.DB
}

// NewFarmerApplicationRepository is the constructor for farmerApplicationRepository.
func NewFarmerApplicationRepository(db *gorm.DB) repository.FarmerApplicationRepository {
	return &farmerApplicationRepository{db: db}
}

// Create persists a new farmer application.
func (repo *farmerApplicationRepository) Create(ctx context.Context, application *entity.FarmerApplication) error {
	applicationM := fromFarmerApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required application fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farmer application")
	}

	application.ID = applicationM.ID
	application.CreatedAt = applicationM.CreatedAt

	return nil
}

// List retrieves all farmer applications, newest first.
func (repo *farmerApplicationRepository) List(ctx context.Context) ([]*entity.FarmerApplication, error) {
	var applicationModels []*model.FarmerApplicationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list farmer applications")
	}

	applications := make([]*entity.FarmerApplication, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toFarmerApplicationDomain(applicationM))
	}

	return applications, nil
}

// --- Mapper Functions ---

func toFarmerApplicationDomain(data *model.FarmerApplicationModel) *entity.FarmerApplication {
	if data == nil {
		return nil
	}

	return &entity.FarmerApplication{
		ID:           data.ID,
		BusinessName: data.BusinessName,
		OwnerName:    data.OwnerName,
		Email:        data.Email,
		Phone:        data.Phone,
		City:         data.City,
		Products:     data.Products,
		BankDetails:  data.BankDetails,
		Website:      data.Website,
		Photo:        data.Photo,
		CreatedAt:    data.CreatedAt,
	}
}

func fromFarmerApplicationDomain(data *entity.FarmerApplication) *model.FarmerApplicationModel {
	if data == nil {
		return nil
	}

	return &model.FarmerApplicationModel{
		ID:           data.ID,
		BusinessName: data.BusinessName,
		OwnerName:    data.OwnerName,
		Email:        data.Email,
		Phone:        data.Phone,
		City:         data.City,
		Products:     data.Products,
		BankDetails:  data.BankDetails,
		Website:      data.Website,
		Photo:        data.Photo,
	}
}
