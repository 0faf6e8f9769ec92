package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "localfarm/internal/delivery/context"
	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/domain/repository"
	"localfarm/internal/usecase"

	"go.uber.org/fx"
)

// farmerService implements the FarmerUsecase interface.
type farmerService struct {
	farmerRepo repository.FarmerApplicationRepository
	logger     *slog.Logger
}

// FarmerServiceParams holds dependencies for FarmerService, injected by Fx.
type FarmerServiceParams struct {
	fx.In

	FarmerRepo repository.FarmerApplicationRepository
	Logger     *slog.Logger
}

// NewFarmerService is the constructor for farmerService.
func NewFarmerService(params FarmerServiceParams) usecase.FarmerUsecase {
	return &farmerService{
		farmerRepo: params.FarmerRepo,
		logger:     params.Logger,
	}
}

func (srv *farmerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply submits a new seller application.
func (srv *farmerService) Apply(ctx context.Context, input *usecase.FarmerApplicationInput) (*entity.FarmerApplication, error) {
	if strings.TrimSpace(input.BusinessName) == "" ||
		strings.TrimSpace(input.OwnerName) == "" ||
		strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business name, owner name and email are required")
	}

	application := &entity.FarmerApplication{
		BusinessName: strings.TrimSpace(input.BusinessName),
		OwnerName:    strings.TrimSpace(input.OwnerName),
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		Phone:        input.Phone,
		City:         strings.TrimSpace(input.City),
		Products:     input.Products,
		BankDetails:  input.BankDetails,
		Website:      input.Website,
		Photo:        input.Photo,
	}

	if err := srv.farmerRepo.Create(ctx, application); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	srv.log(ctx).Info("Seller application submitted",
		slog.Int64("application_id", application.ID),
		slog.String("business", application.BusinessName),
	)

	return application, nil
}

// ListApplications returns all submitted applications, newest first.
func (srv *farmerService) ListApplications(ctx context.Context) ([]*entity.FarmerApplication, error) {
	applications, err := srv.farmerRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list applications")
	}

	return applications, nil
}
