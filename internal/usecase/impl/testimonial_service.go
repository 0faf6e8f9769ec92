package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "localfarm/internal/delivery/context"
	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/domain/repository"
	"localfarm/internal/usecase"

	"go.uber.org/fx"
)

// testimonialService implements the TestimonialUsecase interface.
type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	logger          *slog.Logger
}

// TestimonialServiceParams holds dependencies for TestimonialService, injected by Fx.
type TestimonialServiceParams struct {
	fx.In

	TestimonialRepo repository.TestimonialRepository
	Logger          *slog.Logger
}

// NewTestimonialService is the constructor for testimonialService.
func NewTestimonialService(params TestimonialServiceParams) usecase.TestimonialUsecase {
	return &testimonialService{
		testimonialRepo: params.TestimonialRepo,
		logger:          params.Logger,
	}
}

func (srv *testimonialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTestimonials returns all testimonials in insertion order.
func (srv *testimonialService) ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	testimonials, err := srv.testimonialRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to list testimonials")
	}

	return testimonials, nil
}

// SubmitTestimonial stores a new testimonial. Name and quote are required;
// the avatar falls back to a generic placeholder when absent.
func (srv *testimonialService) SubmitTestimonial(ctx context.Context, input *usecase.TestimonialInput) (*entity.Testimonial, error) {
	name := strings.TrimSpace(input.Name)
	quote := strings.TrimSpace(input.Quote)
	if name == "" || quote == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and quote are required")
	}

	avatar := strings.TrimSpace(input.Avatar)
	if avatar == "" {
		avatar = "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(name)
	}

	testimonial := &entity.Testimonial{
		Name:   name,
		Quote:  quote,
		Avatar: avatar,
	}

	if err := srv.testimonialRepo.Append(ctx, testimonial); err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to store testimonial")
	}

	srv.log(ctx).Info("Testimonial submitted", slog.Int64("testimonial_id", testimonial.ID))

	return testimonial, nil
}
