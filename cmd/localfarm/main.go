package main

import (
	"context"
	"log/slog"
	"os"

	"localfarm/config"
	"localfarm/internal/delivery"
	"localfarm/internal/delivery/http"
	"localfarm/internal/delivery/http/middleware"
	"localfarm/internal/delivery/http/router/handler"
	"localfarm/internal/domain/entity"
	"localfarm/internal/domain/repository"
	"localfarm/internal/domain/service"
	"localfarm/internal/infra/auth"
	logs "localfarm/internal/infra/log"
	"localfarm/internal/infra/persistence/memory"
	"localfarm/internal/infra/persistence/postgres"
	"localfarm/internal/infra/pubsub"
	"localfarm/internal/infra/qrcode"
	"localfarm/internal/infra/storage"
	"localfarm/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewFarmerApplicationRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
			newTestimonialRepository,
		),
	)
}

// newTestimonialRepository seeds the in-process store with the two launch
// testimonials shown on the storefront landing page.
func newTestimonialRepository() repository.TestimonialRepository {
	return memory.NewTestimonialRepository(
		&entity.Testimonial{
			Name:   "Sara Kebede",
			Quote:  "The produce is always so fresh, and I love supporting local farmers!",
			Avatar: "https://randomuser.me/api/portraits/women/65.jpg",
		},
		&entity.Testimonial{
			Name:   "Mekonnen Tesfaye",
			Quote:  "Finally a platform that connects us directly to customers, no middlemen!",
			Avatar: "https://randomuser.me/api/portraits/men/34.jpg",
		},
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			storage.New,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewUserService,
			impl.NewFarmerService,
			impl.NewTestimonialService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewUserHandler,
			handler.NewFarmerHandler,
			handler.NewTestimonialHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
