// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"localfarm/config"
	deliverycontext "localfarm/internal/delivery/context"
	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/domain/repository"
	"localfarm/internal/domain/service"
	"localfarm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo   repository.ProductRepository
	publisher     service.EventPublisher
	qrcodeService service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   params.ProductRepo,
		publisher:     params.Publisher,
		qrcodeService: params.QRCodeService,
		publicBaseURL: params.Config.HTTP.PublicBaseURL,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FormatImageURL rewrites a stored image reference for clients. Relative
// upload paths are prefixed with the public base URL; absolute URLs and nil
// pass through unchanged.
func FormatImageURL(publicBaseURL string, image *string) *string {
	if image == nil {
		return nil
	}
	if strings.HasPrefix(*image, "http://") || strings.HasPrefix(*image, "https://") {
		return image
	}

	formatted := strings.TrimSuffix(publicBaseURL, "/") + "/" + strings.TrimPrefix(*image, "/")

	return &formatted
}

func (srv *catalogService) formatProduct(product *entity.Product) *entity.Product {
	product.Image = FormatImageURL(srv.publicBaseURL, product.Image)

	return product
}

// parseProductInput coerces the raw form values into entity fields. Name and
// category must be present, price and stock must parse. Nothing else is
// checked: negative prices and stock pass through by contract.
func parseProductInput(input *usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and category are required")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a number")
	}

	stock, err := strconv.Atoi(strings.TrimSpace(input.Stock))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must be an integer")
	}

	return &entity.Product{
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
		Image:    input.Image,
	}, nil
}

// ListProducts returns the full catalog, unapproved rows included. Filtering
// by approval is a client concern.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	for _, product := range products {
		srv.formatProduct(product)
	}

	return products, nil
}

// GetProduct returns a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return srv.formatProduct(product), nil
}

// CreateProduct validates and stores a new product, always unapproved.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := parseProductInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return srv.formatProduct(product), nil
}

// UpdateProduct replaces a product's editable fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := parseProductInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	updated, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reload product")
	}

	return srv.formatProduct(updated), nil
}

// DeleteProduct removes a product.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("product_id", id))

	return nil
}

// ApproveProduct flips the approved flag and publishes a product.approved
// event. A publish failure is logged, not surfaced, since the approval has
// already committed.
func (srv *catalogService) ApproveProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to approve product")
	}

	event := &service.MarketplaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventTypeProductApproved,
		EntityID:   product.ID,
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish product.approved event",
			slog.Int64("product_id", product.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Product approved", slog.Int64("product_id", product.ID))

	return srv.formatProduct(product), nil
}

// ShareQRCode renders a QR code linking to the product's public page. The
// product must exist; the encoded URL points at the storefront detail view.
func (srv *catalogService) ShareQRCode(ctx context.Context, id int64) ([]byte, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	shareURL := fmt.Sprintf("%s/products/%d", strings.TrimSuffix(srv.publicBaseURL, "/"), product.ID)

	png, err := srv.qrcodeService.GenerateShareQR(shareURL)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate QR code")
	}

	return png, nil
}
