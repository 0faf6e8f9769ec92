package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// deliveryFee is charged on top of the subtotal for Delivery orders.
// Pickup orders pay no fee.
var deliveryFee = decimal.NewFromInt(5)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns all orders with their items, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order with its items.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return order, nil
}

func validatePlaceOrderInput(input *usecase.PlaceOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.Email) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customer name and email are required")
	}
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}
	}

	switch input.DeliveryMethod {
	case entity.DeliveryMethodDelivery:
		if input.Address == nil || strings.TrimSpace(*input.Address) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("address is required for delivery")
		}
	case entity.DeliveryMethodPickup:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("delivery method must be Delivery or Pickup")
	}

	return nil
}

// PlaceOrder snapshots the referenced products into a new pending order.
// Product lookup and order insert share one transaction so a concurrent
// product delete cannot leave a dangling reference. The order.created event
// is published after commit; a publish failure is logged, not surfaced.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerName:   strings.TrimSpace(input.CustomerName),
		Email:          strings.TrimSpace(strings.ToLower(input.Email)),
		Phone:          input.Phone,
		Address:        input.Address,
		DeliveryMethod: input.DeliveryMethod,
		Status:         entity.OrderStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		subtotal := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return err
			}

			items = append(items, &entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    line.Quantity,
			})
			subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		fee := decimal.Zero
		if order.DeliveryMethod == entity.DeliveryMethodDelivery {
			fee = deliveryFee
		}

		order.Items = items
		order.Subtotal = subtotal
		order.DeliveryFee = fee
		order.Total = subtotal.Add(fee).Round(2)

		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to place order")
	}

	event := &service.MarketplaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventTypeOrderCreated,
		EntityID:   order.ID,
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order.created event",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("order_id", order.ID),
		slog.String("total", order.Total.String()),
	)

	return order, nil
}

// UpdateOrderStatus moves an order to delivered or cancelled. Only pending
// orders may transition; anything else is rejected as final.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	if status != entity.OrderStatusDelivered && status != entity.OrderStatusCancelled {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be delivered or cancelled")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrOrderStatusFinal
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}
	order.Status = status

	srv.log(ctx).Info("Order status updated",
		slog.Int64("order_id", id),
		slog.String("status", string(status)),
	)

	return order, nil
}
