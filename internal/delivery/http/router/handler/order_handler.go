package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"localfarm/internal/delivery/http/response"
	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/infra/metrics"
	"localfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	CustomerName   string              `json:"customer_name" validate:"required"`
	Email          string              `json:"email" validate:"required,email"`
	Phone          *string             `json:"phone"`
	Address        *string             `json:"address"`
	DeliveryMethod string              `json:"delivery_method" validate:"required"`
	Items          []*orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func parseOrderID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("order id must be an integer")
	}

	return id, nil
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// GetOrder handles GET /orders/:id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// PlaceOrder handles POST /orders.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]*usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		CustomerName:   req.CustomerName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		DeliveryMethod: entity.DeliveryMethod(req.DeliveryMethod),
		Items:          items,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	metrics.OrdersPlacedCounter.WithLabelValues(string(order.DeliveryMethod)).Inc()

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated successfully")
}
