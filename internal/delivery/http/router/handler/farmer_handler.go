package handler

import (
	"log/slog"
	"net/http"

	"localfarm/internal/delivery/http/response"
	"localfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FarmerHandler holds dependencies for seller application handlers.
type FarmerHandler struct {
	uc     usecase.FarmerUsecase
	logger *slog.Logger
}

// NewFarmerHandler is the constructor for FarmerHandler, injected by Fx.
func NewFarmerHandler(uc usecase.FarmerUsecase, logger *slog.Logger) *FarmerHandler {
	return &FarmerHandler{
		uc:     uc,
		logger: logger,
	}
}

type farmerApplicationRequest struct {
	BusinessName string  `json:"business_name" validate:"required"`
	OwnerName    string  `json:"owner_name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone"`
	City         string  `json:"city"`
	Products     string  `json:"products"`
	BankDetails  *string `json:"bank_details"`
	Website      *string `json:"website"`
	Photo        *string `json:"photo"`
}

// Apply handles POST /farmers.
func (h *FarmerHandler) Apply(c echo.Context) error {
	var req farmerApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.uc.Apply(c.Request().Context(), &usecase.FarmerApplicationInput{
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Products:     req.Products,
		BankDetails:  req.BankDetails,
		Website:      req.Website,
		Photo:        req.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toFarmerApplicationView(application), "Application submitted successfully")
}

// ListApplications handles GET /farmers.
func (h *FarmerHandler) ListApplications(c echo.Context) error {
	applications, err := h.uc.ListApplications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFarmerApplicationViews(applications), "")
}
