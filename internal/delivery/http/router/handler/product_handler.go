// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"localfarm/internal/delivery/http/response"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/domain/service"
	"localfarm/internal/infra/metrics"
	"localfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc         usecase.CatalogUsecase
	imageStore service.ImageStore
	logger     *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, imageStore service.ImageStore, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:         uc,
		imageStore: imageStore,
		logger:     logger,
	}
}

func parseProductID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidProductID
	}

	return id, nil
}

// productInputFromForm reads the multipart product form. When an image file
// is attached it is stored and its path used; otherwise any image form value
// (an existing path or URL) is kept, and an empty one clears the image.
func (h *ProductHandler) productInputFromForm(c echo.Context) (*usecase.ProductInput, error) {
	input := &usecase.ProductInput{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Price:    c.FormValue("price"),
		Stock:    c.FormValue("stock"),
	}

	file, err := c.FormFile("image")
	if err == nil {
		src, err := file.Open()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open uploaded image")
		}
		defer func() {
			if err := src.Close(); err != nil {
				h.logger.Warn("Failed to close uploaded image", slog.Any("error", err))
			}
		}()

		path, err := h.imageStore.Save(
			c.Request().Context(),
			file.Filename,
			file.Header.Get("Content-Type"),
			src,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store uploaded image")
		}
		input.Image = &path

		return input, nil
	}

	if image := strings.TrimSpace(c.FormValue("image")); image != "" {
		input.Image = &image
	}

	return input, nil
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "")
}

// CreateProduct handles POST /products with a multipart form.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, err := h.productInputFromForm(c)
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// UpdateProduct handles PUT /products/:id with a multipart form.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	input, err := h.productInputFromForm(c)
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ApproveProduct handles PATCH /products/:id/approve.
func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.ApproveProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	metrics.ProductApprovalCounter.Inc()

	return response.Success(c, http.StatusOK, toProductView(product), "Product approved successfully")
}

// ShareQRCode handles GET /products/:id/qrcode, returning a PNG.
func (h *ProductHandler) ShareQRCode(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
