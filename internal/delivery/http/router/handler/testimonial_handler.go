package handler

import (
	"log/slog"
	"net/http"

	"localfarm/internal/delivery/http/response"
	"localfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestimonialHandler holds dependencies for testimonial handlers.
type TestimonialHandler struct {
	uc     usecase.TestimonialUsecase
	logger *slog.Logger
}

// NewTestimonialHandler is the constructor for TestimonialHandler, injected by Fx.
func NewTestimonialHandler(uc usecase.TestimonialUsecase, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		uc:     uc,
		logger: logger,
	}
}

type testimonialRequest struct {
	Name   string `json:"name" validate:"required"`
	Quote  string `json:"quote" validate:"required"`
	Avatar string `json:"avatar"`
}

// ListTestimonials handles GET /testimonials.
func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTestimonialViews(testimonials), "")
}

// SubmitTestimonial handles POST /testimonials.
func (h *TestimonialHandler) SubmitTestimonial(c echo.Context) error {
	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testimonial input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	testimonial, err := h.uc.SubmitTestimonial(c.Request().Context(), &usecase.TestimonialInput{
		Name:   req.Name,
		Quote:  req.Quote,
		Avatar: req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTestimonialView(testimonial), "Testimonial submitted successfully")
}
