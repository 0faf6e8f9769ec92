package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"localfarm/internal/domain/entity"
	"localfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFarmerUsecase struct {
	applyFn func(ctx context.Context, input *usecase.FarmerApplicationInput) (*entity.FarmerApplication, error)
	listFn  func(ctx context.Context) ([]*entity.FarmerApplication, error)
}

func (f *fakeFarmerUsecase) Apply(ctx context.Context, input *usecase.FarmerApplicationInput) (*entity.FarmerApplication, error) {
	return f.applyFn(ctx, input)
}

func (f *fakeFarmerUsecase) ListApplications(ctx context.Context) ([]*entity.FarmerApplication, error) {
	return f.listFn(ctx)
}

func TestFarmerHandler_Apply(t *testing.T) {
	uc := &fakeFarmerUsecase{
		applyFn: func(_ context.Context, input *usecase.FarmerApplicationInput) (*entity.FarmerApplication, error) {
			return &entity.FarmerApplication{
				ID:           1,
				BusinessName: input.BusinessName,
				OwnerName:    input.OwnerName,
				Email:        input.Email,
			}, nil
		},
	}
	h := NewFarmerHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/farmers", h.Apply) })

	body := `{"business_name":"Green Acres","owner_name":"Mekonnen","email":"farm@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/farmers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"business_name":"Green Acres"`)
}

func TestFarmerHandler_Apply_MissingBusinessName(t *testing.T) {
	h := NewFarmerHandler(&fakeFarmerUsecase{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/farmers", h.Apply) })

	body := `{"owner_name":"Mekonnen","email":"farm@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/farmers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmerHandler_ListApplications(t *testing.T) {
	uc := &fakeFarmerUsecase{
		listFn: func(context.Context) ([]*entity.FarmerApplication, error) {
			return []*entity.FarmerApplication{
				{ID: 2, BusinessName: "Second Farm"},
				{ID: 1, BusinessName: "First Farm"},
			}, nil
		},
	}
	h := NewFarmerHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.GET("/farmers", h.ListApplications) })

	req := httptest.NewRequest(http.MethodGet, "/farmers", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Second Farm")
}
