package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"localfarm/internal/delivery/http/middleware"
	"localfarm/internal/delivery/http/response"
	"localfarm/internal/delivery/http/validator"
	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/domain/service"
	"localfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fake usecases backed by function fields so each test controls behavior.

type fakeCatalogUsecase struct {
	listFn    func(ctx context.Context) ([]*entity.Product, error)
	getFn     func(ctx context.Context, id int64) (*entity.Product, error)
	createFn  func(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error)
	updateFn  func(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error)
	deleteFn  func(ctx context.Context, id int64) error
	approveFn func(ctx context.Context, id int64) (*entity.Product, error)
	qrFn      func(ctx context.Context, id int64) ([]byte, error)
}

func (f *fakeCatalogUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return f.listFn(ctx)
}

func (f *fakeCatalogUsecase) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCatalogUsecase) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	return f.createFn(ctx, input)
}

func (f *fakeCatalogUsecase) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeCatalogUsecase) DeleteProduct(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeCatalogUsecase) ApproveProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return f.approveFn(ctx, id)
}

func (f *fakeCatalogUsecase) ShareQRCode(ctx context.Context, id int64) ([]byte, error) {
	return f.qrFn(ctx, id)
}

type fakeUserUsecase struct {
	signupFn  func(ctx context.Context, input *usecase.SignupInput) (*entity.User, error)
	loginFn   func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
	profileFn func(ctx context.Context, userID int64) (*entity.User, error)
}

func (f *fakeUserUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	return f.signupFn(ctx, input)
}

func (f *fakeUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeUserUsecase) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	return f.profileFn(ctx, userID)
}

type fakeOrderUsecase struct {
	listFn   func(ctx context.Context) ([]*entity.Order, error)
	getFn    func(ctx context.Context, id int64) (*entity.Order, error)
	placeFn  func(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error)
	statusFn func(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
}

func (f *fakeOrderUsecase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return f.listFn(ctx)
}

func (f *fakeOrderUsecase) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	return f.getFn(ctx, id)
}

func (f *fakeOrderUsecase) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	return f.placeFn(ctx, input)
}

func (f *fakeOrderUsecase) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	return f.statusFn(ctx, id, status)
}

type fakeImageStore struct {
	path string
	err  error
}

func (s *fakeImageStore) Save(_ context.Context, _ string, _ string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}

	return s.path, nil
}

type fakeTokenService struct{}

func (s *fakeTokenService) GenerateTokens(_ int64, _ entity.Role) (string, string, error) {
	return "access-token", "refresh-token", nil
}

func (s *fakeTokenService) ValidateAccessToken(tokenString string) (*service.TokenClaims, error) {
	if tokenString != "valid-token" {
		return nil, errors.New("invalid token")
	}

	return &service.TokenClaims{UserID: 7, Role: entity.RolePurchaser}, nil
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration { return time.Hour }

// newTestEcho wires an Echo instance the way the server does, minus the
// transport, so requests flow through validator and error handling.
func newTestEcho(register func(e *echo.Echo)) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
	register(e)

	return e
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return &resp
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProductHandler_ListProducts(t *testing.T) {
	image := "http://localhost:5000/uploads/a.png"
	uc := &fakeCatalogUsecase{
		listFn: func(context.Context) ([]*entity.Product, error) {
			return []*entity.Product{
				{ID: 2, Name: "Honey", Category: "Pantry", Price: decimal.NewFromInt(9), Image: &image, Approved: true},
				{ID: 1, Name: "Eggs", Category: "Dairy", Price: decimal.NewFromInt(6)},
			}, nil
		},
	}
	h := NewProductHandler(uc, &fakeImageStore{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.GET("/products", h.ListProducts) })

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	body := rec.Body.String()
	assert.Contains(t, body, `"name":"Honey"`)
	assert.Contains(t, body, `"approved":false`)
	assert.NotContains(t, body, "PasswordHash")
}

func TestProductHandler_CreateProduct_MultipartWithImage(t *testing.T) {
	var gotInput *usecase.ProductInput
	uc := &fakeCatalogUsecase{
		createFn: func(_ context.Context, input *usecase.ProductInput) (*entity.Product, error) {
			gotInput = input

			return &entity.Product{ID: 1, Name: input.Name, Category: input.Category, Price: decimal.NewFromInt(4)}, nil
		},
	}
	h := NewProductHandler(uc, &fakeImageStore{path: "/uploads/image-x.png"}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/products", h.CreateProduct) })

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("name", "Tomatoes"))
	require.NoError(t, form.WriteField("category", "Vegetables"))
	require.NoError(t, form.WriteField("price", "4.00"))
	require.NoError(t, form.WriteField("stock", "12"))
	part, err := form.CreateFormFile("image", "tomatoes.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake png bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", &buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, gotInput)
	require.NotNil(t, gotInput.Image)
	assert.Equal(t, "/uploads/image-x.png", *gotInput.Image)
}

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	h := NewProductHandler(&fakeCatalogUsecase{}, &fakeImageStore{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.GET("/products/:id", h.GetProduct) })

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidProductID.ErrorCode(), resp.Error.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	uc := &fakeCatalogUsecase{
		getFn: func(context.Context, int64) (*entity.Product, error) {
			return nil, domainerrors.ErrProductNotFound
		},
	}
	h := NewProductHandler(uc, &fakeImageStore{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.GET("/products/:id", h.GetProduct) })

	req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), resp.Error.Code)
}

func TestProductHandler_ShareQRCode_ReturnsPNG(t *testing.T) {
	uc := &fakeCatalogUsecase{
		qrFn: func(context.Context, int64) ([]byte, error) {
			return []byte("png-bytes"), nil
		},
	}
	h := NewProductHandler(uc, &fakeImageStore{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.GET("/products/:id/qrcode", h.ShareQRCode) })

	req := httptest.NewRequest(http.MethodGet, "/products/1/qrcode", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestUserHandler_Signup_ValidationRejectsBadEmail(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/api/users/signup", h.Signup) })

	body := `{"email":"not-an-email","password":"secret123","role":"purchaser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Signup_ShortPasswordAccepted(t *testing.T) {
	// No minimum password length is enforced; presence is the only check.
	uc := &fakeUserUsecase{
		signupFn: func(_ context.Context, input *usecase.SignupInput) (*entity.User, error) {
			return &entity.User{ID: 1, Email: input.Email, Role: input.Role}, nil
		},
	}
	h := NewUserHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/api/users/signup", h.Signup) })

	body := `{"email":"a@b.com","password":"x","role":"purchaser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_Signup_DuplicateEmail(t *testing.T) {
	uc := &fakeUserUsecase{
		signupFn: func(context.Context, *usecase.SignupInput) (*entity.User, error) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		},
	}
	h := NewUserHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/api/users/signup", h.Signup) })

	body := `{"email":"taken@example.com","password":"secret123","role":"purchaser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered.ErrorCode(), resp.Error.Code)
}

func TestUserHandler_Login_NeverLeaksPasswordHash(t *testing.T) {
	uc := &fakeUserUsecase{
		loginFn: func(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{
				User: &entity.User{
					ID:           1,
					Email:        "sara@example.com",
					PasswordHash: "super-secret-hash",
					Role:         entity.RolePurchaser,
				},
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			}, nil
		},
	}
	h := NewUserHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/api/users/login", h.Login) })

	body := `{"email":"sara@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access-token"`)
	assert.NotContains(t, rec.Body.String(), "super-secret-hash")
}

func TestUserHandler_GetProfile_RequiresAuth(t *testing.T) {
	uc := &fakeUserUsecase{
		profileFn: func(_ context.Context, userID int64) (*entity.User, error) {
			return &entity.User{ID: userID, Email: "sara@example.com", Role: entity.RolePurchaser}, nil
		},
	}
	h := NewUserHandler(uc, testLogger())
	authMiddleware := middleware.NewAuthMiddleware(&fakeTokenService{})
	e := newTestEcho(func(e *echo.Echo) {
		e.GET("/api/users/me", h.GetProfile, authMiddleware.Authenticate)
	})

	// no token
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// bad token
	req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token
	req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	uc := &fakeOrderUsecase{
		placeFn: func(_ context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
			return &entity.Order{
				ID:             1,
				CustomerName:   input.CustomerName,
				Email:          input.Email,
				DeliveryMethod: input.DeliveryMethod,
				Subtotal:       decimal.NewFromInt(16),
				DeliveryFee:    decimal.NewFromInt(5),
				Total:          decimal.NewFromInt(21),
				Status:         entity.OrderStatusPending,
			}, nil
		},
	}
	h := NewOrderHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/orders", h.PlaceOrder) })

	body := `{
		"customer_name": "Sara Kebede",
		"email": "sara@example.com",
		"address": "12 Market St",
		"delivery_method": "Delivery",
		"items": [{"product_id": 1, "quantity": 2}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	assert.Contains(t, rec.Body.String(), `"total":"21"`)
}

func TestOrderHandler_PlaceOrder_RejectsEmptyItems(t *testing.T) {
	h := NewOrderHandler(&fakeOrderUsecase{}, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.POST("/orders", h.PlaceOrder) })

	body := `{"customer_name":"Sara","email":"sara@example.com","delivery_method":"Pickup","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_UpdateOrderStatus_FinalStatusConflict(t *testing.T) {
	uc := &fakeOrderUsecase{
		statusFn: func(context.Context, int64, entity.OrderStatus) (*entity.Order, error) {
			return nil, domainerrors.ErrOrderStatusFinal
		},
	}
	h := NewOrderHandler(uc, testLogger())
	e := newTestEcho(func(e *echo.Echo) { e.PATCH("/orders/:id/status", h.UpdateOrderStatus) })

	body := `{"status":"cancelled"}`
	req := httptest.NewRequest(http.MethodPatch, "/orders/1/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, domainerrors.ErrOrderStatusFinal.ErrorCode(), resp.Error.Code)
}
