package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"localfarm/internal/domain/entity"
	domainerrors "localfarm/internal/domain/errors"
	"localfarm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserService(userRepo *fakeUserRepo) (usecase.UserUsecase, *fakeHasher, *fakeTokenService) {
	hasher := &fakeHasher{}
	tokenService := &fakeTokenService{}
	txManager := &fakeTxManager{userRepo: userRepo}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return service, hasher, tokenService
}

func TestUserService_Signup_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	service, _, _ := createTestUserService(userRepo)

	user, err := service.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Sara Kebede",
		Email:    "Sara@Example.com",
		Password: "secret123",
		Role:     entity.RolePurchaser,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "sara@example.com", user.Email, "email is normalized to lower case")
	assert.Equal(t, "hashed:secret123", user.PasswordHash)
	assert.Equal(t, entity.RolePurchaser, user.Role)
}

func TestUserService_Signup_VendorKeepsBusinessName(t *testing.T) {
	service, _, _ := createTestUserService(newFakeUserRepo())

	user, err := service.Signup(context.Background(), &usecase.SignupInput{
		Business: strPtr("Green Acres Farm"),
		Email:    "farm@example.com",
		Password: "secret123",
		Role:     entity.RoleVendor,
	})
	require.NoError(t, err)
	require.NotNil(t, user.Business)
	assert.Equal(t, "Green Acres Farm", *user.Business)
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	service, _, _ := createTestUserService(newFakeUserRepo())

	cases := []*usecase.SignupInput{
		{Password: "x", Role: entity.RolePurchaser},
		{Email: "a@b.c", Role: entity.RolePurchaser},
		{Email: "a@b.c", Password: "x"},
	}
	for _, input := range cases {
		_, err := service.Signup(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredFields)
	}
}

func TestUserService_Signup_RoleStoredAsGiven(t *testing.T) {
	// Role is a free-form string at the data layer, not checked against a
	// fixed set.
	service, _, _ := createTestUserService(newFakeUserRepo())

	user, err := service.Signup(context.Background(), &usecase.SignupInput{
		Email:    "a@b.c",
		Password: "x",
		Role:     entity.Role("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Role("admin"), user.Role)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{Email: "taken@example.com"})
	service, _, _ := createTestUserService(userRepo)

	_, err := service.Signup(context.Background(), &usecase.SignupInput{
		Email:    "taken@example.com",
		Password: "secret123",
		Role:     entity.RolePurchaser,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Signup_HashFailure(t *testing.T) {
	service, hasher, _ := createTestUserService(newFakeUserRepo())
	hasher.err = assert.AnError

	_, err := service.Signup(context.Background(), &usecase.SignupInput{
		Email:    "a@b.c",
		Password: "secret123",
		Role:     entity.RolePurchaser,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{
		Email:        "sara@example.com",
		PasswordHash: "hashed:secret123",
		Role:         entity.RolePurchaser,
	})
	service, _, _ := createTestUserService(userRepo)

	out, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "sara@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, int64(1), out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{
		Email:        "sara@example.com",
		PasswordHash: "hashed:secret123",
	})
	service, _, _ := createTestUserService(userRepo)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "sara@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, _, _ := createTestUserService(newFakeUserRepo())

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "secret123",
	})
	// same error as wrong password, no account enumeration
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{Email: "sara@example.com"})
	service, _, _ := createTestUserService(userRepo)

	user, err := service.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "sara@example.com", user.Email)

	_, err = service.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
