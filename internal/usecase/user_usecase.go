package usecase

import (
	"context"

	"localfarm/internal/domain/entity"
)

// SignupInput carries the registration form fields. Name applies to
// purchasers, Business to vendors; whichever matches the role is kept.
type SignupInput struct {
	Name     string
	Business *string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is the result of a successful login.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines account registration and session use cases.
type UserUsecase interface {
	// Signup registers a new account. Email, password and role are required;
	// a duplicate email is rejected.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login verifies credentials and issues session tokens.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the account for an authenticated user ID.
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
}
