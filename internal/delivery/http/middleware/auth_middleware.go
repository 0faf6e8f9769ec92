package middleware

import (
	"strings"

	deliverycontext "localfarm/internal/delivery/context"
	"localfarm/internal/delivery/http/response"
	"localfarm/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(string(deliverycontext.KeyUserID), claims.UserID)
		c.Set(string(deliverycontext.KeyUserRole), claims.Role)

		return next(c)
	}
}

// AuthenticatedUserID extracts the user ID set by Authenticate. The second
// return is false when the middleware did not run on this route.
func AuthenticatedUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(string(deliverycontext.KeyUserID)).(int64)

	return userID, ok
}
