package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bfaucher/ecureuil-backend/internal/auth"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// UserIDKey is the context key for the authenticated user's identifier.
const UserIDKey contextKey = "user_id"

type errorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Authenticate returns an Echo middleware that resolves the caller's identity
// from the Authorization bearer token and binds it to the request context.
// A missing credential is 401; a present but invalid or expired one is 403.
// Nothing below this layer trusts a user identifier supplied in a body or
// path for scoping purposes.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, errorBody{Message: "Authentication token required"})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, errorBody{Message: "Authentication token required"})
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("Token verification failed")
				return c.JSON(http.StatusForbidden, errorBody{Message: "Invalid or expired token"})
			}

			ctx := context.WithValue(c.Request().Context(), UserIDKey, claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's identifier from the context.
// Zero means the request never passed through Authenticate.
func GetUserID(c echo.Context) int64 {
	if id, ok := c.Request().Context().Value(UserIDKey).(int64); ok {
		return id
	}
	return 0
}
