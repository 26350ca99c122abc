package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/middleware"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthenticateRequest represents the login request body. Unlike the
// utilisateur resource, the login contract uses English field names.
type AuthenticateRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthenticateResponse represents a successful login
type AuthenticateResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"`
	User      AuthUserInfo `json:"user"`
}

// AuthUserInfo is the user summary embedded in the login response
type AuthUserInfo struct {
	ID         int64   `json:"id"`
	Login      string  `json:"login"`
	Ville      *string `json:"ville"`
	CodePostal *string `json:"postalCode"`
}

// VerifyResponse represents a successful token check
type VerifyResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// Authenticate handles POST /api/authenticate
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	if req.Login == "" || req.Password == "" {
		return NewBadRequestError(c, "Missing required fields", "Both login and password are required")
	}

	result, err := h.authService.Login(req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewUnauthorizedError(c, "Authentication failed", "User not found")
		}
		if errors.Is(err, domain.ErrInvalidPassword) {
			return NewUnauthorizedError(c, "Authentication failed", "Invalid password")
		}
		log.Error().Err(err).Str("login", req.Login).Msg("Failed to authenticate user")
		return NewInternalError(c, "Internal server error")
	}

	return c.JSON(http.StatusOK, AuthenticateResponse{
		Message:   "Authentication successful",
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User: AuthUserInfo{
			ID:         result.User.ID,
			Login:      result.User.Login,
			Ville:      result.User.Ville,
			CodePostal: result.User.CodePostal,
		},
	})
}

// Verify handles GET /api/authenticate/verify. The auth middleware has
// already validated the token by the time this runs.
func (h *AuthHandler) Verify(c echo.Context) error {
	return c.JSON(http.StatusOK, VerifyResponse{
		Message: "Token is valid",
		UserID:  middleware.GetUserID(c),
	})
}
