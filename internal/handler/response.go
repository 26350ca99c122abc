// Package handler exposes the HTTP API: echo handlers, request/response
// shapes and the mapping from domain errors to status codes.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// ErrorResponse is the error body shape: a human message plus optional
// details (a string, or a list of field messages for validation failures).
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewValidationFailed creates a 400 response listing every violated rule
func NewValidationFailed(c echo.Context, details []string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Validation error",
		Details: details,
	})
}

// NewBadRequestError creates a 400 response
func NewBadRequestError(c echo.Context, message string, details any) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Details: details})
}

// NewUnauthorizedError creates a 401 response
func NewUnauthorizedError(c echo.Context, message string, details any) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: message, Details: details})
}

// NewNotFoundError creates a 404 response
func NewNotFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// NewConflictError creates a 409 response
func NewConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, ErrorResponse{Message: message})
}

// NewInternalError creates a 500 response
func NewInternalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}

// respondServiceError maps a service-layer error to its HTTP response:
// validation failures to 400, missing or non-owned resources to 404,
// duplicate logins and still-referenced rows to 409, anything else to a
// logged 500.
func respondServiceError(c echo.Context, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return NewValidationFailed(c, vErr.Details)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return NewNotFoundError(c, "User not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found")
	case errors.Is(err, domain.ErrSubcategoryNotFound):
		return NewNotFoundError(c, "Subcategory not found")
	case errors.Is(err, domain.ErrAccountNotFound):
		return NewNotFoundError(c, "Account not found")
	case errors.Is(err, domain.ErrThirdPartyNotFound):
		return NewNotFoundError(c, "Third party not found")
	case errors.Is(err, domain.ErrMovementNotFound):
		return NewNotFoundError(c, "Movement not found")
	case errors.Is(err, domain.ErrTransferNotFound):
		return NewNotFoundError(c, "Transfer not found")
	case errors.Is(err, domain.ErrDuplicateLogin):
		return NewConflictError(c, "Login already exists")
	case errors.Is(err, domain.ErrHasDependents):
		return NewConflictError(c, "Resource is still referenced by other records")
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled service error")
	return NewInternalError(c, "Internal server error")
}

// idParam parses a positive integer path parameter. A malformed ID answers
// the same 404 as a missing row; ok is false once the response is written.
func idParam(c echo.Context, name string, notFoundMessage string) (int64, bool, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, NewNotFoundError(c, notFoundMessage)
	}
	return id, true, nil
}
