package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/middleware"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// ThirdPartyHandler handles third-party HTTP requests
type ThirdPartyHandler struct {
	thirdPartyService *service.ThirdPartyService
}

// NewThirdPartyHandler creates a new ThirdPartyHandler
func NewThirdPartyHandler(thirdPartyService *service.ThirdPartyService) *ThirdPartyHandler {
	return &ThirdPartyHandler{thirdPartyService: thirdPartyService}
}

// ThirdPartyRequest represents the create/update third party request body
type ThirdPartyRequest struct {
	Nom string `json:"nomTiers"`
}

// ThirdPartyResponse represents a third party in API responses
type ThirdPartyResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"idUtilisateur"`
	Nom       string `json:"nomTiers"`
	CreatedAt string `json:"dateHeureCreation"`
	UpdatedAt string `json:"dateHeureMAJ"`
}

// ThirdPartyDeletedResponse confirms a deletion, echoing the removed name
type ThirdPartyDeletedResponse struct {
	Message string `json:"message"`
	Nom     string `json:"nomTiers"`
}

func toThirdPartyResponse(tp *domain.ThirdParty) ThirdPartyResponse {
	return ThirdPartyResponse{
		ID:        tp.ID,
		UserID:    tp.UserID,
		Nom:       tp.Nom,
		CreatedAt: tp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tp.UpdatedAt.Format(time.RFC3339),
	}
}

// GetThirdParties handles GET /api/tiers
func (h *ThirdPartyHandler) GetThirdParties(c echo.Context) error {
	userID := middleware.GetUserID(c)
	tps, err := h.thirdPartyService.GetThirdParties(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]ThirdPartyResponse, len(tps))
	for i, tp := range tps {
		resp[i] = toThirdPartyResponse(tp)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetThirdParty handles GET /api/tiers/:idTiers
func (h *ThirdPartyHandler) GetThirdParty(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idTiers", "Third party not found")
	if !ok {
		return errResp
	}
	tp, err := h.thirdPartyService.GetThirdPartyByID(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toThirdPartyResponse(tp))
}

// CreateThirdParty handles POST /api/tiers
func (h *ThirdPartyHandler) CreateThirdParty(c echo.Context) error {
	userID := middleware.GetUserID(c)
	var req ThirdPartyRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}
	tp, err := h.thirdPartyService.CreateThirdParty(userID, req.Nom)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toThirdPartyResponse(tp))
}

// UpdateThirdParty handles PUT /api/tiers/:idTiers
func (h *ThirdPartyHandler) UpdateThirdParty(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idTiers", "Third party not found")
	if !ok {
		return errResp
	}
	var req ThirdPartyRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}
	tp, err := h.thirdPartyService.UpdateThirdParty(userID, id, req.Nom)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toThirdPartyResponse(tp))
}

// DeleteThirdParty handles DELETE /api/tiers/:idTiers
func (h *ThirdPartyHandler) DeleteThirdParty(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idTiers", "Third party not found")
	if !ok {
		return errResp
	}
	tp, err := h.thirdPartyService.DeleteThirdParty(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ThirdPartyDeletedResponse{
		Message: "Third party deleted",
		Nom:     tp.Nom,
	})
}
