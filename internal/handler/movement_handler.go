package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/middleware"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

const dateLayout = "2006-01-02"

// MovementHandler handles movement HTTP requests
type MovementHandler struct {
	movementService *service.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *service.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// MovementRequest represents the create movement request body. Amounts bind
// as JSON numbers or numeric strings, dates as YYYY-MM-DD.
type MovementRequest struct {
	Montant       jsonAmount `json:"montant"`
	Type          *string    `json:"typeMouvement"`
	Date          *string    `json:"dateMouvement"`
	AccountID     *int64     `json:"idCompte"`
	ThirdPartyID  *int64     `json:"idTiers"`
	CategoryID    *int64     `json:"idCategorie"`
	SubcategoryID *int64     `json:"idSousCategorie"`
	TransferID    *int64     `json:"idVirement"`
}

// MovementPatchRequest represents the partial update body; only the mutable
// fields are accepted.
type MovementPatchRequest struct {
	Date          *string `json:"dateMouvement"`
	CategoryID    *int64  `json:"idCategorie"`
	SubcategoryID *int64  `json:"idSousCategorie"`
}

// MovementResponse represents a movement in API responses
type MovementResponse struct {
	ID            int64  `json:"id"`
	Montant       string `json:"montant"`
	Type          string `json:"typeMouvement"`
	Date          string `json:"dateMouvement"`
	AccountID     int64  `json:"idCompte"`
	ThirdPartyID  *int64 `json:"idTiers"`
	CategoryID    int64  `json:"idCategorie"`
	SubcategoryID *int64 `json:"idSousCategorie"`
	TransferID    *int64 `json:"idVirement"`
	CreatedAt     string `json:"dateHeureCreation"`
	UpdatedAt     string `json:"dateHeureMAJ"`
}

// MovementDeletedResponse confirms a deletion, echoing the removed amount
type MovementDeletedResponse struct {
	Message string `json:"message"`
	Montant string `json:"montant"`
}

func toMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		Montant:       m.Montant.StringFixed(2),
		Type:          string(m.Type),
		Date:          m.Date.Format(dateLayout),
		AccountID:     m.AccountID,
		ThirdPartyID:  m.ThirdPartyID,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		TransferID:    m.TransferID,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     m.UpdatedAt.Format(time.RFC3339),
	}
}

// parseDate parses a YYYY-MM-DD request date in server-local time, matching
// the day-granularity comparison used by validation.
func parseDate(s string) (time.Time, bool) {
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// GetMovements handles GET /api/mouvements
func (h *MovementHandler) GetMovements(c echo.Context) error {
	userID := middleware.GetUserID(c)
	movements, err := h.movementService.GetMovements(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]MovementResponse, len(movements))
	for i, m := range movements {
		resp[i] = toMovementResponse(m)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAccountMovements handles GET /api/comptes/:idCompte/mouvements
func (h *MovementHandler) GetAccountMovements(c echo.Context) error {
	userID := middleware.GetUserID(c)
	accountID, ok, errResp := idParam(c, "idCompte", "Account not found")
	if !ok {
		return errResp
	}
	movements, err := h.movementService.GetMovementsByAccount(userID, accountID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]MovementResponse, len(movements))
	for i, m := range movements {
		resp[i] = toMovementResponse(m)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetMovement handles GET /api/mouvements/:idMouvement
func (h *MovementHandler) GetMovement(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idMouvement", "Movement not found")
	if !ok {
		return errResp
	}
	movement, err := h.movementService.GetMovementByID(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toMovementResponse(movement))
}

// CreateMovement handles POST /api/mouvements
func (h *MovementHandler) CreateMovement(c echo.Context) error {
	return h.createMovement(c, nil)
}

// CreateAccountMovement handles POST /api/comptes/:idCompte/mouvements; the
// path account overrides any idCompte in the body.
func (h *MovementHandler) CreateAccountMovement(c echo.Context) error {
	accountID, ok, errResp := idParam(c, "idCompte", "Account not found")
	if !ok {
		return errResp
	}
	return h.createMovement(c, &accountID)
}

func (h *MovementHandler) createMovement(c echo.Context, pathAccountID *int64) error {
	userID := middleware.GetUserID(c)
	var req MovementRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	// An unparseable amount binds as nil so the service reports it with
	// the same message as a missing one.
	input := service.CreateMovementInput{
		Montant:       req.Montant.value,
		Type:          req.Type,
		AccountID:     req.AccountID,
		ThirdPartyID:  req.ThirdPartyID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		TransferID:    req.TransferID,
	}
	if pathAccountID != nil {
		input.AccountID = pathAccountID
	}
	if req.Date != nil {
		d, ok := parseDate(*req.Date)
		if !ok {
			return NewValidationFailed(c, []string{"dateMouvement must be a valid date (YYYY-MM-DD)"})
		}
		input.Date = &d
	}

	movement, err := h.movementService.CreateMovement(userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toMovementResponse(movement))
}

// PatchMovement handles PATCH /api/mouvements/:idMouvement
func (h *MovementHandler) PatchMovement(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idMouvement", "Movement not found")
	if !ok {
		return errResp
	}

	var req MovementPatchRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	input := service.UpdateMovementInput{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
	}
	if req.Date != nil {
		d, ok := parseDate(*req.Date)
		if !ok {
			return NewValidationFailed(c, []string{"dateMouvement must be a valid date (YYYY-MM-DD)"})
		}
		input.Date = &d
	}

	movement, err := h.movementService.UpdateMovement(userID, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toMovementResponse(movement))
}

// DeleteMovement handles DELETE /api/mouvements/:idMouvement
func (h *MovementHandler) DeleteMovement(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idMouvement", "Movement not found")
	if !ok {
		return errResp
	}
	movement, err := h.movementService.DeleteMovement(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, MovementDeletedResponse{
		Message: "Movement deleted",
		Montant: movement.Montant.StringFixed(2),
	})
}
