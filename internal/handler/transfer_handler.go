package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/middleware"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// TransferHandler handles inter-account transfer HTTP requests
type TransferHandler struct {
	transferService *service.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// TransferRequest represents the create transfer request body. The amount
// binds as a JSON number or a numeric string.
type TransferRequest struct {
	DebitAccountID  *int64     `json:"idCompteDebit"`
	CreditAccountID *int64     `json:"idCompteCredit"`
	Montant         jsonAmount `json:"montant"`
	Date            *string    `json:"dateVirement"`
	CategoryID      *int64     `json:"idCategorie"`
}

// TransferPatchRequest represents the partial update body; only the mutable
// fields are accepted.
type TransferPatchRequest struct {
	Date       *string `json:"dateVirement"`
	CategoryID *int64  `json:"idCategorie"`
}

// TransferResponse represents a transfer in API responses
type TransferResponse struct {
	ID              int64  `json:"id"`
	DebitAccountID  int64  `json:"idCompteDebit"`
	CreditAccountID int64  `json:"idCompteCredit"`
	Montant         string `json:"montant"`
	Date            string `json:"dateVirement"`
	CategoryID      int64  `json:"idCategorie"`
	CreatedAt       string `json:"dateHeureCreation"`
	UpdatedAt       string `json:"dateHeureMAJ"`
}

// TransferDeletedResponse confirms a deletion, echoing the reversed amount
type TransferDeletedResponse struct {
	Message string `json:"message"`
	Montant string `json:"montant"`
}

func toTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID,
		DebitAccountID:  t.DebitAccountID,
		CreditAccountID: t.CreditAccountID,
		Montant:         t.Montant.StringFixed(2),
		Date:            t.Date.Format(dateLayout),
		CategoryID:      t.CategoryID,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
}

// GetTransfers handles GET /api/virements
func (h *TransferHandler) GetTransfers(c echo.Context) error {
	userID := middleware.GetUserID(c)
	transfers, err := h.transferService.GetTransfers(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		resp[i] = toTransferResponse(t)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetTransfer handles GET /api/virements/:idVirement
func (h *TransferHandler) GetTransfer(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idVirement", "Transfer not found")
	if !ok {
		return errResp
	}
	transfer, err := h.transferService.GetTransferByID(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTransferResponse(transfer))
}

// CreateTransfer handles POST /api/virements
func (h *TransferHandler) CreateTransfer(c echo.Context) error {
	userID := middleware.GetUserID(c)
	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	input := service.CreateTransferInput{
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Montant:         req.Montant.value,
		CategoryID:      req.CategoryID,
	}
	if req.Date != nil {
		d, ok := parseDate(*req.Date)
		if !ok {
			return NewValidationFailed(c, []string{"dateVirement must be a valid date (YYYY-MM-DD)"})
		}
		input.Date = &d
	}

	transfer, err := h.transferService.CreateTransfer(userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTransferResponse(transfer))
}

// PatchTransfer handles PATCH /api/virements/:idVirement
func (h *TransferHandler) PatchTransfer(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idVirement", "Transfer not found")
	if !ok {
		return errResp
	}

	var req TransferPatchRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	input := service.UpdateTransferInput{CategoryID: req.CategoryID}
	if req.Date != nil {
		d, ok := parseDate(*req.Date)
		if !ok {
			return NewValidationFailed(c, []string{"dateVirement must be a valid date (YYYY-MM-DD)"})
		}
		input.Date = &d
	}

	transfer, err := h.transferService.UpdateTransfer(userID, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTransferResponse(transfer))
}

// DeleteTransfer handles DELETE /api/virements/:idVirement
func (h *TransferHandler) DeleteTransfer(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idVirement", "Transfer not found")
	if !ok {
		return errResp
	}
	transfer, err := h.transferService.DeleteTransfer(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, TransferDeletedResponse{
		Message: "Transfer deleted",
		Montant: transfer.Montant.StringFixed(2),
	})
}
