package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/middleware"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// AccountHandler handles account HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountRequest represents the create/update account request body. Amounts
// bind as JSON numbers or numeric strings.
type AccountRequest struct {
	Description  *string    `json:"descriptionCompte"`
	NomBanque    *string    `json:"nomBanque"`
	SoldeInitial jsonAmount `json:"soldeInitial"`
	DernierSolde jsonAmount `json:"dernierSolde"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"idUtilisateur"`
	Description  string `json:"descriptionCompte"`
	NomBanque    string `json:"nomBanque"`
	SoldeInitial string `json:"soldeInitial"`
	Solde        string `json:"solde"`
	CreatedAt    string `json:"dateHeureCreation"`
	UpdatedAt    string `json:"dateHeureMAJ"`
}

// AccountDeletedResponse confirms a deletion, echoing the removed description
type AccountDeletedResponse struct {
	Message     string `json:"message"`
	Description string `json:"descriptionCompte"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Description:  a.Description,
		NomBanque:    a.NomBanque,
		SoldeInitial: a.SoldeInitial.StringFixed(2),
		Solde:        a.DernierSolde.StringFixed(2),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

// toAccountInput converts the request to a service input, collecting decimal
// parse failures as validation details.
func toAccountInput(req AccountRequest) (service.AccountInput, []string) {
	input := service.AccountInput{
		Description:  req.Description,
		NomBanque:    req.NomBanque,
		SoldeInitial: req.SoldeInitial.value,
		DernierSolde: req.DernierSolde.value,
	}
	var details []string
	if req.SoldeInitial.invalid {
		details = append(details, "SoldeInitial must be a valid decimal number")
	}
	if req.DernierSolde.invalid {
		details = append(details, "DernierSolde must be a valid decimal number")
	}
	return input, details
}

// GetAccounts handles GET /api/comptes
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	userID := middleware.GetUserID(c)
	accounts, err := h.accountService.GetAccounts(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toAccountResponse(a)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAccount handles GET /api/comptes/:idCompte
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idCompte", "Account not found")
	if !ok {
		return errResp
	}
	account, err := h.accountService.GetAccountByID(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// CreateAccount handles POST /api/comptes
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID := middleware.GetUserID(c)
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	input, details := toAccountInput(req)
	if len(details) > 0 {
		return NewValidationFailed(c, details)
	}

	account, err := h.accountService.CreateAccount(userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// UpdateAccount handles PUT /api/comptes/:idCompte
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	return h.updateAccount(c, false)
}

// PatchAccount handles PATCH /api/comptes/:idCompte
func (h *AccountHandler) PatchAccount(c echo.Context) error {
	return h.updateAccount(c, true)
}

func (h *AccountHandler) updateAccount(c echo.Context, partial bool) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idCompte", "Account not found")
	if !ok {
		return errResp
	}

	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	input, details := toAccountInput(req)
	if len(details) > 0 {
		return NewValidationFailed(c, details)
	}

	account, err := h.accountService.UpdateAccount(userID, id, input, partial)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// DeleteAccount handles DELETE /api/comptes/:idCompte
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID := middleware.GetUserID(c)
	id, ok, errResp := idParam(c, "idCompte", "Account not found")
	if !ok {
		return errResp
	}
	account, err := h.accountService.DeleteAccount(userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, AccountDeletedResponse{
		Message:     "Account deleted",
		Description: account.Description,
	})
}
