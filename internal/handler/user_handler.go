package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRequest represents the create/update user request body. Pointer fields
// distinguish "absent" from "empty" for partial updates.
type UserRequest struct {
	Login      *string `json:"login"`
	MotDePasse *string `json:"motDePasse"`
	Nom        *string `json:"nomUtilisateur"`
	Prenom     *string `json:"prenomUtilisateur"`
	Ville      *string `json:"ville"`
	CodePostal *string `json:"codePostal"`
}

// UserResponse represents a user in API responses. The password hash is never
// serialized.
type UserResponse struct {
	ID         int64   `json:"id"`
	Login      string  `json:"login"`
	Nom        string  `json:"nomUtilisateur"`
	Prenom     string  `json:"prenomUtilisateur"`
	Ville      *string `json:"ville"`
	CodePostal *string `json:"codePostal"`
	CreatedAt  string  `json:"dateHeureCreation"`
	UpdatedAt  string  `json:"dateHeureMAJ"`
}

// UserDeletedResponse confirms a deletion, echoing the removed login
type UserDeletedResponse struct {
	Message string `json:"message"`
	Login   string `json:"login"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Login:      u.Login,
		Nom:        u.Nom,
		Prenom:     u.Prenom,
		Ville:      u.Ville,
		CodePostal: u.CodePostal,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}

// GetUsers handles GET /api/utilisateurs
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers()
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /api/utilisateurs/:idUtilisateur
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok, errResp := idParam(c, "idUtilisateur", "User not found")
	if !ok {
		return errResp
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// CreateUser handles POST /api/utilisateurs
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	user, err := h.userService.CreateUser(service.CreateUserInput{
		Login:      req.Login,
		MotDePasse: req.MotDePasse,
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Ville:      req.Ville,
		CodePostal: req.CodePostal,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// UpdateUser handles PUT /api/utilisateurs/:idUtilisateur
func (h *UserHandler) UpdateUser(c echo.Context) error {
	return h.updateUser(c, false)
}

// PatchUser handles PATCH /api/utilisateurs/:idUtilisateur
func (h *UserHandler) PatchUser(c echo.Context) error {
	return h.updateUser(c, true)
}

func (h *UserHandler) updateUser(c echo.Context, partial bool) error {
	id, ok, errResp := idParam(c, "idUtilisateur", "User not found")
	if !ok {
		return errResp
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}

	user, err := h.userService.UpdateUser(id, service.UpdateUserInput{
		MotDePasse: req.MotDePasse,
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Ville:      req.Ville,
		CodePostal: req.CodePostal,
	}, partial)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/utilisateurs/:idUtilisateur
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok, errResp := idParam(c, "idUtilisateur", "User not found")
	if !ok {
		return errResp
	}
	user, err := h.userService.DeleteUser(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, UserDeletedResponse{
		Message: "User deleted",
		Login:   user.Login,
	})
}
