package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// SubcategoryHandler handles subcategory HTTP requests, always nested under
// a parent category
type SubcategoryHandler struct {
	subcategoryService *service.SubcategoryService
}

// NewSubcategoryHandler creates a new SubcategoryHandler
func NewSubcategoryHandler(subcategoryService *service.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{subcategoryService: subcategoryService}
}

// SubcategoryRequest represents the create/update subcategory request body
type SubcategoryRequest struct {
	Nom string `json:"nomSousCategorie"`
}

// SubcategoryResponse represents a subcategory in API responses
type SubcategoryResponse struct {
	ID         int64  `json:"id"`
	Nom        string `json:"nomSousCategorie"`
	CategoryID int64  `json:"idCategorie"`
	CreatedAt  string `json:"dateHeureCreation"`
	UpdatedAt  string `json:"dateHeureMAJ"`
}

// SubcategoryDeletedResponse confirms a deletion, echoing the removed name
type SubcategoryDeletedResponse struct {
	Message string `json:"message"`
	Nom     string `json:"nomSousCategorie"`
}

func toSubcategoryResponse(s *domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:         s.ID,
		Nom:        s.Nom,
		CategoryID: s.CategoryID,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
}

// GetSubcategories handles GET /api/categories/:idCategorie/sous-categories
func (h *SubcategoryHandler) GetSubcategories(c echo.Context) error {
	categoryID, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	subs, err := h.subcategoryService.GetSubcategories(categoryID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]SubcategoryResponse, len(subs))
	for i, s := range subs {
		resp[i] = toSubcategoryResponse(s)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSubcategory handles GET /api/categories/:idCategorie/sous-categories/:idSousCategorie
func (h *SubcategoryHandler) GetSubcategory(c echo.Context) error {
	categoryID, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	id, ok, errResp := idParam(c, "idSousCategorie", "Subcategory not found")
	if !ok {
		return errResp
	}
	sub, err := h.subcategoryService.GetSubcategoryByID(categoryID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSubcategoryResponse(sub))
}

// CreateSubcategory handles POST /api/categories/:idCategorie/sous-categories
func (h *SubcategoryHandler) CreateSubcategory(c echo.Context) error {
	categoryID, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	var req SubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}
	sub, err := h.subcategoryService.CreateSubcategory(categoryID, req.Nom)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSubcategoryResponse(sub))
}

// UpdateSubcategory handles PUT /api/categories/:idCategorie/sous-categories/:idSousCategorie
func (h *SubcategoryHandler) UpdateSubcategory(c echo.Context) error {
	categoryID, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	id, ok, errResp := idParam(c, "idSousCategorie", "Subcategory not found")
	if !ok {
		return errResp
	}
	var req SubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}
	sub, err := h.subcategoryService.UpdateSubcategory(categoryID, id, req.Nom)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSubcategoryResponse(sub))
}

// DeleteSubcategory handles DELETE /api/categories/:idCategorie/sous-categories/:idSousCategorie
func (h *SubcategoryHandler) DeleteSubcategory(c echo.Context) error {
	categoryID, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	id, ok, errResp := idParam(c, "idSousCategorie", "Subcategory not found")
	if !ok {
		return errResp
	}
	sub, err := h.subcategoryService.DeleteSubcategory(categoryID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SubcategoryDeletedResponse{
		Message: "Subcategory deleted",
		Nom:     sub.Nom,
	})
}
