package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/service"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	Nom string `json:"nomCategorie"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nomCategorie"`
	CreatedAt string `json:"dateHeureCreation"`
	UpdatedAt string `json:"dateHeureMAJ"`
}

// CategoryDeletedResponse confirms a deletion, echoing the removed name
type CategoryDeletedResponse struct {
	Message string `json:"message"`
	Nom     string `json:"nomCategorie"`
}

func toCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID,
		Nom:       cat.Nom,
		CreatedAt: cat.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cat.UpdatedAt.Format(time.RFC3339),
	}
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		return respondServiceError(c, err)
	}
	resp := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = toCategoryResponse(cat)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetCategory handles GET /api/categories/:idCategorie
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	cat, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}
	cat, err := h.categoryService.CreateCategory(req.Nom)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(cat))
}

// UpdateCategory handles PUT /api/categories/:idCategorie
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(c, "Invalid request body", nil)
	}
	cat, err := h.categoryService.UpdateCategory(id, req.Nom)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}

// DeleteCategory handles DELETE /api/categories/:idCategorie
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok, errResp := idParam(c, "idCategorie", "Category not found")
	if !ok {
		return errResp
	}
	cat, err := h.categoryService.DeleteCategory(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, CategoryDeletedResponse{
		Message: "Category deleted",
		Nom:     cat.Nom,
	})
}
