package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryRequest represents the create and update category request body
type CategoryRequest struct {
	Name string `json:"name"`
}

// ReorderCategoriesRequest lists every category id in its new display order
type ReorderCategoriesRequest struct {
	IDs []int32 `json:"ids"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID         int32   `json:"id"`
	Name       string  `json:"name"`
	OrderIndex int32   `json:"orderIndex"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt"`
}

// GetCategories godoc
// @Summary List categories
// @Description List categories in display order
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListResponse[CategoryResponse]
// @Failure 401 {object} ProblemDetails
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}
	return c.JSON(http.StatusOK, listCategories(sess.Categories))
}

// CreateCategory godoc
// @Summary Create a category
// @Description Append a category to the end of the display order
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category creation request"
// @Success 201 {object} ListResponse[CategoryResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := sess.Categories.Create(c.Request().Context(), &domain.CategoryCreate{Name: req.Name}); err != nil {
		return NewDomainError(c, err, "Failed to create category")
	}

	log.Info().Str("session_id", sess.ID).Str("name", req.Name).Msg("Category created")

	return c.JSON(http.StatusCreated, listCategories(sess.Categories))
}

// UpdateCategory godoc
// @Summary Rename a category
// @Description Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category update request"
// @Success 200 {object} ListResponse[CategoryResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Name == "" {
		return NewDomainError(c, domain.ErrNameRequired, "")
	}

	if err := sess.Categories.Update(c.Request().Context(), int32(id), &domain.CategoryUpdate{Name: &req.Name}); err != nil {
		return NewDomainError(c, err, "Failed to update category")
	}

	return c.JSON(http.StatusOK, listCategories(sess.Categories))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category on the backend
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	if err := sess.Categories.Delete(c.Request().Context(), int32(id)); err != nil {
		return NewDomainError(c, err, "Failed to delete category")
	}

	return c.NoContent(http.StatusNoContent)
}

// ReorderCategories godoc
// @Summary Reorder categories
// @Description Set the display order. The list must name every category exactly once.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReorderCategoriesRequest true "Category ids in their new order"
// @Success 200 {object} ListResponse[CategoryResponse]
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /categories/reorder [post]
func (h *CategoryHandler) ReorderCategories(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	var req ReorderCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := sess.Categories.Reorder(c.Request().Context(), req.IDs); err != nil {
		return NewDomainError(c, err, "Failed to reorder categories")
	}

	log.Info().Str("session_id", sess.ID).Int("count", len(req.IDs)).Msg("Categories reordered")

	return c.JSON(http.StatusOK, listCategories(sess.Categories))
}

func listCategories(categories *store.CategoryStore) ListResponse[CategoryResponse] {
	return newListResponse(categories.Categories(), categories.Status(), toCategoryResponse)
}

func toCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID,
		Name:       category.Name,
		OrderIndex: category.OrderIndex,
		CreatedAt:  category.CreatedAt,
		UpdatedAt:  category.UpdatedAt,
	}
}
