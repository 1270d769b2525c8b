package handler

import (
	catalogapp "github.com/Viraj-016/buyhive-marketplace/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles catalog category HTTP requests
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns all active categories
func (h *CategoryHandler) List(c *gin.Context) {
	results, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// GetBySlug returns a category by its slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	result, err := h.categoryService.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Create creates a category (staff only)
func (h *CategoryHandler) Create(c *gin.Context) {
	var input catalogapp.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.categoryService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update edits a category (staff only)
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var input catalogapp.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.CategoryID = categoryID

	result, err := h.categoryService.UpdateCategory(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an empty category (staff only)
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
