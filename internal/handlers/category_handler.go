package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerdash/internal/services"
)

// CategoryHandler handles expense category requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists the category tree
// @Summary     List expense categories
// @Description Root categories with their subcategories
// @Tags        categories
// @Produce     json
// @Success     200 {array}  models.ExpenseCategory "Category tree"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	roots, err := h.categoryService.ListCategoryTree()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": roots})
}
