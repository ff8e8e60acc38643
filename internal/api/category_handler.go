package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markdown-blog-api/internal/models"
	"github.com/markdown-blog-api/internal/service"
	"github.com/markdown-blog-api/internal/storage"
	"github.com/markdown-blog-api/internal/validation"
	"github.com/rs/zerolog"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	store storage.Store
	log   zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(store storage.Store, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		store: store,
		log:   log.With().Str("handler", "category").Logger(),
	}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.GetCategories(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")

	category, err := h.store.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("category_id", id).Msg("Failed to get category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/categories. Unlike articles, category
// creation carries no slug collision guard.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var in models.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	service.ApplyCategoryDefaults(&in)

	if errs := validation.ValidateCategoryInput(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	category, err := h.store.CreateCategory(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	h.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PATCH /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var upd models.CategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCategoryUpdate(&upd); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	category, err := h.store.UpdateCategory(c.Request.Context(), id, upd)
	if err != nil {
		h.log.Error().Err(err).Str("category_id", id).Msg("Failed to update category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/:id. Articles referencing
// the category keep their categoryId; the reference is weak.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("category_id", id).Msg("Failed to delete category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
