package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markdown-blog-api/internal/models"
	"github.com/markdown-blog-api/internal/service"
	"github.com/markdown-blog-api/internal/storage"
	"github.com/markdown-blog-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article and version endpoints
type ArticleHandler struct {
	store storage.Store
	log   zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(store storage.Store, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		store: store,
		log:   log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.store.GetArticles(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetArticleBySlug handles GET /api/articles/:slug
func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.store.GetArticleBySlug(c.Request.Context(), slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	service.ApplyArticleDefaults(&in)

	if errs := validation.ValidateArticleInput(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	// On slug collision, disambiguate with a time-based suffix and create
	// exactly once. Uniqueness lives here, not in the store.
	existing, err := h.store.GetArticleBySlug(ctx, in.Slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", in.Slug).Msg("Failed to check slug")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	if existing != nil {
		in.Slug = fmt.Sprintf("%s-%d", in.Slug, time.Now().UnixMilli())
	}

	article, err := h.store.CreateArticle(ctx, in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	h.log.Info().Str("article_id", article.ID).Str("slug", article.Slug).Msg("Article created")
	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PATCH /api/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := c.Param("id")

	var upd models.ArticleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticleUpdate(&upd); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	article, err := h.store.UpdateArticle(c.Request.Context(), id, upd)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to update article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /api/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.DeleteArticle(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to delete article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	h.log.Info().Str("article_id", id).Msg("Article deleted")
	c.Status(http.StatusNoContent)
}

// ListVersions handles GET /api/articles/:id/versions. The wildcard is
// registered as ":slug" (see router) but carries the article id.
func (h *ArticleHandler) ListVersions(c *gin.Context) {
	articleID := c.Param("slug")

	versions, err := h.store.GetArticleVersions(c.Request.Context(), articleID)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to list versions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch versions"})
		return
	}

	c.JSON(http.StatusOK, versions)
}

// CreateVersion handles POST /api/articles/:id/versions. The snapshot is an
// explicit follow-up call after a PATCH; the server never versions
// automatically.
func (h *ArticleHandler) CreateVersion(c *gin.Context) {
	articleID := c.Param("id")

	var in models.VersionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	service.ApplyVersionDefaults(&in)

	if errs := validation.ValidateVersionInput(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	version, err := h.store.CreateArticleVersion(c.Request.Context(), articleID, in)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to create version")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create version"})
		return
	}

	c.JSON(http.StatusCreated, version)
}
