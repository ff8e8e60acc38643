package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markdown-blog-api/internal/models"
	"github.com/markdown-blog-api/internal/storage"
	"github.com/markdown-blog-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	store storage.Store
	log   zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(store storage.Store, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		store: store,
		log:   log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:slug/comments. Comments are
// returned regardless of their approved flag; moderation is out of scope.
func (h *CommentHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	article, err := h.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to resolve article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	comments, err := h.store.GetComments(ctx, article.ID)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", article.ID).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCommentInput(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	comment, err := h.store.CreateComment(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	h.log.Info().Str("comment_id", comment.ID).Str("article_id", comment.ArticleID).Msg("Comment created")
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.DeleteComment(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("comment_id", id).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
