package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markdown-blog-api/internal/storage"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(store storage.Store, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	articleHandler := NewArticleHandler(store, log)
	categoryHandler := NewCategoryHandler(store, log)
	commentHandler := NewCommentHandler(store, log)

	// Health check
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		api.GET("/stats", statsHandler(store))

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.PATCH("/:id", articleHandler.UpdateArticle)
			articles.DELETE("/:id", articleHandler.DeleteArticle)
			articles.POST("/:id/versions", articleHandler.CreateVersion)

			// gin allows one wildcard name per position within a method
			// tree, so the GET routes all register ":slug" even though the
			// version listing receives the article id in that slot.
			articles.GET("/:slug", articleHandler.GetArticleBySlug)
			articles.GET("/:slug/comments", commentHandler.ListComments)
			articles.GET("/:slug/versions", articleHandler.ListVersions)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PATCH("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		api.POST("/comments", commentHandler.CreateComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "markdown-blog-api",
	})
}

// statsHandler returns entity counts
func statsHandler(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, categories, comments, err := store.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"articles":   articles,
			"categories": categories,
			"comments":   comments,
			"timestamp":  time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
