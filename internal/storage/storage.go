package storage

import (
	"context"

	"github.com/markdown-blog-api/internal/models"
)

// Store is the persistence seam of the application. Handlers only talk to
// this interface, so the in-memory store and the Postgres store are
// interchangeable at process start.
//
// Lookup methods return (nil, nil) when the entity is absent; delete methods
// report whether a row was removed. Slug uniqueness is deliberately NOT
// enforced here; the handlers own the collision handling for article
// creation and nothing re-checks slugs on update.
type Store interface {
	// Users are part of the contract but not routed
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)

	GetArticles(ctx context.Context) ([]*models.Article, error)
	GetArticleByID(ctx context.Context, id string) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) (bool, error)

	GetCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, upd models.CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	// Versions are append-only; there is no update or delete
	GetArticleVersions(ctx context.Context, articleID string) ([]*models.ArticleVersion, error)
	CreateArticleVersion(ctx context.Context, articleID string, in models.VersionInput) (*models.ArticleVersion, error)

	GetComments(ctx context.Context, articleID string) ([]*models.Comment, error)
	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) (bool, error)

	// Counts feeds the stats endpoint
	Counts(ctx context.Context) (articles, categories, comments int, err error)
}
