package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/markdown-blog-api/internal/models"
	"github.com/markdown-blog-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var articleColumns = []string{
	"id", "title", "slug", "content", "excerpt", "category_id",
	"tags", "published", "reading_time", "created_at", "updated_at",
}

func TestPostgresGetArticleBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM articles WHERE slug = \\$1").
		WithArgs("hello-world").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			"art-1", "Hello World", "hello-world", "body", "excerpt", "cat-1",
			[]byte("{go,web}"), true, 3, now, now,
		))

	article, err := store.GetArticleBySlug(context.Background(), "hello-world")
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, "art-1", article.ID)
	assert.Equal(t, []string{"go", "web"}, article.Tags)
	assert.True(t, article.Published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetArticleBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	mock.ExpectQuery("SELECT (.+) FROM articles WHERE slug = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(articleColumns))

	article, err := store.GetArticleBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, article, "absent rows must surface as (nil, nil)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateArticle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO articles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	article, err := store.CreateArticle(context.Background(), models.ArticleInput{
		Title: "T", Slug: "t", Content: "c", Tags: []string{"go"}, ReadingTime: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, article.ID)
	assert.Equal(t, article.CreatedAt, article.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteArticle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	mock.ExpectExec("DELETE FROM articles WHERE id = \\$1").
		WithArgs("art-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM articles WHERE id = \\$1").
		WithArgs("art-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := store.DeleteArticle(context.Background(), "art-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteArticle(context.Background(), "art-1")
	require.NoError(t, err)
	assert.False(t, deleted, "second delete must report false")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateArticle_MergesPartial(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM articles WHERE id = \\$1").
		WithArgs("art-1").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			"art-1", "Old Title", "old-slug", "body", "", "",
			[]byte("{}"), false, 1, now, now,
		))
	mock.ExpectExec("UPDATE articles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	published := true
	article, err := store.UpdateArticle(context.Background(), "art-1", models.ArticleUpdate{
		Published: &published,
	})
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.True(t, article.Published)
	assert.Equal(t, "Old Title", article.Title, "untouched fields must survive the merge")
	assert.True(t, article.UpdatedAt.After(article.CreatedAt) || article.UpdatedAt.Equal(article.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateArticle_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	mock.ExpectQuery("SELECT (.+) FROM articles WHERE id = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(articleColumns))

	title := "t"
	article, err := store.UpdateArticle(context.Background(), "missing", models.ArticleUpdate{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, article)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateComment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO comments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	comment, err := store.CreateComment(context.Background(), models.CommentInput{
		ArticleID: "art-1", Author: "Ada", Email: "ada@example.com", Content: "hi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.Approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetArticleVersions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)
	now := time.Now()

	columns := []string{
		"id", "article_id", "title", "content", "excerpt", "category_id",
		"tags", "published", "reading_time", "created_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM article_versions WHERE article_id = \\$1").
		WithArgs("art-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("v-1", "art-1", "T", "v1", "", "", []byte("{}"), false, 1, now).
			AddRow("v-2", "art-1", "T", "v2", "", "", []byte("{}"), false, 1, now.Add(time.Minute)))

	versions, err := store.GetArticleVersions(context.Background(), "art-1")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "v1", versions[0].Content)
	assert.Equal(t, "v2", versions[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"articles", "categories", "comments"}).AddRow(3, 2, 7))

	articles, categories, comments, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, articles)
	assert.Equal(t, 2, categories)
	assert.Equal(t, 7, comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}
