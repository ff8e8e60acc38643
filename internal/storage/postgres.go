package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/markdown-blog-api/internal/models"
)

// PostgresStore is the table-backed Store implementation. It keeps the same
// contract as MemoryStore: (nil, nil) for absent rows, no slug enforcement,
// no cascading deletes.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Store backed by PostgreSQL
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const articleColumns = `id, title, slug, content, excerpt, category_id, tags, published, reading_time, created_at, updated_at`

func scanArticle(row interface{ Scan(...interface{}) error }) (*models.Article, error) {
	var a models.Article
	var tags pq.StringArray
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt, &a.CategoryID,
		&tags, &a.Published, &a.ReadingTime, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.Tags = []string(tags)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	user := &models.User{
		ID:       uuid.NewString(),
		Username: in.Username,
		Password: in.Password,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.Password,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStore) GetArticles(ctx context.Context) ([]*models.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (s *PostgresStore) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

func (s *PostgresStore) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	return scanArticle(row)
}

func (s *PostgresStore) CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	now := time.Now().UTC()
	article := &models.Article{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        in.Slug,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		CategoryID:  in.CategoryID,
		Tags:        append([]string{}, in.Tags...),
		Published:   in.Published,
		ReadingTime: in.ReadingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, slug, content, excerpt, category_id, tags, published, reading_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		article.ID, article.Title, article.Slug, article.Content, article.Excerpt,
		article.CategoryID, pq.Array(article.Tags), article.Published,
		article.ReadingTime, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *PostgresStore) UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	existing, err := s.GetArticleByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	updated := *existing
	if upd.Title != nil {
		updated.Title = *upd.Title
	}
	if upd.Slug != nil {
		updated.Slug = *upd.Slug
	}
	if upd.Content != nil {
		updated.Content = *upd.Content
	}
	if upd.Excerpt != nil {
		updated.Excerpt = *upd.Excerpt
	}
	if upd.CategoryID != nil {
		updated.CategoryID = *upd.CategoryID
	}
	if upd.Tags != nil {
		updated.Tags = append([]string{}, (*upd.Tags)...)
	}
	if upd.Published != nil {
		updated.Published = *upd.Published
	}
	if upd.ReadingTime != nil {
		updated.ReadingTime = *upd.ReadingTime
	}
	updated.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE articles
		SET title = $2, slug = $3, content = $4, excerpt = $5, category_id = $6,
		    tags = $7, published = $8, reading_time = $9, updated_at = $10
		WHERE id = $1`,
		updated.ID, updated.Title, updated.Slug, updated.Content, updated.Excerpt,
		updated.CategoryID, pq.Array(updated.Tags), updated.Published,
		updated.ReadingTime, updated.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteArticle(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (s *PostgresStore) GetCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, slug, color FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, slug, color FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	category := &models.Category{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Slug:  in.Slug,
		Color: in.Color,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, color, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Slug, category.Color, time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *PostgresStore) UpdateCategory(ctx context.Context, id string, upd models.CategoryUpdate) (*models.Category, error) {
	existing, err := s.GetCategoryByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	updated := *existing
	if upd.Name != nil {
		updated.Name = *upd.Name
	}
	if upd.Slug != nil {
		updated.Slug = *upd.Slug
	}
	if upd.Color != nil {
		updated.Color = *upd.Color
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE categories SET name = $2, slug = $3, color = $4 WHERE id = $1`,
		updated.ID, updated.Name, updated.Slug, updated.Color,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (s *PostgresStore) GetArticleVersions(ctx context.Context, articleID string) ([]*models.ArticleVersion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, article_id, title, content, excerpt, category_id, tags, published, reading_time, created_at
		FROM article_versions WHERE article_id = $1 ORDER BY created_at`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := make([]*models.ArticleVersion, 0)
	for rows.Next() {
		var v models.ArticleVersion
		var tags pq.StringArray
		err := rows.Scan(
			&v.ID, &v.ArticleID, &v.Title, &v.Content, &v.Excerpt, &v.CategoryID,
			&tags, &v.Published, &v.ReadingTime, &v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		v.Tags = []string(tags)
		if v.Tags == nil {
			v.Tags = []string{}
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}

func (s *PostgresStore) CreateArticleVersion(ctx context.Context, articleID string, in models.VersionInput) (*models.ArticleVersion, error) {
	version := &models.ArticleVersion{
		ID:          uuid.NewString(),
		ArticleID:   articleID,
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		CategoryID:  in.CategoryID,
		Tags:        append([]string{}, in.Tags...),
		Published:   in.Published,
		ReadingTime: in.ReadingTime,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO article_versions (id, article_id, title, content, excerpt, category_id, tags, published, reading_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		version.ID, version.ArticleID, version.Title, version.Content, version.Excerpt,
		version.CategoryID, pq.Array(version.Tags), version.Published,
		version.ReadingTime, version.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return version, nil
}

func (s *PostgresStore) GetComments(ctx context.Context, articleID string) ([]*models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, article_id, author, email, content, approved, created_at
		FROM comments WHERE article_id = $1 ORDER BY created_at`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Email, &c.Content, &c.Approved, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

func (s *PostgresStore) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		ID:        uuid.NewString(),
		ArticleID: in.ArticleID,
		Author:    in.Author,
		Email:     in.Email,
		Content:   in.Content,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, article_id, author, email, content, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		comment.ID, comment.ArticleID, comment.Author, comment.Email,
		comment.Content, comment.Approved, comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostgresStore) DeleteComment(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (s *PostgresStore) Counts(ctx context.Context) (int, int, int, error) {
	var articles, categories, comments int
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM articles),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM comments)`,
	).Scan(&articles, &categories, &comments)
	return articles, categories, comments, err
}
