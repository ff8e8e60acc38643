package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/markdown-blog-api/internal/models"
)

// collection is a keyed set of entities that preserves insertion order for
// iteration. It does no validation; callers own cross-entity rules.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) insert(id string, item T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// replace overwrites the stored entity if present and reports whether it was
func (c *collection[T]) replace(id string, item T) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// MemoryStore is the in-memory Store implementation. A single RWMutex keeps
// mutations serialized under Go's concurrent HTTP handling; ids are UUIDs
// and are never reused after deletion.
type MemoryStore struct {
	mu         sync.RWMutex
	users      *collection[*models.User]
	articles   *collection[*models.Article]
	categories *collection[*models.Category]
	versions   *collection[*models.ArticleVersion]
	comments   *collection[*models.Comment]
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      newCollection[*models.User](),
		articles:   newCollection[*models.Article](),
		categories: newCollection[*models.Category](),
		versions:   newCollection[*models.ArticleVersion](),
		comments:   newCollection[*models.Comment](),
	}
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.get(id)
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users.list() {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:       uuid.NewString(),
		Username: in.Username,
		Password: in.Password,
	}
	s.users.insert(user.ID, user)
	return user, nil
}

func (s *MemoryStore) GetArticles(ctx context.Context) ([]*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.articles.list(), nil
}

func (s *MemoryStore) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles.get(id)
	if !ok {
		return nil, nil
	}
	return article, nil
}

func (s *MemoryStore) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Linear scan; fine at single-author blog scale
	for _, article := range s.articles.list() {
		if article.Slug == slug {
			return article, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.articles.insert(article.ID, article)
	return article, nil
}

func (s *MemoryStore) UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.articles.get(id)
	if !ok {
		return nil, nil
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

	s.articles.replace(id, &updated)
	return &updated, nil
}

func (s *MemoryStore) DeleteArticle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// No cascade: versions and comments keep their rows but become
	// unreachable once the parent article is gone
	return s.articles.remove(id), nil
}

func (s *MemoryStore) GetCategories(ctx context.Context) ([]*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.categories.list(), nil
}

func (s *MemoryStore) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories.get(id)
	if !ok {
		return nil, nil
	}
	return category, nil
}

func (s *MemoryStore) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := &models.Category{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Slug:  in.Slug,
		Color: in.Color,
	}
	s.categories.insert(category.ID, category)
	return category, nil
}

func (s *MemoryStore) UpdateCategory(ctx context.Context, id string, upd models.CategoryUpdate) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories.get(id)
	if !ok {
		return nil, nil
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

	s.categories.replace(id, &updated)
	return &updated, nil
}

func (s *MemoryStore) DeleteCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.categories.remove(id), nil
}

func (s *MemoryStore) GetArticleVersions(ctx context.Context, articleID string) ([]*models.ArticleVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := make([]*models.ArticleVersion, 0)
	for _, version := range s.versions.list() {
		if version.ArticleID == articleID {
			versions = append(versions, version)
		}
	}
	return versions, nil
}

func (s *MemoryStore) CreateArticleVersion(ctx context.Context, articleID string, in models.VersionInput) (*models.ArticleVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	// Append-only: identical snapshots still get their own row
	s.versions.insert(version.ID, version)
	return version, nil
}

func (s *MemoryStore) GetComments(ctx context.Context, articleID string) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*models.Comment, 0)
	for _, comment := range s.comments.list() {
		if comment.ArticleID == articleID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (s *MemoryStore) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := &models.Comment{
		ID:        uuid.NewString(),
		ArticleID: in.ArticleID,
		Author:    in.Author,
		Email:     in.Email,
		Content:   in.Content,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}
	s.comments.insert(comment.ID, comment)
	return comment, nil
}

func (s *MemoryStore) DeleteComment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.comments.remove(id), nil
}

func (s *MemoryStore) Counts(ctx context.Context) (int, int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.articles.items), len(s.categories.items), len(s.comments.items), nil
}
