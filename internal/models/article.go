package models

import (
	"time"
)

// Article represents a Markdown article in the system
type Article struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Content     string    `json:"content" db:"content"`
	Excerpt     string    `json:"excerpt,omitempty" db:"excerpt"`
	CategoryID  string    `json:"categoryId,omitempty" db:"category_id"`
	Tags        []string  `json:"tags" db:"-"`
	Published   bool      `json:"published" db:"published"`
	ReadingTime int       `json:"readingTime" db:"reading_time"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ArticleInput is the payload for creating an article. The server assigns
// id, createdAt and updatedAt.
type ArticleInput struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	CategoryID  string   `json:"categoryId"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	ReadingTime int      `json:"readingTime"`
}

// ArticleUpdate is a partial update. Nil fields are left untouched so PATCH
// can distinguish "absent" from a zero value.
type ArticleUpdate struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Content     *string   `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	CategoryID  *string   `json:"categoryId"`
	Tags        *[]string `json:"tags"`
	Published   *bool     `json:"published"`
	ReadingTime *int      `json:"readingTime"`
}
