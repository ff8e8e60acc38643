package models

import (
	"time"
)

// ArticleVersion is an immutable snapshot of an article at a point in time.
// Versions are appended by an explicit client call after an article update
// and are never mutated or deleted afterwards.
type ArticleVersion struct {
	ID          string    `json:"id" db:"id"`
	ArticleID   string    `json:"articleId" db:"article_id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Excerpt     string    `json:"excerpt,omitempty" db:"excerpt"`
	CategoryID  string    `json:"categoryId,omitempty" db:"category_id"`
	Tags        []string  `json:"tags" db:"-"`
	Published   bool      `json:"published" db:"published"`
	ReadingTime int       `json:"readingTime" db:"reading_time"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// VersionInput is the payload for snapshotting an article
type VersionInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	CategoryID  string   `json:"categoryId"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	ReadingTime int      `json:"readingTime"`
}
