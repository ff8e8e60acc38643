package models

import (
	"time"
)

// MaxCommentAuthorLen is the maximum allowed length of a comment author name
const MaxCommentAuthorLen = 100

// MaxCommentContentLen is the maximum allowed length of a comment body
const MaxCommentContentLen = 5000

// Comment represents a reader comment on an article. Approved defaults to
// false; moderation is out of scope so nothing flips it.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	ArticleID string    `json:"articleId" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Email     string    `json:"email" db:"email"`
	Content   string    `json:"content" db:"content"`
	Approved  bool      `json:"approved" db:"approved"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CommentInput is the payload for creating a comment
type CommentInput struct {
	ArticleID string `json:"articleId"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Content   string `json:"content"`
}
