package validation

import (
	"fmt"
	"regexp"

	"github.com/markdown-blog-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateArticleInput validates the payload for creating an article.
// Defaults (slug derivation, reading time, excerpt) are applied before
// validation runs, so slug is required here.
func ValidateArticleInput(in *models.ArticleInput) []ValidationError {
	var errors []ValidationError

	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if in.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}
	if in.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(in.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Slug})
	}
	if in.ReadingTime < 1 {
		errors = append(errors, ValidationError{Field: "readingTime", Message: "readingTime must be at least 1", Value: in.ReadingTime})
	}

	return errors
}

// ValidateArticleUpdate validates the fields present in a partial article
// update. Absent fields are skipped. Slug uniqueness is intentionally not
// re-checked on update.
func ValidateArticleUpdate(upd *models.ArticleUpdate) []ValidationError {
	var errors []ValidationError

	if upd.Title != nil && *upd.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title must not be empty"})
	}
	if upd.Content != nil && *upd.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content must not be empty"})
	}
	if upd.Slug != nil && !slugRegex.MatchString(*upd.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: *upd.Slug})
	}
	if upd.ReadingTime != nil && *upd.ReadingTime < 1 {
		errors = append(errors, ValidationError{Field: "readingTime", Message: "readingTime must be at least 1", Value: *upd.ReadingTime})
	}

	return errors
}

// ValidateCategoryInput validates the payload for creating a category
func ValidateCategoryInput(in *models.CategoryInput) []ValidationError {
	var errors []ValidationError

	if in.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if in.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(in.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Slug})
	}

	return errors
}

// ValidateCategoryUpdate validates the fields present in a partial category update
func ValidateCategoryUpdate(upd *models.CategoryUpdate) []ValidationError {
	var errors []ValidationError

	if upd.Name != nil && *upd.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if upd.Slug != nil && !slugRegex.MatchString(*upd.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: *upd.Slug})
	}

	return errors
}

// ValidateVersionInput validates the payload for snapshotting an article
func ValidateVersionInput(in *models.VersionInput) []ValidationError {
	var errors []ValidationError

	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if in.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	return errors
}

// ValidateCommentInput validates the payload for creating a comment
func ValidateCommentInput(in *models.CommentInput) []ValidationError {
	var errors []ValidationError

	if in.ArticleID == "" {
		errors = append(errors, ValidationError{Field: "articleId", Message: "articleId is required"})
	}

	if in.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	} else if len([]rune(in.Author)) > models.MaxCommentAuthorLen {
		errors = append(errors, ValidationError{
			Field:   "author",
			Message: fmt.Sprintf("author must not exceed %d characters", models.MaxCommentAuthorLen),
		})
	}

	if in.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: in.Email})
	}

	if in.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	} else if len([]rune(in.Content)) > models.MaxCommentContentLen {
		errors = append(errors, ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must not exceed %d characters", models.MaxCommentContentLen),
		})
	}

	return errors
}
