// Package service derives the article metadata the editor would otherwise
// compute client-side: slugs, reading-time estimates and excerpts.
package service

import (
	"math"
	"strings"

	"github.com/gosimple/slug"
	"github.com/markdown-blog-api/internal/models"
)

const (
	maxSlugLen     = 100
	maxExcerptLen  = 200
	wordsPerMinute = 200
	charsPerMinute = 500
)

// GenerateSlug derives a URL-safe slug from a title, capped at 100 chars
// without leaving a trailing hyphen.
func GenerateSlug(title string) string {
	s := slug.Make(title)
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// EstimateReadingTime returns the reading time of Markdown content in whole
// minutes, never below 1. The estimate blends a words-per-minute and a
// chars-per-minute rate so both prose and CJK-heavy content land in a
// sensible range.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	chars := len([]rune(strings.Join(strings.Fields(content), "")))

	minutes := math.Ceil((float64(words) + float64(chars)/2) / ((wordsPerMinute + charsPerMinute) / 2))
	if minutes < 1 {
		return 1
	}
	return int(minutes)
}

// DeriveExcerpt builds a short plain-text excerpt from the first 200 chars
// of Markdown content, with markup characters stripped.
func DeriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > maxExcerptLen {
		runes = runes[:maxExcerptLen]
	}
	stripped := strings.NewReplacer("#", "", "*", "", "`", "", "\n", "").Replace(string(runes))
	return strings.TrimSpace(stripped)
}

// ApplyArticleDefaults fills the fields the client may omit: slug from the
// title, reading time from the content, excerpt from the content, and empty
// tags. Explicit values pass through untouched.
func ApplyArticleDefaults(in *models.ArticleInput) {
	if in.Slug == "" && in.Title != "" {
		in.Slug = GenerateSlug(in.Title)
	}
	if in.ReadingTime == 0 {
		if in.Content != "" {
			in.ReadingTime = EstimateReadingTime(in.Content)
		} else {
			in.ReadingTime = 1
		}
	}
	if in.Excerpt == "" && in.Content != "" {
		in.Excerpt = DeriveExcerpt(in.Content)
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
}

// ApplyCategoryDefaults derives the slug from the name when absent and
// applies the default color.
func ApplyCategoryDefaults(in *models.CategoryInput) {
	if in.Slug == "" && in.Name != "" {
		in.Slug = GenerateSlug(in.Name)
	}
	if in.Color == "" {
		in.Color = models.DefaultCategoryColor
	}
}

// ApplyVersionDefaults normalizes a version payload
func ApplyVersionDefaults(in *models.VersionInput) {
	if in.ReadingTime == 0 {
		in.ReadingTime = 1
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
}
