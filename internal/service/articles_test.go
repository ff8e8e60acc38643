package service

import (
	"strings"
	"testing"

	"github.com/markdown-blog-api/internal/models"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Go Concurrency Patterns", "go-concurrency-patterns"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Symbols & Punctuation!", "symbols-and-punctuation"},
	}

	for _, tt := range tests {
		if got := GenerateSlug(tt.title); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestGenerateSlug_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 50)
	got := GenerateSlug(long)
	if len(got) > 100 {
		t.Errorf("slug too long: %d chars", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug must not end with a hyphen: %q", got)
	}
}

func TestEstimateReadingTime(t *testing.T) {
	if got := EstimateReadingTime(""); got != 1 {
		t.Errorf("empty content should estimate 1 minute, got %d", got)
	}
	if got := EstimateReadingTime("a few words"); got != 1 {
		t.Errorf("short content should estimate 1 minute, got %d", got)
	}

	long := strings.Repeat("lorem ipsum dolor sit amet ", 200) // 1000 words
	if got := EstimateReadingTime(long); got < 2 {
		t.Errorf("1000 words should take more than a minute, got %d", got)
	}

	// Monotone: more content never reads faster
	if EstimateReadingTime(long) < EstimateReadingTime("short") {
		t.Error("reading time must not decrease with more content")
	}
}

func TestDeriveExcerpt(t *testing.T) {
	got := DeriveExcerpt("# Title\n\nSome `code` and *emphasis* here.")
	if strings.ContainsAny(got, "#*`\n") {
		t.Errorf("excerpt must strip markup, got %q", got)
	}
	if !strings.Contains(got, "Some code and emphasis here.") {
		t.Errorf("unexpected excerpt: %q", got)
	}

	long := strings.Repeat("0123456789", 40)
	if derived := DeriveExcerpt(long); len(derived) > 200 {
		t.Errorf("excerpt too long: %d chars", len(derived))
	}
}

func TestApplyArticleDefaults(t *testing.T) {
	in := models.ArticleInput{Title: "My Post", Content: "short body"}
	ApplyArticleDefaults(&in)

	if in.Slug != "my-post" {
		t.Errorf("expected derived slug, got %q", in.Slug)
	}
	if in.ReadingTime != 1 {
		t.Errorf("expected reading time 1, got %d", in.ReadingTime)
	}
	if in.Excerpt == "" {
		t.Error("expected derived excerpt")
	}
	if in.Tags == nil {
		t.Error("expected tags to default to an empty slice")
	}
}

func TestApplyArticleDefaults_ExplicitValuesWin(t *testing.T) {
	in := models.ArticleInput{
		Title:       "My Post",
		Slug:        "custom-slug",
		Content:     "body",
		Excerpt:     "custom excerpt",
		ReadingTime: 7,
		Tags:        []string{"go"},
	}
	ApplyArticleDefaults(&in)

	if in.Slug != "custom-slug" || in.Excerpt != "custom excerpt" || in.ReadingTime != 7 {
		t.Errorf("explicit values must pass through untouched: %+v", in)
	}
}

func TestApplyCategoryDefaults(t *testing.T) {
	in := models.CategoryInput{Name: "System Design"}
	ApplyCategoryDefaults(&in)

	if in.Slug != "system-design" {
		t.Errorf("expected derived slug, got %q", in.Slug)
	}
	if in.Color != models.DefaultCategoryColor {
		t.Errorf("expected default color, got %q", in.Color)
	}
}
