package storage

import (
	"context"
	"fmt"

	"github.com/markdown-blog-api/internal/models"
)

var starterCategories = []models.CategoryInput{
	{Name: "Frontend", Slug: "frontend", Color: "#3b82f6"},
	{Name: "Backend", Slug: "backend", Color: "#10b981"},
	{Name: "System Design", Slug: "system-design", Color: "#8b5cf6"},
	{Name: "DevOps", Slug: "devops", Color: "#f59e0b"},
	{Name: "Database", Slug: "database", Color: "#ef4444"},
}

// Seed inserts the starter categories into an empty store. It is a no-op
// when any category already exists, so re-running a persistent backend with
// SEED_DATA=true stays safe.
func Seed(ctx context.Context, store Store) error {
	existing, err := store.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, in := range starterCategories {
		if _, err := store.CreateCategory(ctx, in); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", in.Slug, err)
		}
	}
	return nil
}
