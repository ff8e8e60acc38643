package models

// DefaultCategoryColor is applied when a category is created without a color
const DefaultCategoryColor = "#3b82f6"

// Category groups articles. Articles reference it by id; the reference is
// weak and deleting a category leaves its articles in place.
type Category struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Slug  string `json:"slug" db:"slug"`
	Color string `json:"color" db:"color"`
}

// CategoryInput is the payload for creating a category
type CategoryInput struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// CategoryUpdate is a partial update for a category
type CategoryUpdate struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Color *string `json:"color"`
}
