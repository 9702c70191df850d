package category

import (
	"context"
	"errors"

	"postboard/internal/core/category"
)

// CategoryRepository persistence port for categories
type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (*category.Category, error)
	Update(ctx context.Context, c *category.Category) error
	// DeleteBySlug detaches every post of the category before removing it.
	DeleteBySlug(ctx context.Context, slug string) error
	FindBySlug(ctx context.Context, slug string) (*category.Category, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*category.Category, error)
}

var ErrNotFound = errors.New("category not found")

type Input struct {
	Title       string
	Description string
	Slug        string
	IsPublished bool
}

type CategoryDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsPublished bool   `json:"is_published"`
}

func ToDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
		IsPublished: c.IsPublished,
	}
}
