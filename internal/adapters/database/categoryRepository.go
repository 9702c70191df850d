package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"postboard/internal/config"
	"postboard/internal/core/category"
	"postboard/internal/core/post"
	categoryPort "postboard/internal/ports/category"
)

// CategoryRepositoryDatabase gorm implementation of CategoryRepository
type CategoryRepositoryDatabase struct{}

func NewCategoryRepositoryDatabase() *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{}
}

func (repo *CategoryRepositoryDatabase) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) Update(ctx context.Context, c *category.Category) error {
	return config.DB.WithContext(ctx).Model(c).
		Select("title", "description", "slug", "is_published").
		Updates(c).Error
}

// DeleteBySlug sets category_id to NULL on the category's posts and removes
// the category, all in one transaction. Posts survive their category.
func (repo *CategoryRepositoryDatabase) DeleteBySlug(ctx context.Context, slug string) error {
	c, err := repo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post.Post{}).
			Where("category_id = ?", c.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", c.ID).Delete(&category.Category{}).Error
	})
}

func (repo *CategoryRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	var c category.Category
	err := config.DB.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, categoryPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) FindPublishedBySlug(ctx context.Context, slug string) (*category.Category, error) {
	var c category.Category
	err := config.DB.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, categoryPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
