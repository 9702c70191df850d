package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"postboard/internal/config"
	"postboard/internal/core/comment"
	commentPort "postboard/internal/ports/comment"
)

// CommentRepositoryDatabase gorm implementation of CommentRepository
type CommentRepositoryDatabase struct{}

func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) Update(ctx context.Context, c *comment.Comment) error {
	return config.DB.WithContext(ctx).Model(c).
		Select("text").
		Updates(c).Error
}

func (repo *CommentRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&comment.Comment{}).Error
}

func (repo *CommentRepositoryDatabase) FindByID(ctx context.Context, id string) (*comment.Comment, error) {
	var c comment.Comment
	err := config.DB.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, commentPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) ListByPost(ctx context.Context, postID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	err := config.DB.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
