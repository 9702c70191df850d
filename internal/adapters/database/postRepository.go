package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"postboard/internal/config"
	"postboard/internal/core/comment"
	"postboard/internal/core/post"
	postPort "postboard/internal/ports/post"
)

// commentCountSelect attaches the aggregate comment count to each row.
const commentCountSelect = "posts.*, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// PostRepositoryDatabase gorm implementation of PostRepository
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	// Explicit column list so cleared category/location/image write NULL.
	return config.DB.WithContext(ctx).Model(p).
		Select("title", "text", "pub_date", "image", "is_published", "category_id", "location_id").
		Updates(p).Error
}

// Delete removes the post and its comments in one transaction. The FK is
// declared ON DELETE CASCADE too, deleting explicitly keeps the behavior
// independent of how the schema was provisioned.
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&post.Post{}).Error
	})
}

func (repo *PostRepositoryDatabase) AddViews(ctx context.Context, id string, delta int64) error {
	return config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}

func (repo *PostRepositoryDatabase) FindVisibleByID(ctx context.Context, id string, vis post.Visibility) (*post.Post, error) {
	var p post.Post
	cond, args := vis.Condition()
	err := config.DB.WithContext(ctx).
		Select(commentCountSelect).
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.id = ?", id).
		Where(cond, args...).
		Preload("Author").Preload("Category").Preload("Location").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, postPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) ListVisible(ctx context.Context, vis post.Visibility, f postPort.Filter, page int) (*postPort.Page, error) {
	var total int64
	if err := repo.visibleQuery(ctx, vis, f).Count(&total).Error; err != nil {
		return nil, err
	}
	number, totalPages := clampPage(page, total, pageSize)

	var posts []*post.Post
	err := repo.visibleQuery(ctx, vis, f).
		Select(commentCountSelect).
		Preload("Author").Preload("Category").Preload("Location").
		Order("posts.pub_date DESC, posts.author_id").
		Limit(pageSize).
		Offset((number - 1) * pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &postPort.Page{
		Posts:      posts,
		Number:     number,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

// visibleQuery builds a fresh filtered query, gorm chains mutate the handle.
func (repo *PostRepositoryDatabase) visibleQuery(ctx context.Context, vis post.Visibility, f postPort.Filter) *gorm.DB {
	q := config.DB.WithContext(ctx).Model(&post.Post{}).
		Joins("LEFT JOIN categories ON categories.id = posts.category_id")
	cond, args := vis.Condition()
	q = q.Where(cond, args...)
	if f.CategoryID != "" {
		q = q.Where("posts.category_id = ?", f.CategoryID)
	}
	if f.AuthorID != "" {
		q = q.Where("posts.author_id = ?", f.AuthorID)
	}
	return q
}
