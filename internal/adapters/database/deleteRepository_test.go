package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"postboard/internal/config"
	categoryEntity "postboard/internal/core/category"
	commentEntity "postboard/internal/core/comment"
	locationEntity "postboard/internal/core/location"
	postEntity "postboard/internal/core/post"
	userEntity "postboard/internal/core/user"
)

// setupDB points config.DB at a fresh in-memory database for one test.
func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userEntity.User{},
		&categoryEntity.Category{},
		&locationEntity.Location{},
		&postEntity.Post{},
		&commentEntity.Comment{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

type seeded struct {
	author   *userEntity.User
	category *categoryEntity.Category
	location *locationEntity.Location
	post     *postEntity.Post
}

func seed(t *testing.T) *seeded {
	t.Helper()
	ctx := context.Background()

	author := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: "alice", Password: "x"}
	_, err := NewUserRepositoryDatabase().Create(ctx, author)
	require.NoError(t, err)

	cat := &categoryEntity.Category{ID: uuid.Must(uuid.NewV4()), Title: "Travel", Description: "d", Slug: "travel"}
	cat.IsPublished = true
	_, err = NewCategoryRepositoryDatabase().Create(ctx, cat)
	require.NoError(t, err)

	loc := &locationEntity.Location{ID: uuid.Must(uuid.NewV4()), Name: "Riverside"}
	loc.IsPublished = true
	_, err = NewLocationRepositoryDatabase().Create(ctx, loc)
	require.NoError(t, err)

	cid, lid := cat.ID, loc.ID
	p := &postEntity.Post{
		ID:         uuid.Must(uuid.NewV4()),
		Title:      "a post",
		Text:       "text",
		PubDate:    time.Now().Add(-time.Hour),
		AuthorID:   author.ID,
		CategoryID: &cid,
		LocationID: &lid,
	}
	p.IsPublished = true
	_, err = NewPostRepositoryDatabase().Create(ctx, p)
	require.NoError(t, err)

	return &seeded{author: author, category: cat, location: loc, post: p}
}

func addComment(t *testing.T, s *seeded, text string) *commentEntity.Comment {
	t.Helper()

	aid := s.author.ID
	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: &aid,
		PostID:   s.post.ID,
	}
	_, err := NewCommentRepositoryDatabase().Create(context.Background(), c)
	require.NoError(t, err)
	return c
}

func TestDeletePostRemovesItsComments(t *testing.T) {
	setupDB(t)
	s := seed(t)
	addComment(t, s, "first")
	addComment(t, s, "second")

	require.NoError(t, NewPostRepositoryDatabase().Delete(context.Background(), s.post.ID.String()))

	var posts, comments int64
	require.NoError(t, config.DB.Model(&postEntity.Post{}).Count(&posts).Error)
	require.NoError(t, config.DB.Model(&commentEntity.Comment{}).
		Where("post_id = ?", s.post.ID).Count(&comments).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	setupDB(t)
	s := seed(t)

	require.NoError(t, NewCategoryRepositoryDatabase().DeleteBySlug(context.Background(), "travel"))

	var p postEntity.Post
	require.NoError(t, config.DB.First(&p, "id = ?", s.post.ID).Error)
	assert.Nil(t, p.CategoryID)

	var cats int64
	require.NoError(t, config.DB.Model(&categoryEntity.Category{}).Count(&cats).Error)
	assert.Zero(t, cats)
}

func TestDeleteLocationDetachesPosts(t *testing.T) {
	setupDB(t)
	s := seed(t)

	require.NoError(t, NewLocationRepositoryDatabase().DeleteByID(context.Background(), s.location.ID.String()))

	var p postEntity.Post
	require.NoError(t, config.DB.First(&p, "id = ?", s.post.ID).Error)
	assert.Nil(t, p.LocationID)

	var locs int64
	require.NoError(t, config.DB.Model(&locationEntity.Location{}).Count(&locs).Error)
	assert.Zero(t, locs)
}

func TestDeletePostLeavesOtherPostsComments(t *testing.T) {
	setupDB(t)
	s := seed(t)
	addComment(t, s, "kept away")

	other := *s.post
	other.ID = uuid.Must(uuid.NewV4())
	cid, lid := s.category.ID, s.location.ID
	other.CategoryID, other.LocationID = &cid, &lid
	_, err := NewPostRepositoryDatabase().Create(context.Background(), &other)
	require.NoError(t, err)

	require.NoError(t, NewPostRepositoryDatabase().Delete(context.Background(), other.ID.String()))

	var comments int64
	require.NoError(t, config.DB.Model(&commentEntity.Comment{}).
		Where("post_id = ?", s.post.ID).Count(&comments).Error)
	assert.Equal(t, int64(1), comments)
}
