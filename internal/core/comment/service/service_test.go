package commentapp

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	categoryEntity "postboard/internal/core/category"
	commentEntity "postboard/internal/core/comment"
	postEntity "postboard/internal/core/post"
	commentPort "postboard/internal/ports/comment"
	postPort "postboard/internal/ports/post"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakePostRepo only the visibility lookup matters here
type fakePostRepo struct {
	posts map[string]*postEntity.Post
}

func (r *fakePostRepo) Create(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	r.posts[p.ID.String()] = p
	return p, nil
}
func (r *fakePostRepo) Update(_ context.Context, _ *postEntity.Post) error  { return nil }
func (r *fakePostRepo) Delete(_ context.Context, _ string) error            { return nil }
func (r *fakePostRepo) AddViews(_ context.Context, _ string, _ int64) error { return nil }

func (r *fakePostRepo) ListVisible(_ context.Context, _ postEntity.Visibility, _ postPort.Filter, _ int) (*postPort.Page, error) {
	return &postPort.Page{}, nil
}

func (r *fakePostRepo) FindVisibleByID(_ context.Context, id string, vis postEntity.Visibility) (*postEntity.Post, error) {
	p, ok := r.posts[id]
	if !ok || !vis.Matches(p) {
		return nil, postPort.ErrNotFound
	}
	return p, nil
}

type fakeCommentRepo struct {
	comments map[string]*commentEntity.Comment
	updated  []string
	deleted  []string
}

func (r *fakeCommentRepo) Create(_ context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	r.comments[c.ID.String()] = c
	return c, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c *commentEntity.Comment) error {
	r.updated = append(r.updated, c.ID.String())
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	delete(r.comments, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id string) (*commentEntity.Comment, error) {
	if c, ok := r.comments[id]; ok {
		return c, nil
	}
	return nil, commentPort.ErrNotFound
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, _ string) ([]*commentEntity.Comment, error) {
	return nil, nil
}

type fixture struct {
	svc      *CommentService
	posts    *fakePostRepo
	comments *fakeCommentRepo

	author  uuid.UUID // post author
	reader  uuid.UUID // somebody else
	visible *postEntity.Post
	hidden  *postEntity.Post
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		posts:    &fakePostRepo{posts: map[string]*postEntity.Post{}},
		comments: &fakeCommentRepo{comments: map[string]*commentEntity.Comment{}},
		author:   uuid.Must(uuid.NewV4()),
		reader:   uuid.Must(uuid.NewV4()),
	}
	f.svc = NewCommentService(f.comments, f.posts, zap.NewNop())
	f.svc.Now = func() time.Time { return testNow }

	cat := &categoryEntity.Category{ID: uuid.Must(uuid.NewV4()), Slug: "life"}
	cat.IsPublished = true

	f.visible = &postEntity.Post{ID: uuid.Must(uuid.NewV4()), AuthorID: f.author, Category: cat, PubDate: testNow.Add(-time.Hour)}
	f.visible.IsPublished = true
	f.hidden = &postEntity.Post{ID: uuid.Must(uuid.NewV4()), AuthorID: f.author, Category: cat, PubDate: testNow.Add(time.Hour)}
	f.hidden.IsPublished = true

	f.posts.posts[f.visible.ID.String()] = f.visible
	f.posts.posts[f.hidden.ID.String()] = f.hidden
	return f
}

func (f *fixture) addComment(authorID uuid.UUID, postID uuid.UUID) *commentEntity.Comment {
	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     "hello",
		AuthorID: &authorID,
		PostID:   postID,
	}
	f.comments.comments[c.ID.String()] = c
	return c
}

func TestAddCommentSetsAuthorAndPost(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.AddComment(context.Background(), f.reader.String(), f.visible.ID.String(), "nice one")
	require.NoError(t, err)

	stored := f.comments.comments[res.ID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.AuthorID)
	assert.Equal(t, f.reader, *stored.AuthorID)
	assert.Equal(t, f.visible.ID, stored.PostID)
}

func TestAddCommentOnInvisiblePostIs404(t *testing.T) {
	f := newFixture(t)

	// Future-dated post: strangers cannot comment, the owner can.
	_, err := f.svc.AddComment(context.Background(), f.reader.String(), f.hidden.ID.String(), "early")
	assert.ErrorIs(t, err, postPort.ErrNotFound)

	_, err = f.svc.AddComment(context.Background(), f.author.String(), f.hidden.ID.String(), "my own draft")
	assert.NoError(t, err)
}

func TestUpdateCommentNotAuthor(t *testing.T) {
	f := newFixture(t)
	c := f.addComment(f.reader, f.visible.ID)

	_, err := f.svc.UpdateComment(context.Background(), f.author.String(), f.visible.ID.String(), c.ID.String(), "edited")
	assert.ErrorIs(t, err, commentPort.ErrNotOwner)
	assert.Empty(t, f.comments.updated)
}

func TestUpdateCommentAuthor(t *testing.T) {
	f := newFixture(t)
	c := f.addComment(f.reader, f.visible.ID)

	res, err := f.svc.UpdateComment(context.Background(), f.reader.String(), f.visible.ID.String(), c.ID.String(), "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", res.Text)
	assert.Equal(t, []string{c.ID.String()}, f.comments.updated)
}

func TestUpdateCommentDetachedAuthor(t *testing.T) {
	f := newFixture(t)
	c := f.addComment(f.reader, f.visible.ID)
	c.AuthorID = nil // author account deleted, comment survives

	_, err := f.svc.UpdateComment(context.Background(), f.reader.String(), f.visible.ID.String(), c.ID.String(), "edited")
	assert.ErrorIs(t, err, commentPort.ErrNotOwner)
}

func TestDeleteCommentWrongPostIs404(t *testing.T) {
	f := newFixture(t)
	c := f.addComment(f.reader, f.visible.ID)

	// Valid comment id under the wrong post must not resolve.
	err := f.svc.DeleteComment(context.Background(), f.author.String(), f.hidden.ID.String(), c.ID.String())
	assert.ErrorIs(t, err, commentPort.ErrNotFound)
}

func TestDeleteCommentAuthor(t *testing.T) {
	f := newFixture(t)
	c := f.addComment(f.reader, f.visible.ID)

	require.NoError(t, f.svc.DeleteComment(context.Background(), f.reader.String(), f.visible.ID.String(), c.ID.String()))
	assert.Equal(t, []string{c.ID.String()}, f.comments.deleted)
}
