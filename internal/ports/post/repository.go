package post

import (
	"context"
	"errors"
	"time"

	"postboard/internal/core/post"
	categoryPort "postboard/internal/ports/category"
	commentPort "postboard/internal/ports/comment"
	locationPort "postboard/internal/ports/location"
	userPort "postboard/internal/ports/user"
)

// Filter narrows a listing to one category or one author. Zero value lists
// everything (home feed).
type Filter struct {
	CategoryID string
	AuthorID   string
}

// Page is one page of a listing, already clamped to the valid range.
type Page struct {
	Posts      []*post.Post
	Number     int
	TotalPages int
	TotalCount int64
}

// PostRepository persistence port for posts. All reads go through the
// visibility predicate, there is no unfiltered singular lookup.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) error
	// Delete removes the post and its comments in one transaction.
	Delete(ctx context.Context, id string) error
	AddViews(ctx context.Context, id string, delta int64) error
	FindVisibleByID(ctx context.Context, id string, vis post.Visibility) (*post.Post, error)
	ListVisible(ctx context.Context, vis post.Visibility, f Filter, page int) (*Page, error)
}

var (
	ErrNotFound = errors.New("post not found")
	ErrNotOwner = errors.New("not the post author")
)

// CreateInput carries the post form fields for create and edit.
type CreateInput struct {
	Title      string
	Text       string
	PubDate    *time.Time // nil defaults to now on create, keeps the old value on edit
	Image      string
	CategoryID string
	LocationID string
}

type PostDTO struct {
	ID           string                    `json:"id"`
	Title        string                    `json:"title"`
	Text         string                    `json:"text"`
	PubDate      string                    `json:"pub_date"`
	Image        string                    `json:"image,omitempty"`
	IsPublished  bool                      `json:"is_published"`
	CommentCount int64                     `json:"comment_count"`
	ViewCount    int64                     `json:"view_count"`
	Author       *userPort.UserDTO         `json:"author,omitempty"`
	Category     *categoryPort.CategoryDTO `json:"category,omitempty"`
	Location     *locationPort.LocationDTO `json:"location,omitempty"`
	CreatedAt    string                    `json:"created_at"`
}

type PageDTO struct {
	Posts      []*PostDTO `json:"posts"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	TotalCount int64      `json:"total_count"`
}

type DetailDTO struct {
	PostDTO
	Comments []*commentPort.CommentDTO `json:"comments"`
}
