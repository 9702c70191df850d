package comment

import (
	"context"
	"errors"
	"time"

	"postboard/internal/core/comment"
	userPort "postboard/internal/ports/user"
)

// CommentRepository persistence port for comments
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Update(ctx context.Context, c *comment.Comment) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*comment.Comment, error)
	// ListByPost returns the comments of a post oldest first, the order the
	// detail view shows them in.
	ListByPost(ctx context.Context, postID string) ([]*comment.Comment, error)
}

var (
	ErrNotFound = errors.New("comment not found")
	ErrNotOwner = errors.New("not the comment author")
)

type CommentDTO struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	PostID    string            `json:"post_id"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	CreatedAt string            `json:"created_at"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	dto := &CommentDTO{
		ID:        c.ID.String(),
		Text:      c.Text,
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.Author != nil {
		dto.Author = userPort.ToDTO(c.Author)
	}
	return dto
}
