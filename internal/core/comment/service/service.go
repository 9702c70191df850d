package commentapp

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	commentEntity "postboard/internal/core/comment"
	postEntity "postboard/internal/core/post"
	commentPort "postboard/internal/ports/comment"
	postPort "postboard/internal/ports/post"
)

// CommentService comment mutations. Every operation first checks that the
// target post is visible to the actor, so commenting on somebody else's
// hidden post looks like a 404.
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Logger            *zap.Logger
	Now               func() time.Time
}

func NewCommentService(
	commentRepo commentPort.CommentRepository,
	postRepo postPort.PostRepository,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Logger:            logger,
		Now:               time.Now,
	}
}

func (s *CommentService) visiblePost(ctx context.Context, postID, actorID string) (*postEntity.Post, error) {
	vis := postEntity.Visibility{ActorID: actorID, IncludeOwn: true, Now: s.Now()}
	return s.PostRepository.FindVisibleByID(ctx, postID, vis)
}

// AddComment authenticated actors only, the actor becomes the author.
func (s *CommentService) AddComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error) {
	p, err := s.visiblePost(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}

	aid, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: &aid,
		PostID:   p.ID,
	}
	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.Logger.Info("comment created",
		zap.String("commentID", created.ID.String()),
		zap.String("postID", postID))
	return commentPort.ToDTO(created), nil
}

// GetComment used by the edit form, only the author may fetch it.
func (s *CommentService) GetComment(ctx context.Context, actorID, postID, commentID string) (*commentPort.CommentDTO, error) {
	c, err := s.ownComment(ctx, actorID, postID, commentID)
	if err != nil {
		return nil, err
	}
	return commentPort.ToDTO(c), nil
}

// UpdateComment only the author.
func (s *CommentService) UpdateComment(ctx context.Context, actorID, postID, commentID, text string) (*commentPort.CommentDTO, error) {
	c, err := s.ownComment(ctx, actorID, postID, commentID)
	if err != nil {
		return nil, err
	}

	c.Text = text
	if err := s.CommentRepository.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return commentPort.ToDTO(c), nil
}

// DeleteComment only the author.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, postID, commentID string) error {
	c, err := s.ownComment(ctx, actorID, postID, commentID)
	if err != nil {
		return err
	}

	if err := s.CommentRepository.Delete(ctx, c.ID.String()); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	s.Logger.Info("comment deleted", zap.String("commentID", commentID), zap.String("postID", postID))
	return nil
}

func (s *CommentService) ownComment(ctx context.Context, actorID, postID, commentID string) (*commentEntity.Comment, error) {
	if _, err := s.visiblePost(ctx, postID, actorID); err != nil {
		return nil, err
	}

	c, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	// A comment id under the wrong post is a missing comment, not a leak.
	if c.PostID.String() != postID {
		return nil, commentPort.ErrNotFound
	}
	if c.AuthorID == nil || c.AuthorID.String() != actorID {
		return nil, commentPort.ErrNotOwner
	}
	return c, nil
}
