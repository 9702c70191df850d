package postapp

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	postEntity "postboard/internal/core/post"
	categoryPort "postboard/internal/ports/category"
	commentPort "postboard/internal/ports/comment"
	locationPort "postboard/internal/ports/location"
	postPort "postboard/internal/ports/post"
	statsPort "postboard/internal/ports/stats"
	userPort "postboard/internal/ports/user"
)

// PostService is the query composer and the post mutation handler. The
// requesting actor is always an explicit parameter, never ambient state.
type PostService struct {
	PostRepository     postPort.PostRepository
	CategoryRepository categoryPort.CategoryRepository
	UserRepository     userPort.UserRepository
	CommentRepository  commentPort.CommentRepository
	Views              statsPort.ViewRepository
	Logger             *zap.Logger
	Now                func() time.Time
}

func NewPostService(
	postRepo postPort.PostRepository,
	categoryRepo categoryPort.CategoryRepository,
	userRepo userPort.UserRepository,
	commentRepo commentPort.CommentRepository,
	views statsPort.ViewRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:     postRepo,
		CategoryRepository: categoryRepo,
		UserRepository:     userRepo,
		CommentRepository:  commentRepo,
		Views:              views,
		Logger:             logger,
		Now:                time.Now,
	}
}

func (s *PostService) visibility(actorID string, includeOwn bool) postEntity.Visibility {
	return postEntity.Visibility{ActorID: actorID, IncludeOwn: includeOwn, Now: s.Now()}
}

// ListHome all publicly visible posts, newest first. The actor's own
// unpublished posts are deliberately excluded here.
func (s *PostService) ListHome(ctx context.Context, actorID string, page int) (*postPort.PageDTO, error) {
	res, err := s.PostRepository.ListVisible(ctx, s.visibility(actorID, false), postPort.Filter{}, page)
	if err != nil {
		return nil, fmt.Errorf("could not list home feed: %w", err)
	}
	return toPageDTO(res), nil
}

// ListByCategory posts under a published category, same public predicate as
// the home feed.
func (s *PostService) ListByCategory(ctx context.Context, slug, actorID string, page int) (*categoryPort.CategoryDTO, *postPort.PageDTO, error) {
	cat, err := s.CategoryRepository.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.PostRepository.ListVisible(ctx, s.visibility(actorID, false),
		postPort.Filter{CategoryID: cat.ID.String()}, page)
	if err != nil {
		return nil, nil, fmt.Errorf("could not list category feed: %w", err)
	}
	return categoryPort.ToDTO(cat), toPageDTO(res), nil
}

// ListByProfile posts authored by the named user. IncludeOwn is on, so the
// profile owner sees their own future-dated and unpublished posts there.
func (s *PostService) ListByProfile(ctx context.Context, username, actorID string, page int) (*userPort.UserDTO, *postPort.PageDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.PostRepository.ListVisible(ctx, s.visibility(actorID, true),
		postPort.Filter{AuthorID: u.ID.String()}, page)
	if err != nil {
		return nil, nil, fmt.Errorf("could not list profile feed: %w", err)
	}
	return userPort.ToDTO(u), toPageDTO(res), nil
}

// GetPost single post with its comments oldest first. Invisible posts are
// indistinguishable from missing ones.
func (s *PostService) GetPost(ctx context.Context, postID, actorID string) (*postPort.DetailDTO, error) {
	p, err := s.PostRepository.FindVisibleByID(ctx, postID, s.visibility(actorID, true))
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("could not load comments: %w", err)
	}

	pending, err := s.Views.Hit(ctx, postID)
	if err != nil {
		// A dead counter must not break the detail view.
		s.Logger.Warn("could not bump view counter", zap.String("postID", postID), zap.Error(err))
		pending = 0
	}

	dto := &postPort.DetailDTO{PostDTO: *toPostDTO(p)}
	dto.ViewCount = p.ViewCount + pending
	for _, c := range comments {
		dto.Comments = append(dto.Comments, commentPort.ToDTO(c))
	}
	if dto.Comments == nil {
		dto.Comments = []*commentPort.CommentDTO{}
	}
	return dto, nil
}

// GetPostForEdit backs the edit form: only the author gets the post, and the
// view counter is not touched.
func (s *PostService) GetPostForEdit(ctx context.Context, actorID, postID string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindVisibleByID(ctx, postID, s.visibility(actorID, true))
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != actorID {
		return nil, postPort.ErrNotOwner
	}
	return toPostDTO(p), nil
}

// CreatePost any authenticated actor. The actor becomes the author, the post
// is published immediately and the publication time defaults to now.
func (s *PostService) CreatePost(ctx context.Context, actorID string, in postPort.CreateInput) (*postPort.PostDTO, error) {
	aid, err := uuid.FromString(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    in.Title,
		Text:     in.Text,
		AuthorID: aid,
	}
	p.IsPublished = true
	if in.PubDate != nil {
		p.PubDate = *in.PubDate
	} else {
		p.PubDate = s.Now()
	}
	if err := applyRefs(p, in); err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.Logger.Info("post created",
		zap.String("postID", created.ID.String()),
		zap.String("authorID", actorID))
	return toPostDTO(created), nil
}

// UpdatePost only the author may edit. Anyone else gets ErrNotOwner, which
// the HTTP layer turns into a silent redirect to the detail view.
func (s *PostService) UpdatePost(ctx context.Context, actorID, postID string, in postPort.CreateInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindVisibleByID(ctx, postID, s.visibility(actorID, true))
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != actorID {
		return nil, postPort.ErrNotOwner
	}

	p.Title = in.Title
	p.Text = in.Text
	if in.PubDate != nil {
		p.PubDate = *in.PubDate
	}
	p.IsPublished = true
	if err := applyRefs(p, in); err != nil {
		return nil, err
	}

	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return toPostDTO(p), nil
}

// DeletePost only the author may delete. Comments go with the post.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID string) error {
	p, err := s.PostRepository.FindVisibleByID(ctx, postID, s.visibility(actorID, true))
	if err != nil {
		return err
	}
	if p.AuthorID.String() != actorID {
		return postPort.ErrNotOwner
	}

	if err := s.PostRepository.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	s.Logger.Info("post deleted", zap.String("postID", postID), zap.String("authorID", actorID))
	return nil
}

func applyRefs(p *postEntity.Post, in postPort.CreateInput) error {
	if in.Image != "" {
		img := in.Image
		p.Image = &img
	} else {
		p.Image = nil
	}

	p.CategoryID = nil
	if in.CategoryID != "" {
		id, err := uuid.FromString(in.CategoryID)
		if err != nil {
			return fmt.Errorf("invalid category id: %w", err)
		}
		p.CategoryID = &id
	}

	p.LocationID = nil
	if in.LocationID != "" {
		id, err := uuid.FromString(in.LocationID)
		if err != nil {
			return fmt.Errorf("invalid location id: %w", err)
		}
		p.LocationID = &id
	}
	return nil
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:           p.ID.String(),
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate.Format(time.RFC3339),
		IsPublished:  p.IsPublished,
		CommentCount: p.CommentCount,
		ViewCount:    p.ViewCount,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
	if p.Image != nil {
		dto.Image = *p.Image
	}
	if p.Author.ID != uuid.Nil {
		dto.Author = userPort.ToDTO(&p.Author)
	}
	if p.Category != nil {
		dto.Category = categoryPort.ToDTO(p.Category)
	}
	if p.Location != nil {
		dto.Location = locationPort.ToDTO(p.Location)
	}
	return dto
}

func toPageDTO(res *postPort.Page) *postPort.PageDTO {
	out := &postPort.PageDTO{
		Posts:      []*postPort.PostDTO{},
		Page:       res.Number,
		TotalPages: res.TotalPages,
		TotalCount: res.TotalCount,
	}
	for _, p := range res.Posts {
		out.Posts = append(out.Posts, toPostDTO(p))
	}
	return out
}
