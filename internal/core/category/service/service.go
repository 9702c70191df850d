package categoryapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	categoryEntity "postboard/internal/core/category"
	categoryPort "postboard/internal/ports/category"
	userPort "postboard/internal/ports/user"
)

// CategoryService category management, restricted to admin users.
type CategoryService struct {
	CategoryRepository categoryPort.CategoryRepository
	UserRepository     userPort.UserRepository
	Logger             *zap.Logger
}

func NewCategoryService(
	categoryRepo categoryPort.CategoryRepository,
	userRepo userPort.UserRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		CategoryRepository: categoryRepo,
		UserRepository:     userRepo,
		Logger:             logger,
	}
}

func (s *CategoryService) requireAdmin(ctx context.Context, actorID string) error {
	u, err := s.UserRepository.FindByID(ctx, actorID)
	if err != nil {
		return userPort.ErrForbidden
	}
	if !u.IsAdmin {
		return userPort.ErrForbidden
	}
	return nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, actorID string, in categoryPort.Input) (*categoryPort.CategoryDTO, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	c := &categoryEntity.Category{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
	}
	c.IsPublished = in.IsPublished

	created, err := s.CategoryRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.Logger.Info("category created", zap.String("slug", created.Slug))
	return categoryPort.ToDTO(created), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, actorID, slug string, in categoryPort.Input) (*categoryPort.CategoryDTO, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	c, err := s.CategoryRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	c.Title = in.Title
	c.Description = in.Description
	c.Slug = in.Slug
	c.IsPublished = in.IsPublished
	if err := s.CategoryRepository.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return categoryPort.ToDTO(c), nil
}

// DeleteCategory detaches the posts of the category instead of deleting them.
func (s *CategoryService) DeleteCategory(ctx context.Context, actorID, slug string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.CategoryRepository.DeleteBySlug(ctx, slug); err != nil {
		return err
	}
	s.Logger.Info("category deleted", zap.String("slug", slug))
	return nil
}
