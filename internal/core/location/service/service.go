package locationapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	locationEntity "postboard/internal/core/location"
	locationPort "postboard/internal/ports/location"
	userPort "postboard/internal/ports/user"
)

// LocationService location management, restricted to admin users.
type LocationService struct {
	LocationRepository locationPort.LocationRepository
	UserRepository     userPort.UserRepository
	Logger             *zap.Logger
}

func NewLocationService(
	locationRepo locationPort.LocationRepository,
	userRepo userPort.UserRepository,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{
		LocationRepository: locationRepo,
		UserRepository:     userRepo,
		Logger:             logger,
	}
}

func (s *LocationService) requireAdmin(ctx context.Context, actorID string) error {
	u, err := s.UserRepository.FindByID(ctx, actorID)
	if err != nil {
		return userPort.ErrForbidden
	}
	if !u.IsAdmin {
		return userPort.ErrForbidden
	}
	return nil
}

func (s *LocationService) CreateLocation(ctx context.Context, actorID string, in locationPort.Input) (*locationPort.LocationDTO, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	l := &locationEntity.Location{
		ID:   uuid.Must(uuid.NewV4()),
		Name: in.Name,
	}
	l.IsPublished = in.IsPublished

	created, err := s.LocationRepository.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	s.Logger.Info("location created", zap.String("locationID", created.ID.String()))
	return locationPort.ToDTO(created), nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, actorID, locationID string, in locationPort.Input) (*locationPort.LocationDTO, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	l, err := s.LocationRepository.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	l.Name = in.Name
	l.IsPublished = in.IsPublished
	if err := s.LocationRepository.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return locationPort.ToDTO(l), nil
}

// DeleteLocation detaches the posts of the location instead of deleting them.
func (s *LocationService) DeleteLocation(ctx context.Context, actorID, locationID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.LocationRepository.DeleteByID(ctx, locationID); err != nil {
		return err
	}
	s.Logger.Info("location deleted", zap.String("locationID", locationID))
	return nil
}
