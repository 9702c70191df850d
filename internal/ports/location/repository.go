package location

import (
	"context"
	"errors"

	"postboard/internal/core/location"
)

// LocationRepository persistence port for locations
type LocationRepository interface {
	Create(ctx context.Context, l *location.Location) (*location.Location, error)
	Update(ctx context.Context, l *location.Location) error
	// DeleteByID detaches every post of the location before removing it.
	DeleteByID(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*location.Location, error)
}

var ErrNotFound = errors.New("location not found")

type Input struct {
	Name        string
	IsPublished bool
}

type LocationDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}

func ToDTO(l *location.Location) *LocationDTO {
	return &LocationDTO{
		ID:          l.ID.String(),
		Name:        l.Name,
		IsPublished: l.IsPublished,
	}
}
