package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"postboard/internal/config"
	"postboard/internal/core/location"
	"postboard/internal/core/post"
	locationPort "postboard/internal/ports/location"
)

// LocationRepositoryDatabase gorm implementation of LocationRepository
type LocationRepositoryDatabase struct{}

func NewLocationRepositoryDatabase() *LocationRepositoryDatabase {
	return &LocationRepositoryDatabase{}
}

func (repo *LocationRepositoryDatabase) Create(ctx context.Context, l *location.Location) (*location.Location, error) {
	if err := config.DB.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *LocationRepositoryDatabase) Update(ctx context.Context, l *location.Location) error {
	return config.DB.WithContext(ctx).Model(l).
		Select("name", "is_published").
		Updates(l).Error
}

// DeleteByID sets location_id to NULL on the location's posts and removes
// the location, all in one transaction.
func (repo *LocationRepositoryDatabase) DeleteByID(ctx context.Context, id string) error {
	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post.Post{}).
			Where("location_id = ?", id).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&location.Location{}).Error
	})
}

func (repo *LocationRepositoryDatabase) FindByID(ctx context.Context, id string) (*location.Location, error) {
	var l location.Location
	err := config.DB.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, locationPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
