package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"postboard/internal/config"
	"postboard/internal/core/user"
	userPort "postboard/internal/ports/user"
)

// UserRepositoryDatabase gorm implementation of UserRepository
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) Update(ctx context.Context, u *user.User) error {
	return config.DB.WithContext(ctx).Save(u).Error
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := config.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := config.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error) {
	var u user.User
	err := config.DB.WithContext(ctx).Where("username = ? OR email = ?", username, email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
