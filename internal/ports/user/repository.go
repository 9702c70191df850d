package user

import (
	"context"
	"errors"

	"postboard/internal/core/user"
)

// UserRepository persistence port for user accounts
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)
}

var (
	ErrNotFound  = errors.New("user not found")
	ErrTaken     = errors.New("username or email already taken")
	ErrForbidden = errors.New("forbidden")
)

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func ToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
