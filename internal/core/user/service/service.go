package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userEntity "postboard/internal/core/user"
	userPort "postboard/internal/ports/user"
)

// UserService account registration, login and profile editing
type UserService struct {
	UserRepository userPort.UserRepository
	Logger         *zap.Logger
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		Logger:         logger,
		jwtKey:         jwtKey,
	}
}

// RegisterUser creates the account with a bcrypt password hash.
func (s *UserService) RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return nil, userPort.ErrTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Password:  string(hashed),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Logger.Info("user registered", zap.String("username", created.Username))
	return userPort.ToDTO(created), nil
}

// LoginUser checks the password and issues a signed token.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "postboard",
		ExpiresAt: expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		s.Logger.Error("could not sign token", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// GetProfile the actor's own account, backs the edit form.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

// UpdateProfile first/last name, username and email of the acting user.
func (s *UserService) UpdateProfile(ctx context.Context, userID, firstName, lastName, username, email string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != u.Username {
		if existing, err := s.UserRepository.FindByUsername(ctx, username); err == nil && existing != nil {
			return nil, userPort.ErrTaken
		}
	}

	u.FirstName = firstName
	u.LastName = lastName
	u.Username = username
	u.Email = email
	if err := s.UserRepository.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return userPort.ToDTO(u), nil
}
