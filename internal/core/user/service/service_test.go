package userapp

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	userEntity "postboard/internal/core/user"
	userPort "postboard/internal/ports/user"
)

type fakeUserRepo struct {
	users map[string]*userEntity.User // keyed by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*userEntity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *userEntity.User) (*userEntity.User, error) {
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *userEntity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*userEntity.User, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, userPort.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*userEntity.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, userPort.ErrNotFound
}

func (r *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*userEntity.User, error) {
	for _, u := range r.users {
		if u.Username == username || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return nil, userPort.ErrNotFound
}

var testKey = []byte("test-secret")

func TestRegisterAndLogin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testKey, zap.NewNop())

	u, err := svc.RegisterUser(context.Background(), "Alice", "Smith", "alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	res, err := svc.LoginUser(context.Background(), "alice", "s3cretpass")
	require.NoError(t, err)

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "postboard", claims.Issuer)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testKey, zap.NewNop())

	_, err := svc.RegisterUser(context.Background(), "", "", "alice", "", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.LoginUser(context.Background(), "alice", "wrong")
	assert.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testKey, zap.NewNop())

	_, err := svc.RegisterUser(context.Background(), "", "", "alice", "a@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), "", "", "alice", "b@example.com", "s3cretpass")
	assert.ErrorIs(t, err, userPort.ErrTaken)
}

func TestUpdateProfileTakenUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testKey, zap.NewNop())

	alice, err := svc.RegisterUser(context.Background(), "", "", "alice", "", "s3cretpass")
	require.NoError(t, err)
	_, err = svc.RegisterUser(context.Background(), "", "", "bob", "", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), alice.ID, "A", "S", "bob", "")
	assert.ErrorIs(t, err, userPort.ErrTaken)

	// Keeping the own username is fine.
	res, err := svc.UpdateProfile(context.Background(), alice.ID, "A", "S", "alice", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)
}
