package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kycboard/internal/domain"
	"kycboard/internal/repository"
)

func newTestUserService(t *testing.T, users repository.UserRepository) UserService {
	t.Helper()
	svc, err := NewUserService(users, bcrypt.DefaultCost)
	require.NoError(t, err)
	return svc
}

func TestUserService_Register_StoresSaltedHash(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")

	stored, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)
}

func TestUserService_Register_SamePasswordDifferentHashes(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", "password123")
	require.NoError(t, err)

	alice, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	bob, err := repos.Users.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.PasswordHash, bob.PasswordHash)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	first, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another-password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	stored, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestUserService_Register_UsernameIsCaseSensitive(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Alice", "password123")
	assert.NoError(t, err)
}

// racingUsers hides the existing row from the pre-insert lookup, the way a concurrent
// registration that has not committed yet would.
type racingUsers struct {
	repository.UserRepository
}

func (racingUsers) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func TestUserService_Register_UniqueConstraintSettlesRace(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := newTestUserService(t, repos.Users).Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = newTestUserService(t, racingUsers{repos.Users}).Register(ctx, "alice", "password123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_Register_Validation(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "password123"},
		{"long username", "abcdefghijklmnopqrstuvwxyz12345", "password123"},
		{"short password", "alice", "pass"},
		{"password over 72 bytes", "alice", strings.Repeat("p", 73)},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, tc.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Authenticate_DoesNotRevealUnknownUsers(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "alice", "wrong-password")
	_, unknownUser := svc.Authenticate(ctx, "mallory", "password123")
	_, wrongCase := svc.Authenticate(ctx, "ALICE", "password123")

	require.Error(t, wrongPassword)
	assert.True(t, errors.Is(wrongPassword, ErrInvalidCredentials))
	assert.Equal(t, wrongPassword, unknownUser)
	assert.Equal(t, wrongPassword, wrongCase)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestUserService_GetByID(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTestUserService(t, repos.Users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	user, err := svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewUserService_RaisesLowCost(t *testing.T) {
	repos := newTestRepos(t)
	svc, err := NewUserService(repos.Users, bcrypt.MinCost)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	stored, err := repos.Users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
