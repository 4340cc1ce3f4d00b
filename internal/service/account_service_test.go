package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kycboard/internal/repository"
)

func TestAccountService_DeleteAccount_LeavesNoDependents(t *testing.T) {
	testCases := []struct {
		posts int
		kyc   int
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{3, 2},
		{10, 4},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("posts=%d kyc=%d", tc.posts, tc.kyc), func(t *testing.T) {
			repos := newTestRepos(t)
			logger, _ := newTestLogger()
			users, err := NewUserService(repos.Users, bcrypt.DefaultCost)
			require.NoError(t, err)
			archive := &fakeArchive{}
			posts := NewPostService(repos.Posts)
			kyc := NewKYCService(repos.KYC, archive, logger)
			accounts := NewAccountService(repos.Users, repos.KYC, repos.Posts, archive, logger)
			ctx := context.Background()

			alice := registerTestUser(t, users, "alice")
			bob := registerTestUser(t, users, "bob")
			for i := 0; i < tc.posts; i++ {
				_, err := posts.Create(ctx, alice, fmt.Sprintf("post %d", i))
				require.NoError(t, err)
			}
			for i := 0; i < tc.kyc; i++ {
				_, err := kyc.Create(ctx, alice, fmt.Sprintf("document %d", i))
				require.NoError(t, err)
			}
			_, err = posts.Create(ctx, bob, "bob's post")
			require.NoError(t, err)
			_, err = kyc.Create(ctx, bob, "bob's passport")
			require.NoError(t, err)

			require.NoError(t, accounts.DeleteAccount(ctx, alice))

			remainingPosts, err := repos.Posts.ListByOwner(ctx, alice)
			require.NoError(t, err)
			assert.Empty(t, remainingPosts)
			remainingKYC, err := repos.KYC.ListByOwner(ctx, alice)
			require.NoError(t, err)
			assert.Empty(t, remainingKYC)
			_, err = repos.Users.GetByID(ctx, alice)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			assert.Equal(t, []string{alice}, archive.purged)

			bobPosts, err := repos.Posts.ListByOwner(ctx, bob)
			require.NoError(t, err)
			assert.Len(t, bobPosts, 1)
			bobKYC, err := repos.KYC.ListByOwner(ctx, bob)
			require.NoError(t, err)
			assert.Len(t, bobKYC, 1)
		})
	}
}

func TestAccountService_DeleteAccount_UnknownUser(t *testing.T) {
	repos := newTestRepos(t)
	logger, _ := newTestLogger()
	accounts := NewAccountService(repos.Users, repos.KYC, repos.Posts, nil, logger)

	err := accounts.DeleteAccount(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountService_DeleteAccount_ArchiveFailureDoesNotBlock(t *testing.T) {
	repos := newTestRepos(t)
	logger, hook := newTestLogger()
	users, err := NewUserService(repos.Users, bcrypt.DefaultCost)
	require.NoError(t, err)
	archive := &fakeArchive{purgeFn: func(string) error { return errors.New("bucket unavailable") }}
	accounts := NewAccountService(repos.Users, repos.KYC, repos.Posts, archive, logger)
	ctx := context.Background()

	alice := registerTestUser(t, users, "alice")

	require.NoError(t, accounts.DeleteAccount(ctx, alice))

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}

// cascadeLog records the order in which the cascade touches each table.
type cascadeLog struct {
	steps []string
}

type orderedUsers struct {
	repository.UserRepository
	log *cascadeLog
}

func (r orderedUsers) Delete(context.Context, string) error {
	r.log.steps = append(r.log.steps, "user")
	return nil
}

type orderedKYC struct {
	repository.KYCRepository
	log *cascadeLog
	err error
}

func (r orderedKYC) DeleteAllForOwner(context.Context, string) (int64, error) {
	r.log.steps = append(r.log.steps, "kyc")
	return 0, r.err
}

type orderedPosts struct {
	repository.PostRepository
	log *cascadeLog
}

func (r orderedPosts) DeleteAllForOwner(context.Context, string) (int64, error) {
	r.log.steps = append(r.log.steps, "posts")
	return 0, nil
}

func TestAccountService_DeleteAccount_Order(t *testing.T) {
	steps := &cascadeLog{}
	logger, _ := newTestLogger()
	accounts := NewAccountService(
		orderedUsers{log: steps},
		orderedKYC{log: steps},
		orderedPosts{log: steps},
		nil,
		logger,
	)

	require.NoError(t, accounts.DeleteAccount(context.Background(), "user-1"))
	assert.Equal(t, []string{"kyc", "posts", "user"}, steps.steps)
}

func TestAccountService_DeleteAccount_StopsOnDependentFailure(t *testing.T) {
	steps := &cascadeLog{}
	logger, _ := newTestLogger()
	accounts := NewAccountService(
		orderedUsers{log: steps},
		orderedKYC{log: steps, err: errors.New("disk full")},
		orderedPosts{log: steps},
		nil,
		logger,
	)

	err := accounts.DeleteAccount(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, []string{"kyc"}, steps.steps)
}
