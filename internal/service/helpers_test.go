package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"kycboard/internal/repository/sqlite"
)

func newTestRepos(t *testing.T) *sqlite.Repositories {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "kycboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos, err := sqlite.NewRepositories(context.Background(), db)
	require.NoError(t, err)
	return repos
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

type fakeArchive struct {
	mu      sync.Mutex
	objects map[string]string
	purged  []string
	putErr  error
	purgeFn func(ownerID string) error
}

func (a *fakeArchive) Key(ownerID, documentID string) string {
	return "kyc/" + ownerID + "/" + documentID + ".txt"
}

func (a *fakeArchive) Put(_ context.Context, key, document string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.putErr != nil {
		return a.putErr
	}
	if a.objects == nil {
		a.objects = map[string]string{}
	}
	a.objects[key] = document
	return nil
}

func (a *fakeArchive) PurgeOwner(_ context.Context, ownerID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.purged = append(a.purged, ownerID)
	if a.purgeFn != nil {
		return a.purgeFn(ownerID)
	}
	return nil
}
