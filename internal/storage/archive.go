package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// DocumentArchive lays out KYC documents under <prefix>/<ownerID>/<documentID>.txt so an
// owner's whole archive can be dropped with a single prefix delete.
type DocumentArchive struct {
	store  Service
	bucket string
	prefix string
}

func NewDocumentArchive(store Service, bucket, keyPrefix string) *DocumentArchive {
	return &DocumentArchive{
		store:  store,
		bucket: bucket,
		prefix: strings.Trim(keyPrefix, "/"),
	}
}

// Key returns the object key the document of the owner is stored under.
func (a *DocumentArchive) Key(ownerID, documentID string) string {
	return path.Join(a.prefix, ownerID, documentID+".txt")
}

// Put uploads the document under a key obtained from Key.
func (a *DocumentArchive) Put(ctx context.Context, key, document string) error {
	if key == "" || (a.prefix != "" && !strings.HasPrefix(key, a.prefix+"/")) {
		return fmt.Errorf("object key %q is outside the archive", key)
	}
	return a.store.PutObject(ctx, a.bucket, key, strings.NewReader(document))
}

// PurgeOwner removes every archived document of the owner.
func (a *DocumentArchive) PurgeOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("owner id is required")
	}
	return a.store.DeletePrefix(ctx, a.bucket, a.ownerPrefix(ownerID))
}

func (a *DocumentArchive) ownerPrefix(ownerID string) string {
	return path.Join(a.prefix, ownerID) + "/"
}
