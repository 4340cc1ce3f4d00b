package storage

import (
	"context"
	"io"
)

// Service stores and removes objects in remote object storage.
type Service interface {
	PutObject(ctx context.Context, bucket, key string, body io.Reader) error
	DeletePrefix(ctx context.Context, bucket, prefix string) error
}
