package repository

import (
	"context"

	"kycboard/internal/domain"
)

// KYCRepository persists KYC records scoped to their owner.
type KYCRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, kyc *domain.KYC) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.KYC, error)
	Delete(ctx context.Context, id string) error
	DeleteAllForOwner(ctx context.Context, ownerID string) (int64, error)
}

// PostRepository persists posts scoped to their owner.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error)
	DeleteAllForOwner(ctx context.Context, ownerID string) (int64, error)
}
