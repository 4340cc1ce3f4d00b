package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kycboard/internal/domain"
	"kycboard/internal/repository"
	"kycboard/internal/validation"
)

// DocumentArchive keeps an out-of-database copy of KYC documents.
type DocumentArchive interface {
	Key(ownerID, documentID string) string
	Put(ctx context.Context, key, document string) error
	PurgeOwner(ctx context.Context, ownerID string) error
}

// KYCService manages KYC records owned by an authenticated user.
type KYCService interface {
	Create(ctx context.Context, ownerID, document string) (*domain.KYC, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.KYC, error)
}

// PostService manages posts owned by an authenticated user.
type PostService interface {
	Create(ctx context.Context, ownerID, content string) (*domain.Post, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error)
}

type kycService struct {
	records repository.KYCRepository
	archive DocumentArchive
	logger  *logrus.Logger
}

// NewKYCService builds the KYC service. archive may be nil when no object storage is configured.
func NewKYCService(records repository.KYCRepository, archive DocumentArchive, logger *logrus.Logger) KYCService {
	if logger == nil {
		logger = logrus.New()
	}
	return &kycService{
		records: records,
		archive: archive,
		logger:  logger,
	}
}

func (s *kycService) Create(ctx context.Context, ownerID, document string) (*domain.KYC, error) {
	if errs := validation.KYC(document); len(errs) > 0 {
		return nil, errs
	}

	kyc := &domain.KYC{
		ID:       uuid.NewString(),
		UserID:   ownerID,
		Document: document,
	}
	if s.archive != nil {
		kyc.ObjectKey = s.archive.Key(ownerID, kyc.ID)
	}

	// the row goes in first so a missing owner never leaves an object behind
	if err := s.records.Create(ctx, kyc); err != nil {
		return nil, ownerErr(err)
	}
	if s.archive == nil {
		return kyc, nil
	}

	if err := s.archive.Put(ctx, kyc.ObjectKey, document); err != nil {
		if delErr := s.records.Delete(ctx, kyc.ID); delErr != nil {
			s.logger.WithField("kyc_id", kyc.ID).Errorf("rollback kyc after archive failure: %v", delErr)
		}
		return nil, fmt.Errorf("archive kyc document: %w", err)
	}
	return kyc, nil
}

func (s *kycService) ListByOwner(ctx context.Context, ownerID string) ([]domain.KYC, error) {
	return s.records.ListByOwner(ctx, ownerID)
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Create(ctx context.Context, ownerID, content string) (*domain.Post, error) {
	if errs := validation.Post(content); len(errs) > 0 {
		return nil, errs
	}

	post := &domain.Post{
		ID:      uuid.NewString(),
		UserID:  ownerID,
		Content: content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, ownerErr(err)
	}
	return post, nil
}

func (s *postService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	return s.posts.ListByOwner(ctx, ownerID)
}

// ownerErr reports a token whose account has since been deleted as ErrNotFound.
func ownerErr(err error) error {
	if errors.Is(err, repository.ErrOwnerMissing) {
		return ErrNotFound
	}
	return err
}
