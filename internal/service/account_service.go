package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"kycboard/internal/repository"
)

// AccountService removes an account together with everything it owns.
type AccountService interface {
	DeleteAccount(ctx context.Context, userID string) error
}

type accountService struct {
	users   repository.UserRepository
	kyc     repository.KYCRepository
	posts   repository.PostRepository
	archive DocumentArchive
	logger  *logrus.Logger
}

// NewAccountService builds the account service. archive may be nil.
func NewAccountService(
	users repository.UserRepository,
	kyc repository.KYCRepository,
	posts repository.PostRepository,
	archive DocumentArchive,
	logger *logrus.Logger,
) AccountService {
	if logger == nil {
		logger = logrus.New()
	}
	return &accountService{
		users:   users,
		kyc:     kyc,
		posts:   posts,
		archive: archive,
		logger:  logger,
	}
}

// DeleteAccount deletes KYC records, then posts, then the user. Each step is a no-op when
// nothing is left, so a retry after a partial failure finishes the job. Archived documents
// are purged after the KYC rows; a purge failure is logged and does not block the delete.
func (s *accountService) DeleteAccount(ctx context.Context, userID string) error {
	log := s.logger.WithField("user_id", userID)

	kycCount, err := s.kyc.DeleteAllForOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete kyc records: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.PurgeOwner(ctx, userID); err != nil {
			log.Warnf("purge archived kyc documents: %v", err)
		}
	}

	postCount, err := s.posts.DeleteAllForOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	log.WithFields(logrus.Fields{
		"kyc_records": kycCount,
		"posts":       postCount,
	}).Info("account deleted")
	return nil
}
