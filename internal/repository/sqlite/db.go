package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"kycboard/internal/repository"
)

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
// Foreign keys are enforced on every connection.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// single writer keeps sqlite away from SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}

// Repositories bundles the sqlite-backed repositories sharing one database handle.
type Repositories struct {
	Users repository.UserRepository
	KYC   repository.KYCRepository
	Posts repository.PostRepository
}

// NewRepositories builds every repository and creates their tables, owners first.
func NewRepositories(ctx context.Context, db *sql.DB) (*Repositories, error) {
	repos := &Repositories{
		Users: NewUserRepository(db),
		KYC:   NewKYCRepository(db),
		Posts: NewPostRepository(db),
	}

	if err := repos.Users.Init(ctx); err != nil {
		return nil, fmt.Errorf("init user repository: %w", err)
	}
	if err := repos.KYC.Init(ctx); err != nil {
		return nil, fmt.Errorf("init kyc repository: %w", err)
	}
	if err := repos.Posts.Init(ctx); err != nil {
		return nil, fmt.Errorf("init post repository: %w", err)
	}
	return repos, nil
}

// classify maps sqlite constraint failures onto repository errors.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"):
		return repository.ErrDuplicate
	case strings.Contains(msg, "foreign key constraint"):
		return repository.ErrOwnerMissing
	default:
		return nil
	}
}

func wrapExecErr(op string, err error) error {
	if known := classify(err); known != nil {
		return fmt.Errorf("%s: %w", op, known)
	}
	return fmt.Errorf("%s: %w", op, err)
}
