package repository

import (
	"context"

	"kycboard/internal/domain"
)

// StudentRepository exposes CRUD over directory students.
type StudentRepository interface {
	List(ctx context.Context) ([]domain.Student, error)
	Get(ctx context.Context, id int64) (*domain.Student, error)
	Create(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id int64) error
}

// BoardPostRepository exposes CRUD over directory board posts.
type BoardPostRepository interface {
	List(ctx context.Context) ([]domain.BoardPost, error)
	Get(ctx context.Context, id int64) (*domain.BoardPost, error)
	Create(ctx context.Context, post *domain.BoardPost) error
	Update(ctx context.Context, post *domain.BoardPost) error
	Delete(ctx context.Context, id int64) error
}
