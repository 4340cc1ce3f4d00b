package memory

import (
	"context"

	"kycboard/internal/domain"
	"kycboard/internal/repository"
)

type BoardPostRepository struct {
	rows *table[domain.BoardPost]
}

func NewBoardPostRepository() *BoardPostRepository {
	return &BoardPostRepository{
		rows: newTable(
			func(p *domain.BoardPost) int64 { return p.ID },
			func(p *domain.BoardPost, id int64) { p.ID = id },
		),
	}
}

func (r *BoardPostRepository) List(_ context.Context) ([]domain.BoardPost, error) {
	return r.rows.list(), nil
}

func (r *BoardPostRepository) Get(_ context.Context, id int64) (*domain.BoardPost, error) {
	return r.rows.get(id)
}

func (r *BoardPostRepository) Create(_ context.Context, post *domain.BoardPost) error {
	r.rows.insert(post)
	return nil
}

func (r *BoardPostRepository) Update(_ context.Context, post *domain.BoardPost) error {
	return r.rows.replace(post)
}

func (r *BoardPostRepository) Delete(_ context.Context, id int64) error {
	r.rows.remove(id)
	return nil
}

var _ repository.BoardPostRepository = (*BoardPostRepository)(nil)
