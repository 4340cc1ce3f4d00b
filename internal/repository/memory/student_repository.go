package memory

import (
	"context"

	"kycboard/internal/domain"
	"kycboard/internal/repository"
)

type StudentRepository struct {
	rows *table[domain.Student]
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		rows: newTable(
			func(s *domain.Student) int64 { return s.ID },
			func(s *domain.Student, id int64) { s.ID = id },
		),
	}
}

func (r *StudentRepository) List(_ context.Context) ([]domain.Student, error) {
	return r.rows.list(), nil
}

func (r *StudentRepository) Get(_ context.Context, id int64) (*domain.Student, error) {
	return r.rows.get(id)
}

func (r *StudentRepository) Create(_ context.Context, student *domain.Student) error {
	r.rows.insert(student)
	return nil
}

func (r *StudentRepository) Update(_ context.Context, student *domain.Student) error {
	return r.rows.replace(student)
}

func (r *StudentRepository) Delete(_ context.Context, id int64) error {
	r.rows.remove(id)
	return nil
}

var _ repository.StudentRepository = (*StudentRepository)(nil)
