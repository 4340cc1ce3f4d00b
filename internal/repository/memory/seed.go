package memory

import (
	"context"

	"kycboard/internal/domain"
)

// Seed loads the demo directory: four students and two board posts.
func Seed(ctx context.Context, students *StudentRepository, posts *BoardPostRepository) error {
	for _, s := range []domain.Student{
		{Name: "david", Age: 20, MaritalStatus: false},
		{Name: "flora", Age: 21, MaritalStatus: true},
		{Name: "mike", Age: 50, MaritalStatus: true},
		{Name: "maris", Age: 28, MaritalStatus: false},
	} {
		if err := students.Create(ctx, &s); err != nil {
			return err
		}
	}
	for _, p := range []domain.BoardPost{
		{UserID: 1, Content: "Post by david"},
		{UserID: 2, Content: "Post by flora"},
	} {
		if err := posts.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
