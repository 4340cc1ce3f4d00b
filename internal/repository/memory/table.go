package memory

import (
	"sync"

	"kycboard/internal/repository"
)

// table keeps rows in insertion order and hands out ids from a counter that never rewinds,
// so a deleted id is never reassigned.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   []T
	id     func(*T) int64
	setID  func(*T, int64)
}

func newTable[T any](id func(*T) int64, setID func(*T, int64)) *table[T] {
	return &table[T]{nextID: 1, id: id, setID: setID}
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) get(id int64) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		row := t.rows[i]
		return &row, nil
	}
	return nil, repository.ErrNotFound
}

func (t *table[T]) insert(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.setID(row, t.nextID)
	t.nextID++
	t.rows = append(t.rows, *row)
}

func (t *table[T]) replace(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(t.id(row))
	if i < 0 {
		return repository.ErrNotFound
	}
	t.rows[i] = *row
	return nil
}

// remove reports whether a row was deleted; removing a missing id is not an error.
func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

func (t *table[T]) indexOf(id int64) int {
	for i := range t.rows {
		if t.id(&t.rows[i]) == id {
			return i
		}
	}
	return -1
}
