package storage

import (
	"context"
	"sync"

	"rolodex/internal/book"
)

// InMemory keeps the last saved snapshot in process memory. It backs tests
// and can serve as a no-persistence mode; it intentionally favors clarity
// over performance.
type InMemory struct {
	mu      sync.RWMutex
	records []contactRecord
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Load(_ context.Context) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.records == nil {
		return book.New(), nil
	}
	return restore(s.records)
}

func (s *InMemory) Save(_ context.Context, b *book.Book) error {
	if b == nil {
		return ErrNilBook
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = snapshotOf(b)
	return nil
}
