package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Wyydra/callstate/internal/core/domain"
)

var ErrInvalidCapacity = errors.New("journal capacity must be positive")

// JournalRepository keeps the last capacity entries in a ring buffer.
type JournalRepository struct {
	mu      sync.Mutex
	entries []domain.JournalEntry
	next    int
	full    bool
}

func NewJournalRepository(capacity int) (*JournalRepository, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &JournalRepository{
		entries: make([]domain.JournalEntry, capacity),
	}, nil
}

func (r *JournalRepository) Save(ctx context.Context, entry domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	start := 0
	if r.full {
		size = len(r.entries)
		start = r.next
	}
	if limit > 0 && limit < size {
		start += size - limit
		size = limit
	}

	out := make([]domain.JournalEntry, 0, size)
	for i := range size {
		out = append(out, r.entries[(start+i)%len(r.entries)])
	}
	return out, nil
}

func (r *JournalRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.entries)
	}
	return r.next
}
