package port

import (
	"context"

	"github.com/Wyydra/callstate/internal/core/domain"
)

// ActionJournal keeps the recent action history attached to support reports.
type ActionJournal interface {
	Save(ctx context.Context, entry domain.JournalEntry) error
	// Recent returns up to limit entries, oldest first. A non-positive limit returns all.
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}
