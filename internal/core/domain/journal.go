package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records one dispatched action for support diagnostics.
type JournalEntry struct {
	ID    string    `json:"id"`
	Kind  string    `json:"kind"`
	At    time.Time `json:"at"`
	Error string    `json:"error,omitempty"`
}

func NewJournalEntry(kind string, at time.Time, err error) JournalEntry {
	e := JournalEntry{
		ID:   uuid.New().String(),
		Kind: kind,
		At:   at,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
