package state

import "github.com/Wyydra/callstate/internal/core/domain"

// ErrorState holds at most one active internal error.
type ErrorState struct {
	InternalError domain.InternalError `json:"internal_error,omitempty"`
	Err           error                `json:"-"`
	Category      domain.ErrorCategory `json:"category"`
}

func NewErrorState() ErrorState {
	return ErrorState{Category: domain.ErrorCategoryNone}
}
