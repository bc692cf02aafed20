package manager

import (
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
)

// ErrorManager reports each new error that has a public code.
type ErrorManager struct {
	handler  port.EventHandler
	prev     domain.InternalError
	category domain.ErrorCategory
}

func NewErrorManager(h port.EventHandler) *ErrorManager {
	return &ErrorManager{handler: h, category: domain.ErrorCategoryNone}
}

func (m *ErrorManager) Observe(s state.AppState) {
	tag, category := s.Error.InternalError, s.Error.Category
	if tag == m.prev && category == m.category {
		return
	}
	m.prev, m.category = tag, category

	if tag == domain.InternalErrorNone {
		return
	}
	code := tag.Code()
	if code == domain.ErrorCodeNone {
		return
	}
	m.handler.OnError(&domain.CompositeError{Code: code, Err: s.Error.Err})
}
