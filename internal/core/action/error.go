package action

import "github.com/Wyydra/callstate/internal/core/domain"

// FatalErrorUpdated records an unrecoverable error; navigation moves to exit.
type FatalErrorUpdated struct {
	Tag domain.InternalError
	Err error
}

// StatusErrorAndCallReset tears the call down and returns to setup.
type StatusErrorAndCallReset struct {
	Tag domain.InternalError
	Err error
}

// OperationFailed records a transient failure without any cascade.
type OperationFailed struct {
	Tag domain.InternalError
	Err error
}

func (FatalErrorUpdated) Kind() Kind       { return "error.fatalErrorUpdated" }
func (StatusErrorAndCallReset) Kind() Kind { return "error.statusErrorAndCallReset" }
func (OperationFailed) Kind() Kind         { return "error.operationFailed" }

func (FatalErrorUpdated) isAction()       {}
func (StatusErrorAndCallReset) isAction() {}
func (OperationFailed) isAction()         {}

// FromError maps a side-effect failure onto the error action for its category. A tag
// wrapped inside err wins over fallback.
func FromError(err error, fallback domain.InternalError) Action {
	tag := fallback
	if wrapped, ok := domain.AsInternalError(err); ok {
		tag = wrapped
	}

	switch tag.Category() {
	case domain.ErrorCategoryFatal:
		return FatalErrorUpdated{Tag: tag, Err: err}
	case domain.ErrorCategoryCallState:
		return StatusErrorAndCallReset{Tag: tag, Err: err}
	default:
		return OperationFailed{Tag: tag, Err: err}
	}
}
