package reducer

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/state"
)

// Error keeps at most one active error. Starting a call clears it.
func Error(s state.ErrorState, a action.Action) state.ErrorState {
	switch a := a.(type) {
	case action.FatalErrorUpdated:
		return state.ErrorState{InternalError: a.Tag, Err: a.Err, Category: domain.ErrorCategoryFatal}
	case action.StatusErrorAndCallReset:
		return state.ErrorState{InternalError: a.Tag, Err: a.Err, Category: domain.ErrorCategoryCallState}
	case action.OperationFailed:
		return state.ErrorState{InternalError: a.Tag, Err: a.Err, Category: domain.ErrorCategoryNone}
	case action.CameraOnFailed:
		return state.ErrorState{
			InternalError: domain.InternalErrorCameraOnFailed,
			Err:           a.Err,
			Category:      domain.ErrorCategoryCallState,
		}
	case action.CallStartRequested:
		return state.NewErrorState()
	}
	return s
}
