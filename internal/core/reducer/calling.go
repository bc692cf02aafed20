package reducer

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/state"
)

// Calling reduces the call slice. A call-state error resets it to its default value,
// which clears recording and transcription.
func Calling(s state.CallingState, a action.Action) state.CallingState {
	switch a := a.(type) {
	case action.StateUpdated:
		s.Status = a.Status
		s.CallEndReason = a.EndReason
	case action.CallIDUpdated:
		s.CallID = a.CallID
	case action.RecordingStateUpdated:
		s.IsRecordingActive = a.Active
	case action.TranscriptionStateUpdated:
		s.IsTranscriptionActive = a.Active
	case action.CallStartTimeUpdated:
		s.CallStartTime = a.At
	case action.CallStartRequested, action.RequestFailed:
		s.OperationStatus = state.OperationStatusNone
	case action.CallBypassRequested:
		s.OperationStatus = state.OperationStatusBypassRequested
	case action.SkipSetupRequested:
		s.OperationStatus = state.OperationStatusSkipSetupRequested
	case action.CallEndRequested:
		s.OperationStatus = state.OperationStatusCallEndRequested
	case action.CallEnded:
		s.OperationStatus = state.OperationStatusCallEnded
	case action.StatusErrorAndCallReset:
		return state.NewCallingState()
	}
	return s
}
