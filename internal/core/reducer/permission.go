package reducer

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/state"
)

func Permission(s state.PermissionState, a action.Action) state.PermissionState {
	switch a.(type) {
	case action.AudioPermissionRequested:
		s.Audio = state.PermissionRequesting
	case action.AudioPermissionGranted:
		s.Audio = state.PermissionGranted
	case action.AudioPermissionDenied:
		s.Audio = state.PermissionDenied
	case action.AudioPermissionNotAsked:
		s.Audio = state.PermissionNotAsked
	case action.CameraPermissionRequested:
		s.Camera = state.PermissionRequesting
	case action.CameraPermissionGranted:
		s.Camera = state.PermissionGranted
	case action.CameraPermissionDenied:
		s.Camera = state.PermissionDenied
	case action.CameraPermissionNotAsked:
		s.Camera = state.PermissionNotAsked
	}
	return s
}

func LifeCycle(s state.LifeCycleState, a action.Action) state.LifeCycleState {
	switch a.(type) {
	case action.ForegroundEntered:
		s.Current = state.AppForeground
	case action.BackgroundEntered:
		s.Current = state.AppBackground
	}
	return s
}

func AudioSession(s state.AudioSessionState, a action.Action) state.AudioSessionState {
	switch a.(type) {
	case action.AudioInterrupted:
		s.Status = state.AudioSessionInterrupted
	case action.AudioInterruptEnded, action.AudioEngaged:
		s.Status = state.AudioSessionActive
	}
	return s
}
