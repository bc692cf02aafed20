package reducer

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/state"
)

// LocalUser reduces camera, microphone and audio route state. A failed operation puts
// the control back to its last good value and keeps the error.
func LocalUser(s state.LocalUserState, a action.Action) state.LocalUserState {
	switch a := a.(type) {
	case action.CameraPreviewOnTriggered:
		s.Camera.Transmission = state.CameraTransmissionLocal
		s.Camera.Operation = state.CameraPending
	case action.CameraOnTriggered:
		s.Camera.Transmission = state.CameraTransmissionRemote
		s.Camera.Operation = state.CameraPending
	case action.CameraOffTriggered:
		s.Camera.Operation = state.CameraPending
	case action.CameraOnSucceeded:
		s.LocalVideoStreamID = a.StreamID
		s.Camera.Operation = state.CameraOn
	case action.CameraOnFailed:
		s.Camera.Operation = state.CameraOff
		s.Camera.Err = a.Err
	case action.CameraOffSucceeded:
		s.LocalVideoStreamID = ""
		s.Camera.Operation = state.CameraOff
	case action.CameraOffFailed:
		s.Camera.Operation = state.CameraOn
		s.Camera.Err = a.Err
	case action.CameraPausedSucceeded:
		s.Camera.Operation = state.CameraPaused
	case action.CameraPausedFailed:
		s.Camera.Err = a.Err
	case action.CameraSwitchTriggered:
		s.Camera.Device = state.CameraDeviceSwitching
	case action.CameraSwitchSucceeded:
		s.Camera.Device = state.CameraSelectionFor(a.Device)
	case action.CameraSwitchFailed:
		s.Camera.Device = state.CameraSelectionFor(a.Previous)
		s.Camera.Err = a.Err
	case action.MicrophoneOnTriggered, action.MicrophoneOffTriggered:
		s.Audio.Operation = state.AudioPending
	case action.MicrophonePreviewOn:
		s.Audio.Operation = state.AudioOn
	case action.MicrophonePreviewOff:
		s.Audio.Operation = state.AudioOff
	case action.MicrophoneOnFailed:
		s.Audio.Operation = state.AudioOff
		s.Audio.Err = a.Err
	case action.MicrophoneOffFailed:
		s.Audio.Operation = state.AudioOn
		s.Audio.Err = a.Err
	case action.MicrophoneMuteStateUpdated:
		if a.Muted {
			s.Audio.Operation = state.AudioOff
		} else {
			s.Audio.Operation = state.AudioOn
		}
	case action.AudioDeviceChangeRequested:
		s.Audio.Device = state.AudioDeviceSelection{Device: a.Device, Requested: true}
	case action.AudioDeviceChangeSucceeded:
		s.Audio.Device = state.AudioDeviceSelection{Device: a.Device}
	case action.AudioDeviceChangeFailed:
		if a.Previous != "" {
			s.Audio.Device = state.AudioDeviceSelection{Device: a.Previous}
		}
		s.Audio.Err = a.Err
	case action.ParticipantRoleChanged:
		s.Role = a.Role
	}
	return s
}
