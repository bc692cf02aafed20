package action

import "github.com/Wyydra/callstate/internal/core/domain"

type CameraPreviewOnTriggered struct{}

type CameraOnTriggered struct{}

type CameraOffTriggered struct{}

type CameraOnSucceeded struct {
	StreamID domain.VideoStreamID
}

type CameraOnFailed struct {
	Err error
}

type CameraOffSucceeded struct{}

type CameraOffFailed struct {
	Err error
}

type CameraPausedSucceeded struct{}

type CameraPausedFailed struct {
	Err error
}

type CameraSwitchTriggered struct{}

type CameraSwitchSucceeded struct {
	Device domain.CameraDevice
}

// CameraSwitchFailed restores the camera that was active before the switch.
type CameraSwitchFailed struct {
	Previous domain.CameraDevice
	Err      error
}

type MicrophoneOnTriggered struct{}

type MicrophoneOffTriggered struct{}

type MicrophoneOnFailed struct {
	Err error
}

type MicrophoneOffFailed struct {
	Err error
}

type MicrophonePreviewOn struct{}

type MicrophonePreviewOff struct{}

// MicrophoneMuteStateUpdated is the mute state the calling service reports.
type MicrophoneMuteStateUpdated struct {
	Muted bool
}

type AudioDeviceChangeRequested struct {
	Device domain.AudioDeviceType
}

type AudioDeviceChangeSucceeded struct {
	Device domain.AudioDeviceType
}

// AudioDeviceChangeFailed restores the last selected route.
type AudioDeviceChangeFailed struct {
	Previous domain.AudioDeviceType
	Err      error
}

type ParticipantRoleChanged struct {
	Role domain.ParticipantRole
}

func (CameraPreviewOnTriggered) Kind() Kind   { return "localUser.cameraPreviewOnTriggered" }
func (CameraOnTriggered) Kind() Kind          { return "localUser.cameraOnTriggered" }
func (CameraOffTriggered) Kind() Kind         { return "localUser.cameraOffTriggered" }
func (CameraOnSucceeded) Kind() Kind          { return "localUser.cameraOnSucceeded" }
func (CameraOnFailed) Kind() Kind             { return "localUser.cameraOnFailed" }
func (CameraOffSucceeded) Kind() Kind         { return "localUser.cameraOffSucceeded" }
func (CameraOffFailed) Kind() Kind            { return "localUser.cameraOffFailed" }
func (CameraPausedSucceeded) Kind() Kind      { return "localUser.cameraPausedSucceeded" }
func (CameraPausedFailed) Kind() Kind         { return "localUser.cameraPausedFailed" }
func (CameraSwitchTriggered) Kind() Kind      { return "localUser.cameraSwitchTriggered" }
func (CameraSwitchSucceeded) Kind() Kind      { return "localUser.cameraSwitchSucceeded" }
func (CameraSwitchFailed) Kind() Kind         { return "localUser.cameraSwitchFailed" }
func (MicrophoneOnTriggered) Kind() Kind      { return "localUser.microphoneOnTriggered" }
func (MicrophoneOffTriggered) Kind() Kind     { return "localUser.microphoneOffTriggered" }
func (MicrophoneOnFailed) Kind() Kind         { return "localUser.microphoneOnFailed" }
func (MicrophoneOffFailed) Kind() Kind        { return "localUser.microphoneOffFailed" }
func (MicrophonePreviewOn) Kind() Kind        { return "localUser.microphonePreviewOn" }
func (MicrophonePreviewOff) Kind() Kind       { return "localUser.microphonePreviewOff" }
func (MicrophoneMuteStateUpdated) Kind() Kind { return "localUser.microphoneMuteStateUpdated" }
func (AudioDeviceChangeRequested) Kind() Kind { return "localUser.audioDeviceChangeRequested" }
func (AudioDeviceChangeSucceeded) Kind() Kind { return "localUser.audioDeviceChangeSucceeded" }
func (AudioDeviceChangeFailed) Kind() Kind    { return "localUser.audioDeviceChangeFailed" }
func (ParticipantRoleChanged) Kind() Kind     { return "localUser.participantRoleChanged" }

func (CameraPreviewOnTriggered) isAction()   {}
func (CameraOnTriggered) isAction()          {}
func (CameraOffTriggered) isAction()         {}
func (CameraOnSucceeded) isAction()          {}
func (CameraOnFailed) isAction()             {}
func (CameraOffSucceeded) isAction()         {}
func (CameraOffFailed) isAction()            {}
func (CameraPausedSucceeded) isAction()      {}
func (CameraPausedFailed) isAction()         {}
func (CameraSwitchTriggered) isAction()      {}
func (CameraSwitchSucceeded) isAction()      {}
func (CameraSwitchFailed) isAction()         {}
func (MicrophoneOnTriggered) isAction()      {}
func (MicrophoneOffTriggered) isAction()     {}
func (MicrophoneOnFailed) isAction()         {}
func (MicrophoneOffFailed) isAction()        {}
func (MicrophonePreviewOn) isAction()        {}
func (MicrophonePreviewOff) isAction()       {}
func (MicrophoneMuteStateUpdated) isAction() {}
func (AudioDeviceChangeRequested) isAction() {}
func (AudioDeviceChangeSucceeded) isAction() {}
func (AudioDeviceChangeFailed) isAction()    {}
func (ParticipantRoleChanged) isAction()     {}
