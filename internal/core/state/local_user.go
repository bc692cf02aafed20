package state

import "github.com/Wyydra/callstate/internal/core/domain"

type CameraOperation string

const (
	CameraOn      CameraOperation = "on"
	CameraOff     CameraOperation = "off"
	CameraPaused  CameraOperation = "paused"
	CameraPending CameraOperation = "pending"
)

type CameraDeviceSelection string

const (
	CameraDeviceFront     CameraDeviceSelection = "front"
	CameraDeviceBack      CameraDeviceSelection = "back"
	CameraDeviceSwitching CameraDeviceSelection = "switching"
)

// CameraSelectionFor maps a physical camera onto its selection status.
func CameraSelectionFor(device domain.CameraDevice) CameraDeviceSelection {
	if device == domain.CameraDeviceBack {
		return CameraDeviceBack
	}
	return CameraDeviceFront
}

// CameraTransmission tells whether the camera feeds the local preview or the call.
type CameraTransmission string

const (
	CameraTransmissionLocal  CameraTransmission = "local"
	CameraTransmissionRemote CameraTransmission = "remote"
)

type AudioOperation string

const (
	AudioOn      AudioOperation = "on"
	AudioOff     AudioOperation = "off"
	AudioPending AudioOperation = "pending"
)

// AudioDeviceSelection is a route plus whether it is requested or confirmed.
type AudioDeviceSelection struct {
	Device    domain.AudioDeviceType `json:"device"`
	Requested bool                   `json:"requested"`
}

func (s AudioDeviceSelection) IsSelected() bool {
	return !s.Requested
}

type CameraState struct {
	Operation    CameraOperation       `json:"operation"`
	Device       CameraDeviceSelection `json:"device"`
	Transmission CameraTransmission    `json:"transmission"`
	Err          error                 `json:"-"`
}

type AudioState struct {
	Operation AudioOperation       `json:"operation"`
	Device    AudioDeviceSelection `json:"device"`
	Err       error                `json:"-"`
}

type LocalUserState struct {
	Camera             CameraState            `json:"camera"`
	Audio              AudioState             `json:"audio"`
	DisplayName        string                 `json:"display_name,omitempty"`
	LocalVideoStreamID domain.VideoStreamID   `json:"local_video_stream_id,omitempty"`
	Role               domain.ParticipantRole `json:"role"`
}

func NewLocalUserState() LocalUserState {
	return LocalUserState{
		Camera: CameraState{
			Operation:    CameraOff,
			Device:       CameraDeviceFront,
			Transmission: CameraTransmissionLocal,
		},
		Audio: AudioState{
			Operation: AudioOff,
			Device:    AudioDeviceSelection{Device: domain.AudioDeviceReceiver},
		},
		Role: domain.ParticipantRoleUnknown,
	}
}
