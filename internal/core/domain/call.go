package domain

// CallingStatus is the status the calling service reports for the active call.
type CallingStatus string

const (
	CallingStatusNone          CallingStatus = "none"
	CallingStatusEarlyMedia    CallingStatus = "early_media"
	CallingStatusConnecting    CallingStatus = "connecting"
	CallingStatusRinging       CallingStatus = "ringing"
	CallingStatusConnected     CallingStatus = "connected"
	CallingStatusLocalHold     CallingStatus = "local_hold"
	CallingStatusRemoteHold    CallingStatus = "remote_hold"
	CallingStatusDisconnecting CallingStatus = "disconnecting"
	CallingStatusDisconnected  CallingStatus = "disconnected"
	CallingStatusInLobby       CallingStatus = "in_lobby"
)

// IsActive reports whether media can flow for the status.
func (s CallingStatus) IsActive() bool {
	switch s {
	case CallingStatusConnected, CallingStatusLocalHold, CallingStatusRemoteHold:
		return true
	default:
		return false
	}
}

// CallEndReason is the code/subcode pair the service attaches to a terminated call.
type CallEndReason struct {
	Code    int `json:"code"`
	SubCode int `json:"sub_code"`
}

type CameraDevice string

const (
	CameraDeviceFront CameraDevice = "front"
	CameraDeviceBack  CameraDevice = "back"
)

type AudioDeviceType string

const (
	AudioDeviceSpeaker    AudioDeviceType = "speaker"
	AudioDeviceReceiver   AudioDeviceType = "receiver"
	AudioDeviceBluetooth  AudioDeviceType = "bluetooth"
	AudioDeviceHeadphones AudioDeviceType = "headphones"
)

func (d AudioDeviceType) Valid() bool {
	switch d {
	case AudioDeviceSpeaker, AudioDeviceReceiver, AudioDeviceBluetooth, AudioDeviceHeadphones:
		return true
	default:
		return false
	}
}
