package domain

// DiagnosticQuality is the level the calling service reports for a network quality check.
type DiagnosticQuality string

const (
	DiagnosticQualityUnknown DiagnosticQuality = "unknown"
	DiagnosticQualityGood    DiagnosticQuality = "good"
	DiagnosticQualityPoor    DiagnosticQuality = "poor"
	DiagnosticQualityBad     DiagnosticQuality = "bad"
)

type NetworkQualityDiagnostic string

const (
	NetworkReconnectionQuality NetworkQualityDiagnostic = "network_reconnection_quality"
	NetworkReceiveQuality      NetworkQualityDiagnostic = "network_receive_quality"
	NetworkSendQuality         NetworkQualityDiagnostic = "network_send_quality"
)

type NetworkDiagnostic string

const (
	NetworkUnavailable       NetworkDiagnostic = "network_unavailable"
	NetworkRelaysUnreachable NetworkDiagnostic = "network_relays_unreachable"
)

type MediaDiagnostic string

const (
	SpeakerNotFunctioning          MediaDiagnostic = "speaker_not_functioning"
	SpeakerBusy                    MediaDiagnostic = "speaker_busy"
	SpeakerMuted                   MediaDiagnostic = "speaker_muted"
	SpeakerVolumeZero              MediaDiagnostic = "speaker_volume_zero"
	NoSpeakerDevicesAvailable      MediaDiagnostic = "no_speaker_devices_available"
	SpeakingWhileMicrophoneIsMuted MediaDiagnostic = "speaking_while_microphone_is_muted"
	NoMicrophoneDevicesAvailable   MediaDiagnostic = "no_microphone_devices_available"
	MicrophoneBusy                 MediaDiagnostic = "microphone_busy"
	CameraFrozen                   MediaDiagnostic = "camera_frozen"
	CameraStartFailed              MediaDiagnostic = "camera_start_failed"
	CameraStartTimedOut            MediaDiagnostic = "camera_start_timed_out"
	MicrophoneNotFunctioning       MediaDiagnostic = "microphone_not_functioning"
	MicrophoneMuteUnexpectedly     MediaDiagnostic = "microphone_mute_unexpectedly"
	CameraPermissionDenied         MediaDiagnostic = "camera_permission_denied"
)

type NetworkQualityDiagnosticModel struct {
	Diagnostic NetworkQualityDiagnostic `json:"diagnostic"`
	Value      DiagnosticQuality        `json:"value"`
}

type NetworkDiagnosticModel struct {
	Diagnostic NetworkDiagnostic `json:"diagnostic"`
	Value      bool              `json:"value"`
}

type MediaDiagnosticModel struct {
	Diagnostic MediaDiagnostic `json:"diagnostic"`
	Value      bool            `json:"value"`
}
