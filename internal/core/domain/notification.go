package domain

// ToastKind identifies a transient notification shown over the call screen.
type ToastKind string

const (
	ToastNone                     ToastKind = ""
	ToastSomeoneMutedYou          ToastKind = "someone_muted_you"
	ToastNetworkReceiveQualityBad ToastKind = "network_receive_quality_bad"
	ToastNetworkSendQualityBad    ToastKind = "network_send_quality_bad"
	ToastNetworkReconnecting      ToastKind = "network_reconnecting"
	ToastNetworkUnavailable       ToastKind = "network_unavailable"
	ToastSpeakingWhileMuted       ToastKind = "speaking_while_microphone_muted"
	ToastCameraStartFailed        ToastKind = "camera_start_failed"
	ToastCameraFrozen             ToastKind = "camera_frozen"
	ToastCaptionsStartFailed      ToastKind = "captions_start_failed"
	ToastCaptionsLanguageChanged  ToastKind = "captions_language_changed"
	ToastRttTurnedOn              ToastKind = "rtt_turned_on"
)

// ButtonID names a built-in control whose visibility and enabled flags the host can set.
type ButtonID string

const (
	ButtonCamera           ButtonID = "camera"
	ButtonMicrophone       ButtonID = "microphone"
	ButtonAudioDevice      ButtonID = "audio_device"
	ButtonEndCall          ButtonID = "end_call"
	ButtonParticipants     ButtonID = "participants"
	ButtonMoreOptions      ButtonID = "more_options"
	ButtonLiveCaptions     ButtonID = "live_captions"
	ButtonSpokenLanguage   ButtonID = "spoken_language"
	ButtonCaptionsLanguage ButtonID = "captions_language"
	ButtonRtt              ButtonID = "rtt"
	ButtonShareDiagnostics ButtonID = "share_diagnostics"
	ButtonReportIssue      ButtonID = "report_issue"
)

// ButtonIDs lists every built-in button in display order.
func ButtonIDs() []ButtonID {
	return []ButtonID{
		ButtonCamera,
		ButtonMicrophone,
		ButtonAudioDevice,
		ButtonEndCall,
		ButtonParticipants,
		ButtonMoreOptions,
		ButtonLiveCaptions,
		ButtonSpokenLanguage,
		ButtonCaptionsLanguage,
		ButtonRtt,
		ButtonShareDiagnostics,
		ButtonReportIssue,
	}
}
