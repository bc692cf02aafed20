package action

import (
	"errors"
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

var errSample = errors.New("sample failure")

// Catalog returns one value of every variant. Tests iterate it to prove every kind is
// routed to at least one reducer.
func Catalog() []Action {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Action{
		CompositeExit{},
		CallingViewLaunched{},

		SetupCall{},
		CallStartRequested{},
		CallEndRequested{},
		CallEnded{},
		RequestFailed{},
		StateUpdated{Status: domain.CallingStatusConnected},
		CallIDUpdated{CallID: "call-1"},
		RecordingStateUpdated{Active: true},
		TranscriptionStateUpdated{Active: true},
		HoldRequested{},
		ResumeRequested{},
		CallStartTimeUpdated{At: at},
		CallBypassRequested{},
		SkipSetupRequested{},

		CameraPreviewOnTriggered{},
		CameraOnTriggered{},
		CameraOffTriggered{},
		CameraOnSucceeded{StreamID: "vid-1"},
		CameraOnFailed{Err: errSample},
		CameraOffSucceeded{},
		CameraOffFailed{Err: errSample},
		CameraPausedSucceeded{},
		CameraPausedFailed{Err: errSample},
		CameraSwitchTriggered{},
		CameraSwitchSucceeded{Device: domain.CameraDeviceBack},
		CameraSwitchFailed{Previous: domain.CameraDeviceFront, Err: errSample},
		MicrophoneOnTriggered{},
		MicrophoneOffTriggered{},
		MicrophoneOnFailed{Err: errSample},
		MicrophoneOffFailed{Err: errSample},
		MicrophonePreviewOn{},
		MicrophonePreviewOff{},
		MicrophoneMuteStateUpdated{Muted: true},
		AudioDeviceChangeRequested{Device: domain.AudioDeviceSpeaker},
		AudioDeviceChangeSucceeded{Device: domain.AudioDeviceSpeaker},
		AudioDeviceChangeFailed{Previous: domain.AudioDeviceReceiver, Err: errSample},
		ParticipantRoleChanged{Role: domain.ParticipantRolePresenter},

		AudioPermissionRequested{},
		AudioPermissionGranted{},
		AudioPermissionDenied{},
		AudioPermissionNotAsked{},
		CameraPermissionRequested{},
		CameraPermissionGranted{},
		CameraPermissionDenied{},
		CameraPermissionNotAsked{},

		ForegroundEntered{},
		BackgroundEntered{},
		WillTerminate{},

		AudioInterrupted{},
		AudioInterruptEnded{},
		AudioEngaged{},

		ShowSupportForm{},
		ShowEndCallConfirmation{},
		ShowAudioSelection{},
		ShowMoreOptions{},
		ShowSupportShare{},
		ShowParticipants{},
		ShowCaptionsList{},
		ShowSpokenLanguageSelection{},
		ShowCaptionsLanguageSelection{},
		ShowParticipantActions{Participant: "p-1"},
		HideDrawer{},
		DismissSetup{},

		FatalErrorUpdated{Tag: domain.InternalErrorCallTokenFailed, Err: errSample},
		StatusErrorAndCallReset{Tag: domain.InternalErrorCallDenied, Err: errSample},
		OperationFailed{Tag: domain.InternalErrorCallHoldFailed, Err: errSample},

		ParticipantListUpdated{Participants: []domain.ParticipantInfo{{ID: "p-1"}}, At: at},
		DominantSpeakersUpdated{Speakers: []domain.ParticipantID{"p-1"}, At: at},
		AdmitAllRequested{},
		DeclineAllRequested{},
		AdmitRequested{Participant: "p-1"},
		DeclineRequested{Participant: "p-1"},
		RemoveRequested{Participant: "p-1"},
		LobbyErrorOccurred{Code: domain.LobbyErrorUnknown, At: at},
		ClearLobbyError{},
		SetTotalParticipantCount{Count: 3},

		NetworkQualityDiagnosticUpdated{Model: domain.NetworkQualityDiagnosticModel{
			Diagnostic: domain.NetworkReceiveQuality, Value: domain.DiagnosticQualityBad,
		}},
		NetworkDiagnosticUpdated{Model: domain.NetworkDiagnosticModel{
			Diagnostic: domain.NetworkUnavailable, Value: true,
		}},
		MediaDiagnosticUpdated{Model: domain.MediaDiagnosticModel{
			Diagnostic: domain.CameraFrozen, Value: true,
		}},
		DismissNetworkQualityDiagnostic{Diagnostic: domain.NetworkReceiveQuality},
		DismissNetworkDiagnostic{Diagnostic: domain.NetworkUnavailable},
		DismissMediaDiagnostic{Diagnostic: domain.CameraFrozen},

		TurnOnCaptionsRequested{Language: "en-us"},
		TurnOffCaptionsRequested{},
		CaptionsStarted{},
		CaptionsStopped{},
		SetSpokenLanguageRequested{Language: "fr-fr"},
		SetCaptionLanguageRequested{Language: "fr"},
		SpokenLanguageChanged{Language: "fr-fr"},
		CaptionLanguageChanged{Language: "fr"},
		TranslationSupportedChanged{Supported: true},
		SupportedSpokenLanguagesChanged{Languages: []string{"en-us", "fr-fr"}},
		SupportedCaptionLanguagesChanged{Languages: []string{"en", "fr"}},
		CaptionsErrorChanged{Code: domain.CaptionsRequestFailed},
		CaptionsTypeChanged{Type: domain.CaptionsTypeTeams},

		TurnOnRtt{},
		UpdateRttMaximized{Maximized: true},
		SendRttMessage{Message: "hello", IsFinal: true},
		RttSendFailed{Err: errSample},

		ShowToast{Toast: domain.ToastSomeoneMutedYou, At: at},
		DismissToast{},
		ButtonEnabledUpdated{Button: domain.ButtonCamera, Enabled: false},
		ButtonVisibleUpdated{Button: domain.ButtonCamera, Visible: false},
		CustomButtonUpdated{ID: "custom-1", Title: "Custom", Enabled: true, Visible: true},
		HeaderTitleUpdated{Title: "Title"},
		HeaderSubtitleUpdated{Subtitle: "Subtitle"},
		PipModeRequested{},
		PipModeEntered{},
		HideRequested{},
		ShowNormalEntered{},
	}
}

// Kinds lists the kind of every variant.
func Kinds() []Kind {
	catalog := Catalog()
	kinds := make([]Kind, 0, len(catalog))
	for _, a := range catalog {
		kinds = append(kinds, a.Kind())
	}
	return kinds
}
