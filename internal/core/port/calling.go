package port

import (
	"context"

	"github.com/Wyydra/callstate/internal/core/domain"
)

// CallingService wraps the calling SDK. Every method blocks until the SDK answers;
// errors may wrap a domain.InternalError or a domain.LobbyErrorCode.
type CallingService interface {
	SetupCall(ctx context.Context) error
	StartCall(ctx context.Context, cameraOn, audioOn bool) error
	EndCall(ctx context.Context) error
	HoldCall(ctx context.Context) error
	ResumeCall(ctx context.Context) error

	RequestCameraPreviewOn(ctx context.Context) (domain.VideoStreamID, error)
	StartLocalVideoStream(ctx context.Context) (domain.VideoStreamID, error)
	StopLocalVideoStream(ctx context.Context) error
	SwitchCamera(ctx context.Context) (domain.CameraDevice, error)
	MuteLocalMic(ctx context.Context) error
	UnmuteLocalMic(ctx context.Context) error

	LobbyService
	CaptionsService

	SendRttMessage(ctx context.Context, message string, isFinal bool) error

	// Events streams SDK notifications. The channel is closed when the service stops.
	Events() <-chan domain.CallEvent
}

type LobbyService interface {
	AdmitAll(ctx context.Context) error
	DeclineAll(ctx context.Context) error
	Admit(ctx context.Context, id domain.ParticipantID) error
	Decline(ctx context.Context, id domain.ParticipantID) error
	RemoveParticipant(ctx context.Context, id domain.ParticipantID) error
}

type CaptionsService interface {
	StartCaptions(ctx context.Context, language string) error
	StopCaptions(ctx context.Context) error
	SetSpokenLanguage(ctx context.Context, language string) error
	SetCaptionLanguage(ctx context.Context, language string) error
}

// AudioRouter switches the audio output route.
type AudioRouter interface {
	SwitchAudioDevice(ctx context.Context, device domain.AudioDeviceType) error
}
