package store

import (
	"context"

	"github.com/Wyydra/callstate/internal/core/domain"
)

type nopCalling struct{}

func (nopCalling) SetupCall(context.Context) error                  { return nil }
func (nopCalling) StartCall(context.Context, bool, bool) error      { return nil }
func (nopCalling) EndCall(context.Context) error                    { return nil }
func (nopCalling) HoldCall(context.Context) error                   { return nil }
func (nopCalling) ResumeCall(context.Context) error                 { return nil }
func (nopCalling) StopLocalVideoStream(context.Context) error       { return nil }
func (nopCalling) MuteLocalMic(context.Context) error               { return nil }
func (nopCalling) UnmuteLocalMic(context.Context) error             { return nil }
func (nopCalling) AdmitAll(context.Context) error                   { return nil }
func (nopCalling) DeclineAll(context.Context) error                 { return nil }
func (nopCalling) StopCaptions(context.Context) error               { return nil }
func (nopCalling) StartCaptions(context.Context, string) error      { return nil }
func (nopCalling) SetSpokenLanguage(context.Context, string) error  { return nil }
func (nopCalling) SetCaptionLanguage(context.Context, string) error { return nil }
func (nopCalling) SendRttMessage(context.Context, string, bool) error {
	return nil
}
func (nopCalling) Admit(context.Context, domain.ParticipantID) error   { return nil }
func (nopCalling) Decline(context.Context, domain.ParticipantID) error { return nil }
func (nopCalling) RemoveParticipant(context.Context, domain.ParticipantID) error {
	return nil
}
func (nopCalling) RequestCameraPreviewOn(context.Context) (domain.VideoStreamID, error) {
	return "preview", nil
}
func (nopCalling) StartLocalVideoStream(context.Context) (domain.VideoStreamID, error) {
	return "video", nil
}
func (nopCalling) SwitchCamera(context.Context) (domain.CameraDevice, error) {
	return domain.CameraDeviceBack, nil
}
func (nopCalling) Events() <-chan domain.CallEvent { return nil }
