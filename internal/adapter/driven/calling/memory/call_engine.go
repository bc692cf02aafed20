// Package memory provides an in-process calling service. It answers every request
// immediately, emits the events a real service would, and can be scripted to fail.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrStopped = errors.New("call engine stopped")

// Operation names accepted by Fail.
const (
	OpSetupCall         = "setup_call"
	OpStartCall         = "start_call"
	OpEndCall           = "end_call"
	OpHoldCall          = "hold_call"
	OpResumeCall        = "resume_call"
	OpCameraPreview     = "camera_preview_on"
	OpStartVideo        = "start_video"
	OpStopVideo         = "stop_video"
	OpSwitchCamera      = "switch_camera"
	OpMute              = "mute"
	OpUnmute            = "unmute"
	OpAdmitAll          = "admit_all"
	OpDeclineAll        = "decline_all"
	OpAdmit             = "admit"
	OpDecline           = "decline"
	OpRemove            = "remove_participant"
	OpStartCaptions     = "start_captions"
	OpStopCaptions      = "stop_captions"
	OpSpokenLanguage    = "set_spoken_language"
	OpCaptionLanguage   = "set_caption_language"
	OpSendRtt           = "send_rtt"
	OpSwitchAudioDevice = "switch_audio_device"
)

const eventBuffer = 64

type CallEngine struct {
	mu           sync.Mutex
	failures     map[string]error
	calls        []string
	status       domain.CallingStatus
	camera       domain.CameraDevice
	audio        domain.AudioDeviceType
	participants []domain.ParticipantInfo
	captionsOn   bool
	stopped      bool

	events chan domain.CallEvent
	log    zerolog.Logger
}

func NewCallEngine() *CallEngine {
	return &CallEngine{
		failures: make(map[string]error),
		status:   domain.CallingStatusNone,
		camera:   domain.CameraDeviceFront,
		audio:    domain.AudioDeviceReceiver,
		events:   make(chan domain.CallEvent, eventBuffer),
		log:      log.With().Str("component", "call_engine").Logger(),
	}
}

// Fail makes every later call of op return err. A nil err clears the failure.
func (e *CallEngine) Fail(op string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err == nil {
		delete(e.failures, op)
		return
	}
	e.failures[op] = err
}

// Calls returns the operations invoked so far, in order.
func (e *CallEngine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.calls)
}

func (e *CallEngine) Status() domain.CallingStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *CallEngine) Events() <-chan domain.CallEvent {
	return e.events
}

// Emit pushes ev to the event stream. It blocks when the buffer is full and drops
// the event once the engine is stopped or ctx is done.
func (e *CallEngine) Emit(ctx context.Context, ev domain.CallEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emitLocked(ctx, ev)
}

func (e *CallEngine) emitLocked(ctx context.Context, ev domain.CallEvent) {
	if e.stopped {
		return
	}
	select {
	case e.events <- ev:
	case <-ctx.Done():
		e.log.Warn().Err(ctx.Err()).Msg("Dropped calling event")
	}
}

// Stop closes the event stream. Later requests fail with ErrStopped.
func (e *CallEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	close(e.events)
}

// begin records op and returns the scripted failure for it.
func (e *CallEngine) begin(ctx context.Context, op string) error {
	e.calls = append(e.calls, op)
	if e.stopped {
		return ErrStopped
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.failures[op]
}

func (e *CallEngine) setStatus(ctx context.Context, status domain.CallingStatus) {
	e.status = status
	e.emitLocked(ctx, domain.CallInfoUpdated{Status: status, InternalError: domain.InternalErrorNone})
}

func (e *CallEngine) SetupCall(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.begin(ctx, OpSetupCall)
}

func (e *CallEngine) StartCall(ctx context.Context, cameraOn, audioOn bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpStartCall); err != nil {
		return err
	}
	e.log.Info().Bool("camera_on", cameraOn).Bool("audio_on", audioOn).Msg("Starting call")

	e.emitLocked(ctx, domain.CallIDUpdated{CallID: domain.NewCallID()})
	e.setStatus(ctx, domain.CallingStatusConnecting)
	e.setStatus(ctx, domain.CallingStatusConnected)
	e.emitLocked(ctx, domain.LocalMuteChanged{Muted: !audioOn})
	return nil
}

func (e *CallEngine) EndCall(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpEndCall); err != nil {
		return err
	}
	e.setStatus(ctx, domain.CallingStatusDisconnecting)
	e.setStatus(ctx, domain.CallingStatusDisconnected)
	return nil
}

func (e *CallEngine) HoldCall(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpHoldCall); err != nil {
		return err
	}
	e.setStatus(ctx, domain.CallingStatusLocalHold)
	return nil
}

func (e *CallEngine) ResumeCall(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpResumeCall); err != nil {
		return err
	}
	e.setStatus(ctx, domain.CallingStatusConnected)
	return nil
}

// Drop ends the call from the service side with the given error tag.
func (e *CallEngine) Drop(ctx context.Context, tag domain.InternalError) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = domain.CallingStatusDisconnected
	e.emitLocked(ctx, domain.CallInfoUpdated{Status: domain.CallingStatusDisconnected, InternalError: tag})
}

func (e *CallEngine) RequestCameraPreviewOn(ctx context.Context) (domain.VideoStreamID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpCameraPreview); err != nil {
		return "", err
	}
	return domain.NewVideoStreamID(), nil
}

func (e *CallEngine) StartLocalVideoStream(ctx context.Context) (domain.VideoStreamID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpStartVideo); err != nil {
		return "", err
	}
	return domain.NewVideoStreamID(), nil
}

func (e *CallEngine) StopLocalVideoStream(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.begin(ctx, OpStopVideo)
}

func (e *CallEngine) SwitchCamera(ctx context.Context) (domain.CameraDevice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpSwitchCamera); err != nil {
		return "", err
	}
	if e.camera == domain.CameraDeviceFront {
		e.camera = domain.CameraDeviceBack
	} else {
		e.camera = domain.CameraDeviceFront
	}
	return e.camera, nil
}

func (e *CallEngine) MuteLocalMic(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpMute); err != nil {
		return err
	}
	e.emitLocked(ctx, domain.LocalMuteChanged{Muted: true})
	return nil
}

func (e *CallEngine) UnmuteLocalMic(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpUnmute); err != nil {
		return err
	}
	e.emitLocked(ctx, domain.LocalMuteChanged{Muted: false})
	return nil
}

func (e *CallEngine) SwitchAudioDevice(ctx context.Context, device domain.AudioDeviceType) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpSwitchAudioDevice); err != nil {
		return err
	}
	e.audio = device
	return nil
}

func (e *CallEngine) AudioDevice() domain.AudioDeviceType {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.audio
}

func (e *CallEngine) SendRttMessage(ctx context.Context, message string, isFinal bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpSendRtt); err != nil {
		return err
	}
	e.log.Debug().Int("length", len(message)).Bool("final", isFinal).Msg("RTT message sent")
	return nil
}
