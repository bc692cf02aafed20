package middleware

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Job is a side effect bound to a state snapshot. It reports outcomes through dispatch.
type Job func(dispatch Dispatch)

// CallingHandler performs calling side effects and turns their outcome into actions.
// It never retries; every failure is logged and dispatched.
type CallingHandler struct {
	calling port.CallingService
	audio   port.AudioRouter
	metrics port.Metrics
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	log    zerolog.Logger

	mu     sync.Mutex
	closed bool
}

type HandlerOption func(*CallingHandler)

func WithMetrics(m port.Metrics) HandlerOption {
	return func(h *CallingHandler) { h.metrics = m }
}

func WithClock(now func() time.Time) HandlerOption {
	return func(h *CallingHandler) { h.now = now }
}

func NewCallingHandler(calling port.CallingService, audio port.AudioRouter, opts ...HandlerOption) *CallingHandler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &CallingHandler{
		calling: calling,
		audio:   audio,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		log:     log.With().Str("component", "calling_handler").Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Go runs job on a tracked goroutine. Jobs arriving after Close are dropped.
func (h *CallingHandler) Go(name string, job func()) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.log.Debug().Str("job", name).Msg("Side effect dropped after close")
		return
	}
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				h.log.Error().Interface("panic", r).Str("job", name).Msg("Side effect panicked")
			}
		}()
		job()
	}()
}

// Wait blocks until every started side effect has finished.
func (h *CallingHandler) Wait() {
	h.wg.Wait()
}

// Close cancels in-flight side effects and waits for them.
func (h *CallingHandler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
}

// Route returns the side effect for a, or nil when a is not a calling intent.
func (h *CallingHandler) Route(a action.Action, s state.AppState) Job {
	switch a := a.(type) {
	case action.SetupCall:
		return h.setupCall(s)
	case action.CallStartRequested:
		return h.startCall(s)
	case action.CallEndRequested:
		return h.endCall()
	case action.HoldRequested:
		return h.holdCall(s)
	case action.ResumeRequested:
		return h.resumeCall(s)

	case action.CameraPreviewOnTriggered:
		return h.requestCameraPreviewOn(s)
	case action.CameraOnTriggered:
		return h.requestCameraOn(s)
	case action.CameraOffTriggered:
		return h.requestCameraOff()
	case action.CameraSwitchTriggered:
		return h.requestCameraSwitch(s)
	case action.MicrophoneOffTriggered:
		return h.requestMicrophoneMute()
	case action.MicrophoneOnTriggered:
		return h.requestMicrophoneUnmute()
	case action.AudioDeviceChangeRequested:
		return h.requestAudioDevice(s, a.Device)

	case action.CameraPermissionGranted:
		return h.onCameraPermissionGranted(s)

	case action.BackgroundEntered:
		return h.requestCameraPause(s)
	case action.ForegroundEntered:
		return h.enterForeground(s)
	case action.WillTerminate:
		if s.Calling.Status == domain.CallingStatusConnected {
			return h.endCall()
		}
		return nil

	case action.AudioInterrupted:
		if s.Calling.Status != domain.CallingStatusConnected {
			return nil
		}
		return func(dispatch Dispatch) { dispatch(action.HoldRequested{}) }

	case action.AdmitAllRequested:
		return h.lobby("admit_all", func(ctx context.Context) error { return h.calling.AdmitAll(ctx) })
	case action.DeclineAllRequested:
		return h.lobby("decline_all", func(ctx context.Context) error { return h.calling.DeclineAll(ctx) })
	case action.AdmitRequested:
		return h.lobby("admit", func(ctx context.Context) error { return h.calling.Admit(ctx, a.Participant) })
	case action.DeclineRequested:
		return h.lobby("decline", func(ctx context.Context) error { return h.calling.Decline(ctx, a.Participant) })
	case action.RemoveRequested:
		return h.lobby("remove_participant", func(ctx context.Context) error {
			return h.calling.RemoveParticipant(ctx, a.Participant)
		})

	case action.TurnOnCaptionsRequested:
		return outcome(h.captions("start_captions", func(ctx context.Context) error {
			return h.calling.StartCaptions(ctx, a.Language)
		}, action.CaptionsStarted{}, domain.ToastCaptionsStartFailed))
	case action.TurnOffCaptionsRequested:
		return outcome(h.captions("stop_captions", func(ctx context.Context) error {
			return h.calling.StopCaptions(ctx)
		}, action.CaptionsStopped{}, domain.ToastNone))
	case action.SetSpokenLanguageRequested:
		return outcome(h.captions("set_spoken_language", func(ctx context.Context) error {
			return h.calling.SetSpokenLanguage(ctx, a.Language)
		}, action.SpokenLanguageChanged{Language: a.Language}, domain.ToastNone))
	case action.SetCaptionLanguageRequested:
		job := h.captions("set_caption_language", func(ctx context.Context) error {
			return h.calling.SetCaptionLanguage(ctx, a.Language)
		}, action.CaptionLanguageChanged{Language: a.Language}, domain.ToastNone)
		return func(dispatch Dispatch) {
			if job(dispatch) {
				dispatch(action.ShowToast{Toast: domain.ToastCaptionsLanguageChanged, At: h.now()})
			}
		}

	case action.TurnOnRtt:
		if s.Rtt.IsOn {
			return nil
		}
		return func(dispatch Dispatch) {
			dispatch(action.ShowToast{Toast: domain.ToastRttTurnedOn, At: h.now()})
		}
	case action.SendRttMessage:
		return h.sendRtt(a)
	}
	return nil
}

func (h *CallingHandler) fail(op string, err error) {
	h.log.Error().Err(err).Str("operation", op).Msg("Calling side effect failed")
	if h.metrics != nil {
		h.metrics.SideEffectFailed(op)
	}
}

func (h *CallingHandler) setupCall(s state.AppState) Job {
	return func(dispatch Dispatch) {
		if err := h.calling.SetupCall(h.ctx); err != nil {
			h.fail("setup_call", err)
			dispatch(action.FromError(err, domain.InternalErrorCallJoinFailed))
			return
		}
		if s.Permission.Camera == state.PermissionGranted &&
			s.LocalUser.Camera.Operation == state.CameraOff &&
			s.Error.InternalError == domain.InternalErrorNone {
			dispatch(action.CameraPreviewOnTriggered{})
		}
		if s.Calling.OperationStatus == state.OperationStatusSkipSetupRequested {
			dispatch(action.CallStartRequested{})
			dispatch(action.CallingViewLaunched{})
		}
	}
}

func (h *CallingHandler) startCall(s state.AppState) Job {
	cameraOn := s.LocalUser.Camera.Operation == state.CameraOn
	audioOn := s.LocalUser.Audio.Operation == state.AudioOn
	return func(dispatch Dispatch) {
		if err := h.calling.StartCall(h.ctx, cameraOn, audioOn); err != nil {
			h.fail("start_call", err)
			dispatch(action.FromError(err, domain.InternalErrorCallJoinFailed))
		}
	}
}

func (h *CallingHandler) endCall() Job {
	return func(dispatch Dispatch) {
		if err := h.calling.EndCall(h.ctx); err != nil {
			h.fail("end_call", err)
			dispatch(action.FromError(err, domain.InternalErrorCallEndFailed))
			dispatch(action.RequestFailed{})
			return
		}
		dispatch(action.CallEnded{})
	}
}

func (h *CallingHandler) holdCall(s state.AppState) Job {
	if s.Calling.Status != domain.CallingStatusConnected {
		return nil
	}
	pause := h.requestCameraPause(s)
	return func(dispatch Dispatch) {
		if err := h.calling.HoldCall(h.ctx); err != nil {
			h.fail("hold_call", err)
			dispatch(action.FromError(err, domain.InternalErrorCallHoldFailed))
			return
		}
		if pause != nil {
			pause(dispatch)
		}
	}
}

func (h *CallingHandler) resumeCall(s state.AppState) Job {
	if s.Calling.Status != domain.CallingStatusLocalHold {
		return nil
	}
	return func(dispatch Dispatch) {
		if err := h.calling.ResumeCall(h.ctx); err != nil {
			h.fail("resume_call", err)
			dispatch(action.FromError(err, domain.InternalErrorCallResumeFailed))
			return
		}
		if s.LocalUser.Camera.Operation == state.CameraPaused {
			h.requestCameraOn(s)(dispatch)
		}
	}
}

func (h *CallingHandler) enterForeground(s state.AppState) Job {
	status := s.Calling.Status
	if status != domain.CallingStatusConnected && status != domain.CallingStatusLocalHold {
		return nil
	}
	if s.LocalUser.Camera.Operation != state.CameraPaused {
		return nil
	}
	return h.requestCameraOn(s)
}

func (h *CallingHandler) requestCameraPreviewOn(s state.AppState) Job {
	return func(dispatch Dispatch) {
		if s.Permission.Camera == state.PermissionNotAsked {
			dispatch(action.CameraPermissionRequested{})
			return
		}
		id, err := h.calling.RequestCameraPreviewOn(h.ctx)
		if err != nil {
			h.fail("camera_preview_on", err)
			dispatch(action.CameraOnFailed{Err: err})
			return
		}
		dispatch(action.CameraOnSucceeded{StreamID: id})
	}
}

func (h *CallingHandler) requestCameraOn(s state.AppState) Job {
	return func(dispatch Dispatch) {
		if s.Permission.Camera == state.PermissionNotAsked {
			dispatch(action.CameraPermissionRequested{})
			return
		}
		id, err := h.calling.StartLocalVideoStream(h.ctx)
		if err != nil {
			h.fail("camera_on", err)
			dispatch(action.CameraOnFailed{Err: err})
			return
		}
		dispatch(action.CameraOnSucceeded{StreamID: id})
	}
}

func (h *CallingHandler) requestCameraOff() Job {
	return func(dispatch Dispatch) {
		if err := h.calling.StopLocalVideoStream(h.ctx); err != nil {
			h.fail("camera_off", err)
			dispatch(action.CameraOffFailed{Err: err})
			return
		}
		dispatch(action.CameraOffSucceeded{})
	}
}

func (h *CallingHandler) requestCameraPause(s state.AppState) Job {
	if s.Calling.Status != domain.CallingStatusConnected || s.LocalUser.Camera.Operation != state.CameraOn {
		return nil
	}
	return func(dispatch Dispatch) {
		if err := h.calling.StopLocalVideoStream(h.ctx); err != nil {
			h.fail("camera_pause", err)
			dispatch(action.CameraPausedFailed{Err: err})
			return
		}
		dispatch(action.CameraPausedSucceeded{})
	}
}

func (h *CallingHandler) requestCameraSwitch(s state.AppState) Job {
	previous := domain.CameraDeviceFront
	if s.LocalUser.Camera.Device == state.CameraDeviceBack {
		previous = domain.CameraDeviceBack
	}
	return func(dispatch Dispatch) {
		device, err := h.calling.SwitchCamera(h.ctx)
		if err != nil {
			h.fail("camera_switch", err)
			dispatch(action.CameraSwitchFailed{Previous: previous, Err: err})
			return
		}
		dispatch(action.CameraSwitchSucceeded{Device: device})
	}
}

func (h *CallingHandler) requestMicrophoneMute() Job {
	return func(dispatch Dispatch) {
		if err := h.calling.MuteLocalMic(h.ctx); err != nil {
			h.fail("microphone_mute", err)
			dispatch(action.MicrophoneOffFailed{Err: err})
		}
	}
}

func (h *CallingHandler) requestMicrophoneUnmute() Job {
	return func(dispatch Dispatch) {
		if err := h.calling.UnmuteLocalMic(h.ctx); err != nil {
			h.fail("microphone_unmute", err)
			dispatch(action.MicrophoneOnFailed{Err: err})
		}
	}
}

func (h *CallingHandler) requestAudioDevice(s state.AppState, device domain.AudioDeviceType) Job {
	var previous domain.AudioDeviceType
	if s.LocalUser.Audio.Device.IsSelected() {
		previous = s.LocalUser.Audio.Device.Device
	}
	return func(dispatch Dispatch) {
		if h.audio == nil {
			dispatch(action.AudioDeviceChangeSucceeded{Device: device})
			return
		}
		if err := h.audio.SwitchAudioDevice(h.ctx, device); err != nil {
			h.fail("audio_device_change", err)
			dispatch(action.AudioDeviceChangeFailed{Previous: previous, Err: err})
			return
		}
		dispatch(action.AudioDeviceChangeSucceeded{Device: device})
	}
}

// onCameraPermissionGranted resumes the camera request that was waiting on the prompt.
func (h *CallingHandler) onCameraPermissionGranted(s state.AppState) Job {
	if s.Permission.Camera != state.PermissionRequesting {
		return nil
	}
	return func(dispatch Dispatch) {
		switch s.LocalUser.Camera.Transmission {
		case state.CameraTransmissionRemote:
			dispatch(action.CameraOnTriggered{})
		default:
			dispatch(action.CameraPreviewOnTriggered{})
		}
	}
}

func (h *CallingHandler) lobby(op string, call func(ctx context.Context) error) Job {
	return func(dispatch Dispatch) {
		if err := call(h.ctx); err != nil {
			h.fail(op, err)
			dispatch(action.LobbyErrorOccurred{Code: domain.AsLobbyErrorCode(err), At: h.now()})
		}
	}
}

func outcome(f func(Dispatch) bool) Job {
	return func(dispatch Dispatch) { f(dispatch) }
}

// captions runs a captions request. A failure sets the captions error code and,
// when failToast is set, raises that toast. It reports whether the request succeeded.
func (h *CallingHandler) captions(op string, call func(ctx context.Context) error, success action.Action, failToast domain.ToastKind) func(Dispatch) bool {
	return func(dispatch Dispatch) bool {
		if err := call(h.ctx); err != nil {
			h.fail(op, err)
			code := domain.CaptionsRequestFailed
			var tagged domain.CaptionsErrorCode
			if errors.As(err, &tagged) && tagged != domain.CaptionsErrorNone {
				code = tagged
			}
			dispatch(action.CaptionsErrorChanged{Code: code})
			if failToast != domain.ToastNone {
				dispatch(action.ShowToast{Toast: failToast, At: h.now()})
			}
			return false
		}
		dispatch(success)
		return true
	}
}

func (h *CallingHandler) sendRtt(a action.SendRttMessage) Job {
	return func(dispatch Dispatch) {
		if err := h.calling.SendRttMessage(h.ctx, a.Message, a.IsFinal); err != nil {
			h.fail("send_rtt", err)
			dispatch(action.RttSendFailed{Err: err})
		}
	}
}
