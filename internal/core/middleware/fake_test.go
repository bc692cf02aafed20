package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
)

type fakeCalling struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error

	streamID domain.VideoStreamID
	device   domain.CameraDevice
	events   chan domain.CallEvent
}

func newFakeCalling() *fakeCalling {
	return &fakeCalling{
		fail:     make(map[string]error),
		streamID: "vid-1",
		device:   domain.CameraDeviceBack,
		events:   make(chan domain.CallEvent),
	}
}

func (f *fakeCalling) failWith(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[op] = err
}

func (f *fakeCalling) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	return f.fail[op]
}

func (f *fakeCalling) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeCalling) SetupCall(ctx context.Context) error { return f.record("setup_call") }
func (f *fakeCalling) StartCall(ctx context.Context, cameraOn, audioOn bool) error {
	return f.record("start_call")
}
func (f *fakeCalling) EndCall(ctx context.Context) error    { return f.record("end_call") }
func (f *fakeCalling) HoldCall(ctx context.Context) error   { return f.record("hold_call") }
func (f *fakeCalling) ResumeCall(ctx context.Context) error { return f.record("resume_call") }
func (f *fakeCalling) RequestCameraPreviewOn(ctx context.Context) (domain.VideoStreamID, error) {
	return f.streamID, f.record("camera_preview_on")
}
func (f *fakeCalling) StartLocalVideoStream(ctx context.Context) (domain.VideoStreamID, error) {
	return f.streamID, f.record("start_video")
}
func (f *fakeCalling) StopLocalVideoStream(ctx context.Context) error {
	return f.record("stop_video")
}
func (f *fakeCalling) SwitchCamera(ctx context.Context) (domain.CameraDevice, error) {
	return f.device, f.record("switch_camera")
}
func (f *fakeCalling) MuteLocalMic(ctx context.Context) error   { return f.record("mute") }
func (f *fakeCalling) UnmuteLocalMic(ctx context.Context) error { return f.record("unmute") }
func (f *fakeCalling) AdmitAll(ctx context.Context) error       { return f.record("admit_all") }
func (f *fakeCalling) DeclineAll(ctx context.Context) error     { return f.record("decline_all") }
func (f *fakeCalling) Admit(ctx context.Context, id domain.ParticipantID) error {
	return f.record("admit")
}
func (f *fakeCalling) Decline(ctx context.Context, id domain.ParticipantID) error {
	return f.record("decline")
}
func (f *fakeCalling) RemoveParticipant(ctx context.Context, id domain.ParticipantID) error {
	return f.record("remove")
}
func (f *fakeCalling) StartCaptions(ctx context.Context, language string) error {
	return f.record("start_captions")
}
func (f *fakeCalling) StopCaptions(ctx context.Context) error { return f.record("stop_captions") }
func (f *fakeCalling) SetSpokenLanguage(ctx context.Context, language string) error {
	return f.record("spoken_language")
}
func (f *fakeCalling) SetCaptionLanguage(ctx context.Context, language string) error {
	return f.record("caption_language")
}
func (f *fakeCalling) SendRttMessage(ctx context.Context, message string, isFinal bool) error {
	return f.record("send_rtt")
}
func (f *fakeCalling) Events() <-chan domain.CallEvent { return f.events }

type fakeAudio struct {
	err error
}

func (f *fakeAudio) SwitchAudioDevice(ctx context.Context, device domain.AudioDeviceType) error {
	return f.err
}

type recorder struct {
	mu      sync.Mutex
	actions []action.Action
}

func (r *recorder) dispatch(a action.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

func (r *recorder) Actions() []action.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]action.Action(nil), r.actions...)
}

type fakeMetrics struct {
	mu        sync.Mutex
	throttled []string
	failed    []string
	kinds     []string
}

func (m *fakeMetrics) ActionDispatched(_, kind string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kinds = append(m.kinds, kind)
}

func (m *fakeMetrics) ActionThrottled(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.throttled = append(m.throttled, key)
}

func (m *fakeMetrics) SideEffectFailed(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, op)
}
