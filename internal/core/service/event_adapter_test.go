package service

import (
	"sync"
	"testing"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	mu      sync.Mutex
	actions []action.Action
}

func (r *recorder) dispatch(a action.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

func (r *recorder) all() []action.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]action.Action(nil), r.actions...)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.actions)
}

func newAdapter(window time.Duration) (*EventAdapter, chan domain.CallEvent, *recorder) {
	events := make(chan domain.CallEvent)
	rec := &recorder{}
	a := NewEventAdapter(events, rec.dispatch, window)
	a.now = func() time.Time { return at }
	return a, events, rec
}

// run feeds events through an adapter without a coalescing window and returns what
// it dispatched.
func run(t *testing.T, events ...domain.CallEvent) []action.Action {
	t.Helper()
	a, ch, rec := newAdapter(0)
	go a.Run()
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	select {
	case <-a.done:
	case <-time.After(time.Second):
		t.Fatal("adapter did not stop")
	}
	return rec.all()
}

func TestAdapterMapsEvents(t *testing.T) {
	t.Parallel()

	got := run(t,
		domain.CallIDUpdated{CallID: "c1"},
		domain.DominantSpeakersChanged{Speakers: []domain.ParticipantID{"p1"}},
		domain.TotalParticipantCountChanged{Count: 3},
		domain.LocalRoleChanged{Role: domain.ParticipantRolePresenter},
		domain.CaptionsActiveChanged{Active: true},
		domain.CaptionsActiveChanged{Active: false},
	)

	assert.Equal(t, []action.Action{
		action.CallIDUpdated{CallID: "c1"},
		action.DominantSpeakersUpdated{Speakers: []domain.ParticipantID{"p1"}, At: at},
		action.SetTotalParticipantCount{Count: 3},
		action.ParticipantRoleChanged{Role: domain.ParticipantRolePresenter},
		action.CaptionsStarted{},
		action.CaptionsStopped{},
	}, got)
}

func TestAdapterSuppressesRepeatedFlags(t *testing.T) {
	t.Parallel()

	got := run(t,
		domain.RecordingChanged{Active: true},
		domain.RecordingChanged{Active: true},
		domain.TranscriptionChanged{Active: false},
		domain.TranscriptionChanged{Active: false},
		domain.LocalMuteChanged{Muted: true},
		domain.LocalMuteChanged{Muted: true},
		domain.LocalMuteChanged{Muted: false},
		domain.RecordingChanged{Active: false},
	)

	assert.Equal(t, []action.Action{
		action.RecordingStateUpdated{Active: true},
		action.TranscriptionStateUpdated{Active: false},
		action.MicrophoneMuteStateUpdated{Muted: true},
		action.MicrophoneMuteStateUpdated{Muted: false},
		action.RecordingStateUpdated{Active: false},
	}, got)
}

func TestAdapterCallInfo(t *testing.T) {
	t.Parallel()

	got := run(t,
		domain.CallInfoUpdated{Status: domain.CallingStatusConnecting},
		domain.CallInfoUpdated{Status: domain.CallingStatusConnected},
		domain.CallInfoUpdated{Status: domain.CallingStatusLocalHold},
		domain.CallInfoUpdated{Status: domain.CallingStatusConnected},
		domain.CallInfoUpdated{Status: domain.CallingStatusDisconnected},
		domain.CallInfoUpdated{Status: domain.CallingStatusDisconnected},
	)

	assert.Equal(t, []action.Action{
		action.StateUpdated{Status: domain.CallingStatusConnecting},
		action.StateUpdated{Status: domain.CallingStatusConnected},
		action.CallStartTimeUpdated{At: at},
		action.StateUpdated{Status: domain.CallingStatusLocalHold},
		action.StateUpdated{Status: domain.CallingStatusConnected},
		action.StateUpdated{Status: domain.CallingStatusDisconnected},
		action.CompositeExit{},
		action.StateUpdated{Status: domain.CallingStatusDisconnected},
	}, got)
}

func TestAdapterCallInfoErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  domain.InternalError
		want action.Action
	}{
		{"call state", domain.InternalErrorCallEvicted, action.StatusErrorAndCallReset{
			Tag: domain.InternalErrorCallEvicted, Err: domain.InternalErrorCallEvicted,
		}},
		{"fatal", domain.InternalErrorCallTokenFailed, action.FatalErrorUpdated{
			Tag: domain.InternalErrorCallTokenFailed, Err: domain.InternalErrorCallTokenFailed,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := run(t, domain.CallInfoUpdated{Status: domain.CallingStatusDisconnected, InternalError: tt.tag})
			require.Len(t, got, 2)
			assert.Equal(t, tt.want, got[1])
		})
	}
}

func TestAdapterForgetsEndedCall(t *testing.T) {
	t.Parallel()

	got := run(t,
		domain.CallInfoUpdated{Status: domain.CallingStatusConnected},
		domain.RecordingChanged{Active: true},
		domain.CallInfoUpdated{Status: domain.CallingStatusDisconnected, InternalError: domain.InternalErrorCallEvicted},
		domain.CallInfoUpdated{Status: domain.CallingStatusConnecting},
		domain.CallInfoUpdated{Status: domain.CallingStatusConnected},
		domain.RecordingChanged{Active: true},
	)

	assert.Equal(t, []action.Action{
		action.StateUpdated{Status: domain.CallingStatusConnected},
		action.CallStartTimeUpdated{At: at},
		action.RecordingStateUpdated{Active: true},
		action.StateUpdated{Status: domain.CallingStatusDisconnected},
		action.StatusErrorAndCallReset{Tag: domain.InternalErrorCallEvicted, Err: domain.InternalErrorCallEvicted},
		action.StateUpdated{Status: domain.CallingStatusConnecting},
		action.StateUpdated{Status: domain.CallingStatusConnected},
		action.CallStartTimeUpdated{At: at},
		action.RecordingStateUpdated{Active: true},
	}, got)
}

func TestAdapterDiagnostics(t *testing.T) {
	t.Parallel()

	quality := domain.NetworkQualityDiagnosticModel{Diagnostic: domain.NetworkReceiveQuality, Value: domain.DiagnosticQualityBad}
	network := domain.NetworkDiagnosticModel{Diagnostic: domain.NetworkUnavailable, Value: true}
	media := domain.MediaDiagnosticModel{Diagnostic: domain.SpeakingWhileMicrophoneIsMuted, Value: true}

	got := run(t,
		domain.NetworkQualityDiagnosticChanged{Model: quality},
		domain.NetworkDiagnosticChanged{Model: network},
		domain.MediaDiagnosticChanged{Model: media},
	)

	assert.Equal(t, []action.Action{
		action.NetworkQualityDiagnosticUpdated{Model: quality},
		action.ShowToast{Toast: domain.ToastNetworkReceiveQualityBad, At: at},
		action.NetworkDiagnosticUpdated{Model: network},
		action.ShowToast{Toast: domain.ToastNetworkUnavailable, At: at},
		action.MediaDiagnosticUpdated{Model: media},
		action.ShowToast{Toast: domain.ToastSpeakingWhileMuted, At: at},
	}, got)
}

func TestAdapterRecoveredDiagnosticsRaiseNoToast(t *testing.T) {
	t.Parallel()

	quality := domain.NetworkQualityDiagnosticModel{Diagnostic: domain.NetworkSendQuality, Value: domain.DiagnosticQualityGood}
	network := domain.NetworkDiagnosticModel{Diagnostic: domain.NetworkUnavailable, Value: false}
	media := domain.MediaDiagnosticModel{Diagnostic: domain.CameraFrozen, Value: false}

	got := run(t,
		domain.NetworkQualityDiagnosticChanged{Model: quality},
		domain.NetworkDiagnosticChanged{Model: network},
		domain.MediaDiagnosticChanged{Model: media},
	)

	assert.Len(t, got, 3)
	for _, a := range got {
		assert.NotEqual(t, action.DomainToastNotification, a.Kind().Domain())
	}
}

func TestAdapterCoalescesParticipantLists(t *testing.T) {
	t.Parallel()
	a, ch, rec := newAdapter(200 * time.Millisecond)
	go a.Run()
	defer a.Stop()

	list := func(ids ...domain.ParticipantID) []domain.ParticipantInfo {
		var out []domain.ParticipantInfo
		for _, id := range ids {
			out = append(out, domain.ParticipantInfo{ID: id})
		}
		return out
	}

	ch <- domain.ParticipantsUpdated{Participants: list("p1")}
	ch <- domain.ParticipantsUpdated{Participants: list("p1", "p2")}
	ch <- domain.ParticipantsUpdated{Participants: list("p1", "p2", "p3")}

	require.Eventually(t, func() bool { return rec.len() == 2 }, time.Second, 10*time.Millisecond)
	got := rec.all()
	assert.Equal(t, action.ParticipantListUpdated{Participants: list("p1"), At: at}, got[0])
	assert.Equal(t, action.ParticipantListUpdated{Participants: list("p1", "p2", "p3"), At: at}, got[1])

	assert.Never(t, func() bool { return rec.len() > 2 }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestAdapterFlushesPendingListOnClose(t *testing.T) {
	t.Parallel()
	a, ch, rec := newAdapter(time.Hour)
	go a.Run()

	ch <- domain.ParticipantsUpdated{Participants: []domain.ParticipantInfo{{ID: "p1"}}}
	ch <- domain.ParticipantsUpdated{Participants: []domain.ParticipantInfo{{ID: "p2"}}}
	close(ch)
	<-a.done

	got := rec.all()
	require.Len(t, got, 2)
	assert.Equal(t, domain.ParticipantID("p2"), got[1].(action.ParticipantListUpdated).Participants[0].ID)
}

func TestAdapterStop(t *testing.T) {
	t.Parallel()
	a, _, _ := newAdapter(0)
	go a.Run()

	a.Stop()
	a.Stop()
}
