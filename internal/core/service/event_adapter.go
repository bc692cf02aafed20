package service

import (
	"fmt"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventAdapter turns calling service events into actions. Participant lists are
// coalesced: the first list in a window is dispatched at once, later ones only as the
// latest value when the window closes. Repeated flag values are dropped.
type EventAdapter struct {
	events   <-chan domain.CallEvent
	dispatch func(action.Action)
	window   time.Duration
	now      func() time.Time

	quit chan struct{}
	done chan struct{}
	log  zerolog.Logger

	recording     *bool
	transcription *bool
	muted         *bool
	started       bool
	exited        bool
}

func NewEventAdapter(events <-chan domain.CallEvent, dispatch func(action.Action), window time.Duration) *EventAdapter {
	return &EventAdapter{
		events:   events,
		dispatch: dispatch,
		window:   window,
		now:      time.Now,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		log:      log.With().Str("component", "event_adapter").Logger(),
	}
}

// Run forwards events until Stop is called or the event channel closes.
func (a *EventAdapter) Run() {
	defer close(a.done)

	var (
		pending *domain.ParticipantsUpdated
		timer   *time.Timer
		tick    <-chan time.Time
	)
	flush := func() {
		if pending != nil {
			a.dispatchParticipants(*pending)
			pending = nil
		}
	}

	for {
		select {
		case <-a.quit:
			if timer != nil {
				timer.Stop()
			}
			return

		case <-tick:
			tick = nil
			flush()

		case ev, ok := <-a.events:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				flush()
				a.log.Info().Msg("Event stream closed")
				return
			}

			if p, isList := ev.(domain.ParticipantsUpdated); isList {
				if tick != nil {
					pending = &p
					continue
				}
				a.dispatchParticipants(p)
				if a.window > 0 {
					timer = time.NewTimer(a.window)
					tick = timer.C
				}
				continue
			}
			a.handle(ev)
		}
	}
}

// Stop ends Run and waits for it.
func (a *EventAdapter) Stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
	<-a.done
}

func (a *EventAdapter) dispatchParticipants(p domain.ParticipantsUpdated) {
	a.dispatch(action.ParticipantListUpdated{Participants: p.Participants, At: a.now()})
}

func (a *EventAdapter) handle(ev domain.CallEvent) {
	switch ev := ev.(type) {
	case domain.CallInfoUpdated:
		a.handleCallInfo(ev)
	case domain.CallIDUpdated:
		a.dispatch(action.CallIDUpdated{CallID: ev.CallID})
	case domain.RecordingChanged:
		if changed(&a.recording, ev.Active) {
			a.dispatch(action.RecordingStateUpdated{Active: ev.Active})
		}
	case domain.TranscriptionChanged:
		if changed(&a.transcription, ev.Active) {
			a.dispatch(action.TranscriptionStateUpdated{Active: ev.Active})
		}
	case domain.LocalMuteChanged:
		if changed(&a.muted, ev.Muted) {
			a.dispatch(action.MicrophoneMuteStateUpdated{Muted: ev.Muted})
		}
	case domain.DominantSpeakersChanged:
		a.dispatch(action.DominantSpeakersUpdated{Speakers: ev.Speakers, At: a.now()})
	case domain.TotalParticipantCountChanged:
		a.dispatch(action.SetTotalParticipantCount{Count: ev.Count})
	case domain.LocalRoleChanged:
		a.dispatch(action.ParticipantRoleChanged{Role: ev.Role})
	case domain.NetworkQualityDiagnosticChanged:
		a.dispatch(action.NetworkQualityDiagnosticUpdated{Model: ev.Model})
		a.toast(qualityToast(ev.Model))
	case domain.NetworkDiagnosticChanged:
		a.dispatch(action.NetworkDiagnosticUpdated{Model: ev.Model})
		if ev.Model.Value && ev.Model.Diagnostic == domain.NetworkUnavailable {
			a.toast(domain.ToastNetworkUnavailable)
		}
	case domain.MediaDiagnosticChanged:
		a.dispatch(action.MediaDiagnosticUpdated{Model: ev.Model})
		if ev.Model.Value {
			a.toast(mediaToast(ev.Model.Diagnostic))
		}
	case domain.CaptionsActiveChanged:
		if ev.Active {
			a.dispatch(action.CaptionsStarted{})
		} else {
			a.dispatch(action.CaptionsStopped{})
		}
	default:
		a.log.Warn().Str("event", typeName(ev)).Msg("Unhandled calling event")
	}
}

func (a *EventAdapter) handleCallInfo(ev domain.CallInfoUpdated) {
	a.dispatch(action.StateUpdated{Status: ev.Status, EndReason: ev.EndReason})
	a.log.Debug().Str("status", string(ev.Status)).Msg("Call state updated")

	switch ev.Status {
	case domain.CallingStatusConnecting:
		a.exited = false
	case domain.CallingStatusConnected:
		if !a.started {
			a.started = true
			a.dispatch(action.CallStartTimeUpdated{At: a.now()})
		}
	case domain.CallingStatusNone, domain.CallingStatusDisconnected:
		a.resetCall()
	}

	if ev.InternalError != domain.InternalErrorNone {
		a.resetCall()
		a.log.Warn().Str("error_tag", string(ev.InternalError)).Msg("Call ended with error")
		a.dispatch(action.FromError(ev.InternalError, ev.InternalError))
		return
	}
	if ev.Status == domain.CallingStatusDisconnected && !a.exited {
		a.exited = true
		a.dispatch(action.CompositeExit{})
	}
}

// resetCall forgets what was reported for the call that just ended, so the next call
// starts from a clean slate.
func (a *EventAdapter) resetCall() {
	a.recording = nil
	a.transcription = nil
	a.muted = nil
	a.started = false
}

func (a *EventAdapter) toast(kind domain.ToastKind) {
	if kind != domain.ToastNone {
		a.dispatch(action.ShowToast{Toast: kind, At: a.now()})
	}
}

func qualityToast(m domain.NetworkQualityDiagnosticModel) domain.ToastKind {
	if m.Value != domain.DiagnosticQualityBad && m.Value != domain.DiagnosticQualityPoor {
		return domain.ToastNone
	}
	switch m.Diagnostic {
	case domain.NetworkReceiveQuality:
		return domain.ToastNetworkReceiveQualityBad
	case domain.NetworkSendQuality:
		return domain.ToastNetworkSendQualityBad
	case domain.NetworkReconnectionQuality:
		return domain.ToastNetworkReconnecting
	}
	return domain.ToastNone
}

func mediaToast(d domain.MediaDiagnostic) domain.ToastKind {
	switch d {
	case domain.SpeakingWhileMicrophoneIsMuted:
		return domain.ToastSpeakingWhileMuted
	case domain.CameraStartFailed, domain.CameraStartTimedOut:
		return domain.ToastCameraStartFailed
	case domain.CameraFrozen:
		return domain.ToastCameraFrozen
	case domain.MicrophoneMuteUnexpectedly:
		return domain.ToastSomeoneMutedYou
	}
	return domain.ToastNone
}

func changed(last **bool, v bool) bool {
	if *last != nil && **last == v {
		return false
	}
	*last = &v
	return true
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
