// Package reducer computes the next application state from the current one and an
// action. Every function in this package is pure: no I/O, no clock, no mutation of
// the input.
package reducer

import (
	"slices"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/state"
)

// Reducer returns the next value of one state slice.
type Reducer[S any] func(S, action.Action) S

// Slice binds one slice reducer to the application state and to the action domains
// it listens to.
type Slice struct {
	Name    string
	Domains []action.Domain
	apply   func(prev state.AppState, next *state.AppState, a action.Action)
}

// Bind builds a Slice. The reducer only ever sees the part of the state get returns.
func Bind[S any](name string, r Reducer[S], get func(state.AppState) S, set func(*state.AppState, S), domains ...action.Domain) Slice {
	return Slice{
		Name:    name,
		Domains: domains,
		apply: func(prev state.AppState, next *state.AppState, a action.Action) {
			set(next, r(get(prev), a))
		},
	}
}

// ListensTo reports whether the slice receives actions of domain d.
func (s Slice) ListensTo(d action.Domain) bool {
	return slices.Contains(s.Domains, d)
}

// AppStateReducer fans an action out to every slice listening to its domain. Each slice
// reads the state as it was before the action, so slice order never changes the result.
type AppStateReducer struct {
	slices []Slice
}

func NewAppStateReducer(slices ...Slice) *AppStateReducer {
	return &AppStateReducer{slices: slices}
}

// Default wires every slice reducer. The calling, navigation, error and remote
// participants slices also listen to foreign domains so terminal errors cascade.
func Default() *AppStateReducer {
	return NewAppStateReducer(
		Bind("calling", Calling,
			func(s state.AppState) state.CallingState { return s.Calling },
			func(s *state.AppState, v state.CallingState) { s.Calling = v },
			action.DomainCalling, action.DomainError),
		Bind("localUser", LocalUser,
			func(s state.AppState) state.LocalUserState { return s.LocalUser },
			func(s *state.AppState, v state.LocalUserState) { s.LocalUser = v },
			action.DomainLocalUser),
		Bind("permission", Permission,
			func(s state.AppState) state.PermissionState { return s.Permission },
			func(s *state.AppState, v state.PermissionState) { s.Permission = v },
			action.DomainPermission),
		Bind("lifecycle", LifeCycle,
			func(s state.AppState) state.LifeCycleState { return s.LifeCycle },
			func(s *state.AppState, v state.LifeCycleState) { s.LifeCycle = v },
			action.DomainLifecycle),
		Bind("audioSession", AudioSession,
			func(s state.AppState) state.AudioSessionState { return s.AudioSession },
			func(s *state.AppState, v state.AudioSessionState) { s.AudioSession = v },
			action.DomainAudioSession),
		Bind("navigation", Navigation,
			func(s state.AppState) state.NavigationState { return s.Navigation },
			func(s *state.AppState, v state.NavigationState) { s.Navigation = v },
			action.DomainNavigation, action.DomainError, action.DomainComposite),
		Bind("error", Error,
			func(s state.AppState) state.ErrorState { return s.Error },
			func(s *state.AppState, v state.ErrorState) { s.Error = v },
			action.DomainError, action.DomainCalling, action.DomainLocalUser),
		Bind("remoteParticipants", RemoteParticipants,
			func(s state.AppState) state.RemoteParticipantsState { return s.RemoteParticipants },
			func(s *state.AppState, v state.RemoteParticipantsState) { s.RemoteParticipants = v },
			action.DomainRemoteParticipants, action.DomainError),
		Bind("diagnostics", Diagnostics,
			func(s state.AppState) state.DiagnosticsState { return s.Diagnostics },
			func(s *state.AppState, v state.DiagnosticsState) { s.Diagnostics = v },
			action.DomainDiagnostics),
		Bind("captions", Captions,
			func(s state.AppState) state.CaptionsState { return s.Captions },
			func(s *state.AppState, v state.CaptionsState) { s.Captions = v },
			action.DomainCaptions),
		Bind("toastNotification", Toast,
			func(s state.AppState) state.ToastNotificationState { return s.Toast },
			func(s *state.AppState, v state.ToastNotificationState) { s.Toast = v },
			action.DomainToastNotification),
		Bind("buttonViewData", Buttons,
			func(s state.AppState) state.ButtonViewDataState { return s.Buttons },
			func(s *state.AppState, v state.ButtonViewDataState) { s.Buttons = v },
			action.DomainButtonViewData),
		Bind("callScreenInfoHeader", Header,
			func(s state.AppState) state.CallScreenInfoHeaderState { return s.Header },
			func(s *state.AppState, v state.CallScreenInfoHeaderState) { s.Header = v },
			action.DomainHeader),
		Bind("rtt", Rtt,
			func(s state.AppState) state.RttState { return s.Rtt },
			func(s *state.AppState, v state.RttState) { s.Rtt = v },
			action.DomainRtt),
		Bind("visibility", Visibility,
			func(s state.AppState) state.VisibilityState { return s.Visibility },
			func(s *state.AppState, v state.VisibilityState) { s.Visibility = v },
			action.DomainVisibility),
	)
}

// Reduce runs one full reducer pass.
func (r *AppStateReducer) Reduce(s state.AppState, a action.Action) state.AppState {
	d := a.Kind().Domain()
	next := s
	for _, slice := range r.slices {
		if slice.ListensTo(d) {
			slice.apply(s, &next, a)
		}
	}
	return next
}

// Listeners returns the names of the slices receiving actions of domain d, in order.
func (r *AppStateReducer) Listeners(d action.Domain) []string {
	var names []string
	for _, slice := range r.slices {
		if slice.ListensTo(d) {
			names = append(names, slice.Name)
		}
	}
	return names
}
