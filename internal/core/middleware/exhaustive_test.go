package middleware

import (
	"testing"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/reducer"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/stretchr/testify/assert"
)

// busy is the opposite of a fresh state wherever a slice has something to clear.
func busy() state.AppState {
	s := state.New(state.Options{})
	s.Calling.Status = domain.CallingStatusConnected
	s.Calling.OperationStatus = state.OperationStatusCallEndRequested
	s.LocalUser.Camera.Operation = state.CameraOn
	s.LocalUser.LocalVideoStreamID = "vid-0"
	s.LocalUser.Audio.Operation = state.AudioOn
	s.Permission.Audio = state.PermissionGranted
	s.Permission.Camera = state.PermissionGranted
	s.LifeCycle.Current = state.AppBackground
	s.AudioSession.Status = state.AudioSessionInterrupted
	s.Navigation.Status = state.NavigationInCall
	s.Navigation = s.Navigation.WithOverlay(state.OverlayMoreOptions)
	s.RemoteParticipants.LobbyError = &state.LobbyError{Code: domain.LobbyErrorUnknown}
	s.Diagnostics.NetworkQuality = &domain.NetworkQualityDiagnosticModel{
		Diagnostic: domain.NetworkReceiveQuality, Value: domain.DiagnosticQualityBad,
	}
	s.Diagnostics.Network = &domain.NetworkDiagnosticModel{Diagnostic: domain.NetworkUnavailable, Value: true}
	s.Diagnostics.Media = &domain.MediaDiagnosticModel{Diagnostic: domain.CameraFrozen, Value: true}
	s.Captions.IsEnabled = true
	s.Captions.IsStarted = true
	s.Toast = state.ToastNotificationState{Status: domain.ToastSomeoneMutedYou}
	s.Visibility.Status = state.VisibilityPipModeEntered
	return s
}

// Every variant must either move some slice or start a side effect from one of the
// fixtures; a variant that does neither is a case missing from a reducer or Route.
func TestEveryActionHasAnEffect(t *testing.T) {
	t.Parallel()

	held := busy()
	held.Calling.Status = domain.CallingStatusLocalHold
	fixtures := []state.AppState{state.New(state.Options{}), busy(), held}

	r := reducer.Default()
	h := NewCallingHandler(newFakeCalling(), &fakeAudio{})
	for _, a := range action.Catalog() {
		effective := false
		for _, s := range fixtures {
			if h.Route(a, s) != nil || !assert.ObjectsAreEqual(s, r.Reduce(s, a)) {
				effective = true
				break
			}
		}
		assert.True(t, effective, "%s changes no state and starts no side effect", a.Kind())
	}
}
