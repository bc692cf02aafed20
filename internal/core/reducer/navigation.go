package reducer

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/state"
)

// Navigation reduces the screen status and overlay flags. Showing an overlay hides
// every other one. A call-state error returns to setup; a fatal error or an exit
// request leaves the composite. Exit is terminal.
func Navigation(s state.NavigationState, a action.Action) state.NavigationState {
	if s.Status == state.NavigationExit {
		return s
	}
	switch a := a.(type) {
	case action.ShowSupportForm:
		return s.WithOverlay(state.OverlaySupportForm)
	case action.ShowEndCallConfirmation:
		return s.WithOverlay(state.OverlayEndCallConfirmation)
	case action.ShowAudioSelection:
		return s.WithOverlay(state.OverlayAudioSelection)
	case action.ShowMoreOptions:
		return s.WithOverlay(state.OverlayMoreOptions)
	case action.ShowSupportShare:
		return s.WithOverlay(state.OverlaySupportShare)
	case action.ShowParticipants:
		return s.WithOverlay(state.OverlayParticipants)
	case action.ShowCaptionsList:
		return s.WithOverlay(state.OverlayCaptionsList)
	case action.ShowSpokenLanguageSelection:
		return s.WithOverlay(state.OverlaySpokenLanguage)
	case action.ShowCaptionsLanguageSelection:
		return s.WithOverlay(state.OverlayCaptionsLanguage)
	case action.ShowParticipantActions:
		s = s.WithOverlay(state.OverlayParticipantActions)
		s.SelectedParticipant = a.Participant
		return s
	case action.HideDrawer:
		return s.WithOverlay(state.OverlayNone)
	case action.CallingViewLaunched:
		s.Status = state.NavigationInCall
	case action.DismissSetup, action.CompositeExit, action.FatalErrorUpdated:
		s.Status = state.NavigationExit
	case action.StatusErrorAndCallReset:
		s = s.WithOverlay(state.OverlayNone)
		s.Status = state.NavigationSetup
	}
	return s
}
