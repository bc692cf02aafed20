package state

import "github.com/Wyydra/callstate/internal/core/domain"

type NavigationStatus string

const (
	NavigationSetup  NavigationStatus = "setup"
	NavigationInCall NavigationStatus = "in_call"
	NavigationExit   NavigationStatus = "exit"
)

// Overlay is a drawer or sheet shown over the current screen. At most one is visible.
type Overlay string

const (
	OverlayNone                Overlay = ""
	OverlaySupportForm         Overlay = "support_form"
	OverlayEndCallConfirmation Overlay = "end_call_confirmation"
	OverlayAudioSelection      Overlay = "audio_selection"
	OverlayMoreOptions         Overlay = "more_options"
	OverlaySupportShare        Overlay = "support_share"
	OverlayParticipants        Overlay = "participants"
	OverlayParticipantActions  Overlay = "participant_actions"
	OverlayCaptionsList        Overlay = "captions_list"
	OverlaySpokenLanguage      Overlay = "spoken_language"
	OverlayCaptionsLanguage    Overlay = "captions_language"
)

type NavigationState struct {
	Status NavigationStatus `json:"status"`

	SupportFormVisible         bool `json:"support_form_visible"`
	EndCallConfirmationVisible bool `json:"end_call_confirmation_visible"`
	AudioSelectionVisible      bool `json:"audio_selection_visible"`
	MoreOptionsVisible         bool `json:"more_options_visible"`
	SupportShareSheetVisible   bool `json:"support_share_sheet_visible"`
	ParticipantsVisible        bool `json:"participants_visible"`
	ParticipantActionsVisible  bool `json:"participant_actions_visible"`
	CaptionsListVisible        bool `json:"captions_list_visible"`
	SpokenLanguageVisible      bool `json:"spoken_language_visible"`
	CaptionsLanguageVisible    bool `json:"captions_language_visible"`

	SelectedParticipant domain.ParticipantID `json:"selected_participant,omitempty"`
}

func NewNavigationState() NavigationState {
	return NavigationState{Status: NavigationSetup}
}

// WithOverlay returns a copy where only overlay is visible. OverlayNone hides all.
func (s NavigationState) WithOverlay(overlay Overlay) NavigationState {
	s.SupportFormVisible = overlay == OverlaySupportForm
	s.EndCallConfirmationVisible = overlay == OverlayEndCallConfirmation
	s.AudioSelectionVisible = overlay == OverlayAudioSelection
	s.MoreOptionsVisible = overlay == OverlayMoreOptions
	s.SupportShareSheetVisible = overlay == OverlaySupportShare
	s.ParticipantsVisible = overlay == OverlayParticipants
	s.ParticipantActionsVisible = overlay == OverlayParticipantActions
	s.CaptionsListVisible = overlay == OverlayCaptionsList
	s.SpokenLanguageVisible = overlay == OverlaySpokenLanguage
	s.CaptionsLanguageVisible = overlay == OverlayCaptionsLanguage
	if overlay != OverlayParticipantActions {
		s.SelectedParticipant = ""
	}
	return s
}

// VisibleOverlays lists the overlays currently shown.
func (s NavigationState) VisibleOverlays() []Overlay {
	flags := []struct {
		overlay Overlay
		visible bool
	}{
		{OverlaySupportForm, s.SupportFormVisible},
		{OverlayEndCallConfirmation, s.EndCallConfirmationVisible},
		{OverlayAudioSelection, s.AudioSelectionVisible},
		{OverlayMoreOptions, s.MoreOptionsVisible},
		{OverlaySupportShare, s.SupportShareSheetVisible},
		{OverlayParticipants, s.ParticipantsVisible},
		{OverlayParticipantActions, s.ParticipantActionsVisible},
		{OverlayCaptionsList, s.CaptionsListVisible},
		{OverlaySpokenLanguage, s.SpokenLanguageVisible},
		{OverlayCaptionsLanguage, s.CaptionsLanguageVisible},
	}

	var visible []Overlay
	for _, f := range flags {
		if f.visible {
			visible = append(visible, f.overlay)
		}
	}
	return visible
}
