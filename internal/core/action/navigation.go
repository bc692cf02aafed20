package action

import "github.com/Wyydra/callstate/internal/core/domain"

type ShowSupportForm struct{}
type ShowEndCallConfirmation struct{}
type ShowAudioSelection struct{}
type ShowMoreOptions struct{}
type ShowSupportShare struct{}
type ShowParticipants struct{}
type ShowCaptionsList struct{}
type ShowSpokenLanguageSelection struct{}
type ShowCaptionsLanguageSelection struct{}

// ShowParticipantActions opens the action sheet for one participant.
type ShowParticipantActions struct {
	Participant domain.ParticipantID
}

// HideDrawer hides every overlay.
type HideDrawer struct{}

// DismissSetup leaves the setup screen without joining.
type DismissSetup struct{}

func (ShowSupportForm) Kind() Kind               { return "navigation.showSupportForm" }
func (ShowEndCallConfirmation) Kind() Kind       { return "navigation.showEndCallConfirmation" }
func (ShowAudioSelection) Kind() Kind            { return "navigation.showAudioSelection" }
func (ShowMoreOptions) Kind() Kind               { return "navigation.showMoreOptions" }
func (ShowSupportShare) Kind() Kind              { return "navigation.showSupportShare" }
func (ShowParticipants) Kind() Kind              { return "navigation.showParticipants" }
func (ShowCaptionsList) Kind() Kind              { return "navigation.showCaptionsList" }
func (ShowSpokenLanguageSelection) Kind() Kind   { return "navigation.showSpokenLanguageSelection" }
func (ShowCaptionsLanguageSelection) Kind() Kind { return "navigation.showCaptionsLanguageSelection" }
func (ShowParticipantActions) Kind() Kind        { return "navigation.showParticipantActions" }
func (HideDrawer) Kind() Kind                    { return "navigation.hideDrawer" }
func (DismissSetup) Kind() Kind                  { return "navigation.dismissSetup" }

func (ShowSupportForm) isAction()               {}
func (ShowEndCallConfirmation) isAction()       {}
func (ShowAudioSelection) isAction()            {}
func (ShowMoreOptions) isAction()               {}
func (ShowSupportShare) isAction()              {}
func (ShowParticipants) isAction()              {}
func (ShowCaptionsList) isAction()              {}
func (ShowSpokenLanguageSelection) isAction()   {}
func (ShowCaptionsLanguageSelection) isAction() {}
func (ShowParticipantActions) isAction()        {}
func (HideDrawer) isAction()                    {}
func (DismissSetup) isAction()                  {}
