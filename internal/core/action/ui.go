package action

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

type ShowToast struct {
	Toast domain.ToastKind
	At    time.Time
}

type DismissToast struct{}

type ButtonEnabledUpdated struct {
	Button  domain.ButtonID
	Enabled bool
}

type ButtonVisibleUpdated struct {
	Button  domain.ButtonID
	Visible bool
}

// CustomButtonUpdated adds or replaces a host-defined button.
type CustomButtonUpdated struct {
	ID      string
	Title   string
	Enabled bool
	Visible bool
}

type HeaderTitleUpdated struct {
	Title string
}

type HeaderSubtitleUpdated struct {
	Subtitle string
}

type PipModeRequested struct{}
type PipModeEntered struct{}
type HideRequested struct{}
type ShowNormalEntered struct{}

func (ShowToast) Kind() Kind             { return "toastNotification.show" }
func (DismissToast) Kind() Kind          { return "toastNotification.dismiss" }
func (ButtonEnabledUpdated) Kind() Kind  { return "buttonViewData.enabledUpdated" }
func (ButtonVisibleUpdated) Kind() Kind  { return "buttonViewData.visibleUpdated" }
func (CustomButtonUpdated) Kind() Kind   { return "buttonViewData.customButtonUpdated" }
func (HeaderTitleUpdated) Kind() Kind    { return "callScreenInfoHeader.titleUpdated" }
func (HeaderSubtitleUpdated) Kind() Kind { return "callScreenInfoHeader.subtitleUpdated" }
func (PipModeRequested) Kind() Kind      { return "visibility.pipModeRequested" }
func (PipModeEntered) Kind() Kind        { return "visibility.pipModeEntered" }
func (HideRequested) Kind() Kind         { return "visibility.hideRequested" }
func (ShowNormalEntered) Kind() Kind     { return "visibility.showNormalEntered" }

func (ShowToast) isAction()             {}
func (DismissToast) isAction()          {}
func (ButtonEnabledUpdated) isAction()  {}
func (ButtonVisibleUpdated) isAction()  {}
func (CustomButtonUpdated) isAction()   {}
func (HeaderTitleUpdated) isAction()    {}
func (HeaderSubtitleUpdated) isAction() {}
func (PipModeRequested) isAction()      {}
func (PipModeEntered) isAction()        {}
func (HideRequested) isAction()         {}
func (ShowNormalEntered) isAction()     {}
