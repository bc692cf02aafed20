package action

import "github.com/Wyydra/callstate/internal/core/domain"

type TurnOnCaptionsRequested struct {
	Language string
}

type TurnOffCaptionsRequested struct{}

type CaptionsStarted struct{}

type CaptionsStopped struct{}

type SetSpokenLanguageRequested struct {
	Language string
}

type SetCaptionLanguageRequested struct {
	Language string
}

type SpokenLanguageChanged struct {
	Language string
}

type CaptionLanguageChanged struct {
	Language string
}

type TranslationSupportedChanged struct {
	Supported bool
}

type SupportedSpokenLanguagesChanged struct {
	Languages []string
}

type SupportedCaptionLanguagesChanged struct {
	Languages []string
}

type CaptionsErrorChanged struct {
	Code domain.CaptionsErrorCode
}

type CaptionsTypeChanged struct {
	Type domain.CaptionsType
}

func (TurnOnCaptionsRequested) Kind() Kind         { return "captions.turnOnRequested" }
func (TurnOffCaptionsRequested) Kind() Kind        { return "captions.turnOffRequested" }
func (CaptionsStarted) Kind() Kind                 { return "captions.started" }
func (CaptionsStopped) Kind() Kind                 { return "captions.stopped" }
func (SetSpokenLanguageRequested) Kind() Kind      { return "captions.setSpokenLanguageRequested" }
func (SetCaptionLanguageRequested) Kind() Kind     { return "captions.setCaptionLanguageRequested" }
func (SpokenLanguageChanged) Kind() Kind           { return "captions.spokenLanguageChanged" }
func (CaptionLanguageChanged) Kind() Kind          { return "captions.captionLanguageChanged" }
func (TranslationSupportedChanged) Kind() Kind     { return "captions.translationSupportedChanged" }
func (SupportedSpokenLanguagesChanged) Kind() Kind { return "captions.supportedSpokenLanguagesChanged" }
func (SupportedCaptionLanguagesChanged) Kind() Kind {
	return "captions.supportedCaptionLanguagesChanged"
}
func (CaptionsErrorChanged) Kind() Kind { return "captions.errorChanged" }
func (CaptionsTypeChanged) Kind() Kind  { return "captions.typeChanged" }

func (TurnOnCaptionsRequested) isAction()          {}
func (TurnOffCaptionsRequested) isAction()         {}
func (CaptionsStarted) isAction()                  {}
func (CaptionsStopped) isAction()                  {}
func (SetSpokenLanguageRequested) isAction()       {}
func (SetCaptionLanguageRequested) isAction()      {}
func (SpokenLanguageChanged) isAction()            {}
func (CaptionLanguageChanged) isAction()           {}
func (TranslationSupportedChanged) isAction()      {}
func (SupportedSpokenLanguagesChanged) isAction()  {}
func (SupportedCaptionLanguagesChanged) isAction() {}
func (CaptionsErrorChanged) isAction()             {}
func (CaptionsTypeChanged) isAction()              {}
