package reducer

import (
	"slices"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/state"
)

// Diagnostics keeps the latest diagnostic of each family. Dismissing clears it only
// if it is still the one shown.
func Diagnostics(s state.DiagnosticsState, a action.Action) state.DiagnosticsState {
	switch a := a.(type) {
	case action.NetworkQualityDiagnosticUpdated:
		m := a.Model
		s.NetworkQuality = &m
	case action.NetworkDiagnosticUpdated:
		m := a.Model
		s.Network = &m
	case action.MediaDiagnosticUpdated:
		m := a.Model
		s.Media = &m
	case action.DismissNetworkQualityDiagnostic:
		if s.NetworkQuality != nil && s.NetworkQuality.Diagnostic == a.Diagnostic {
			s.NetworkQuality = nil
		}
	case action.DismissNetworkDiagnostic:
		if s.Network != nil && s.Network.Diagnostic == a.Diagnostic {
			s.Network = nil
		}
	case action.DismissMediaDiagnostic:
		if s.Media != nil && s.Media.Diagnostic == a.Diagnostic {
			s.Media = nil
		}
	}
	return s
}

func Captions(s state.CaptionsState, a action.Action) state.CaptionsState {
	switch a := a.(type) {
	case action.TurnOnCaptionsRequested:
		s.IsEnabled = true
		s.ErrorCode = domain.CaptionsErrorNone
		if a.Language != "" {
			s.ActiveSpokenLanguage = a.Language
		}
	case action.TurnOffCaptionsRequested:
		s.IsEnabled = false
	case action.CaptionsStarted:
		s.IsEnabled = true
		s.IsStarted = true
	case action.CaptionsStopped:
		s.IsEnabled = false
		s.IsStarted = false
	case action.SpokenLanguageChanged:
		s.ActiveSpokenLanguage = a.Language
	case action.CaptionLanguageChanged:
		s.ActiveCaptionLanguage = a.Language
	case action.TranslationSupportedChanged:
		s.IsTranslationSupported = a.Supported
	case action.SupportedSpokenLanguagesChanged:
		s.SupportedSpokenLanguages = slices.Clone(a.Languages)
	case action.SupportedCaptionLanguagesChanged:
		s.SupportedCaptionLanguages = slices.Clone(a.Languages)
	case action.CaptionsErrorChanged:
		s.ErrorCode = a.Code
	case action.CaptionsTypeChanged:
		s.Type = a.Type
	}
	return s
}

func Toast(s state.ToastNotificationState, a action.Action) state.ToastNotificationState {
	switch a := a.(type) {
	case action.ShowToast:
		return state.ToastNotificationState{Status: a.Toast, ShownAt: a.At}
	case action.DismissToast:
		return state.ToastNotificationState{}
	}
	return s
}

func Buttons(s state.ButtonViewDataState, a action.Action) state.ButtonViewDataState {
	switch a := a.(type) {
	case action.ButtonEnabledUpdated:
		return s.WithEnabled(a.Button, a.Enabled)
	case action.ButtonVisibleUpdated:
		return s.WithVisible(a.Button, a.Visible)
	case action.CustomButtonUpdated:
		return s.WithCustom(state.CustomButtonState{
			ID:      a.ID,
			Title:   a.Title,
			Enabled: a.Enabled,
			Visible: a.Visible,
		})
	}
	return s
}

func Header(s state.CallScreenInfoHeaderState, a action.Action) state.CallScreenInfoHeaderState {
	switch a := a.(type) {
	case action.HeaderTitleUpdated:
		s.Title = a.Title
	case action.HeaderSubtitleUpdated:
		s.Subtitle = a.Subtitle
	}
	return s
}

// Rtt tracks real-time text. Sending a message turns it on; a final message clears
// the draft.
func Rtt(s state.RttState, a action.Action) state.RttState {
	switch a := a.(type) {
	case action.TurnOnRtt:
		s.IsOn = true
	case action.UpdateRttMaximized:
		s.IsMaximized = a.Maximized
	case action.SendRttMessage:
		s.IsOn = true
		s.SendErr = nil
		if a.IsFinal {
			s.Draft = ""
		} else {
			s.Draft = a.Message
		}
	case action.RttSendFailed:
		s.SendErr = a.Err
	}
	return s
}

func Visibility(s state.VisibilityState, a action.Action) state.VisibilityState {
	switch a.(type) {
	case action.PipModeRequested:
		s.Status = state.VisibilityPipModeRequested
	case action.PipModeEntered:
		s.Status = state.VisibilityPipModeEntered
	case action.HideRequested:
		s.Status = state.VisibilityHideRequested
	case action.ShowNormalEntered:
		s.Status = state.VisibilityVisible
	}
	return s
}
