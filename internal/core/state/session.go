package state

import (
	"maps"
	"slices"
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

type AppStatus string

const (
	AppForeground AppStatus = "foreground"
	AppBackground AppStatus = "background"
)

type LifeCycleState struct {
	Current AppStatus `json:"current"`
}

func NewLifeCycleState() LifeCycleState {
	return LifeCycleState{Current: AppForeground}
}

type AudioSessionStatus string

const (
	AudioSessionActive      AudioSessionStatus = "active"
	AudioSessionInterrupted AudioSessionStatus = "interrupted"
)

type AudioSessionState struct {
	Status AudioSessionStatus `json:"status"`
}

func NewAudioSessionState() AudioSessionState {
	return AudioSessionState{Status: AudioSessionActive}
}

// DiagnosticsState keeps the latest reported diagnostic of each family.
type DiagnosticsState struct {
	NetworkQuality *domain.NetworkQualityDiagnosticModel `json:"network_quality,omitempty"`
	Network        *domain.NetworkDiagnosticModel        `json:"network,omitempty"`
	Media          *domain.MediaDiagnosticModel          `json:"media,omitempty"`
}

type CaptionsState struct {
	IsEnabled                 bool                     `json:"is_enabled"`
	IsStarted                 bool                     `json:"is_started"`
	ActiveSpokenLanguage      string                   `json:"active_spoken_language,omitempty"`
	ActiveCaptionLanguage     string                   `json:"active_caption_language,omitempty"`
	IsTranslationSupported    bool                     `json:"is_translation_supported"`
	SupportedSpokenLanguages  []string                 `json:"supported_spoken_languages"`
	SupportedCaptionLanguages []string                 `json:"supported_caption_languages"`
	ErrorCode                 domain.CaptionsErrorCode `json:"error_code,omitempty"`
	Type                      domain.CaptionsType      `json:"type"`
}

func NewCaptionsState() CaptionsState {
	return CaptionsState{Type: domain.CaptionsTypeNone}
}

type ToastNotificationState struct {
	Status  domain.ToastKind `json:"status,omitempty"`
	ShownAt time.Time        `json:"shown_at"`
}

type ButtonState struct {
	Enabled bool `json:"enabled"`
	Visible bool `json:"visible"`
}

type CustomButtonState struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
	Visible bool   `json:"visible"`
}

type ButtonViewDataState struct {
	Buttons map[domain.ButtonID]ButtonState `json:"buttons"`
	Custom  []CustomButtonState             `json:"custom"`
}

// NewButtonViewDataState shows and enables every built-in button.
func NewButtonViewDataState() ButtonViewDataState {
	buttons := make(map[domain.ButtonID]ButtonState, len(domain.ButtonIDs()))
	for _, id := range domain.ButtonIDs() {
		buttons[id] = ButtonState{Enabled: true, Visible: true}
	}
	return ButtonViewDataState{Buttons: buttons}
}

func (s ButtonViewDataState) Button(id domain.ButtonID) ButtonState {
	if b, ok := s.Buttons[id]; ok {
		return b
	}
	return ButtonState{Enabled: true, Visible: true}
}

func (s ButtonViewDataState) WithEnabled(id domain.ButtonID, enabled bool) ButtonViewDataState {
	b := s.Button(id)
	b.Enabled = enabled
	return s.with(id, b)
}

func (s ButtonViewDataState) WithVisible(id domain.ButtonID, visible bool) ButtonViewDataState {
	b := s.Button(id)
	b.Visible = visible
	return s.with(id, b)
}

// WithCustom replaces the custom button with the same id, or appends it.
func (s ButtonViewDataState) WithCustom(button CustomButtonState) ButtonViewDataState {
	custom := slices.Clone(s.Custom)
	i := slices.IndexFunc(custom, func(c CustomButtonState) bool { return c.ID == button.ID })
	if i >= 0 {
		custom[i] = button
	} else {
		custom = append(custom, button)
	}
	s.Custom = custom
	return s
}

func (s ButtonViewDataState) with(id domain.ButtonID, b ButtonState) ButtonViewDataState {
	buttons := maps.Clone(s.Buttons)
	if buttons == nil {
		buttons = make(map[domain.ButtonID]ButtonState, 1)
	}
	buttons[id] = b
	s.Buttons = buttons
	return s
}

type CallScreenInfoHeaderState struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

type RttState struct {
	IsOn        bool   `json:"is_on"`
	IsMaximized bool   `json:"is_maximized"`
	Draft       string `json:"draft,omitempty"`
	SendErr     error  `json:"-"`
}

type VisibilityStatus string

const (
	VisibilityVisible          VisibilityStatus = "visible"
	VisibilityPipModeRequested VisibilityStatus = "pip_mode_requested"
	VisibilityPipModeEntered   VisibilityStatus = "pip_mode_entered"
	VisibilityHideRequested    VisibilityStatus = "hide_requested"
)

type VisibilityState struct {
	Status VisibilityStatus `json:"status"`
}

func NewVisibilityState() VisibilityState {
	return VisibilityState{Status: VisibilityVisible}
}
