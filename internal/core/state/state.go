// Package state holds the immutable application state tree.
//
// Every slice is a value. Reducers return modified copies; a state that has been
// published to subscribers is never written again. Slices and maps inside a state are
// copied before modification.
package state

import "github.com/Wyydra/callstate/internal/core/domain"

// AppState aggregates every independently reducible slice.
type AppState struct {
	Calling            CallingState              `json:"calling"`
	LocalUser          LocalUserState            `json:"local_user"`
	Permission         PermissionState           `json:"permission"`
	Navigation         NavigationState           `json:"navigation"`
	RemoteParticipants RemoteParticipantsState   `json:"remote_participants"`
	Error              ErrorState                `json:"error"`
	LifeCycle          LifeCycleState            `json:"life_cycle"`
	AudioSession       AudioSessionState         `json:"audio_session"`
	Diagnostics        DiagnosticsState          `json:"diagnostics"`
	Captions           CaptionsState             `json:"captions"`
	Toast              ToastNotificationState    `json:"toast_notification"`
	Buttons            ButtonViewDataState       `json:"button_view_data"`
	Header             CallScreenInfoHeaderState `json:"call_screen_info_header"`
	Rtt                RttState                  `json:"rtt"`
	Visibility         VisibilityState           `json:"visibility"`
}

// Options seeds the initial tree from the host launch configuration.
type Options struct {
	DisplayName     string
	Title           string
	Subtitle        string
	HiddenButtons   []domain.ButtonID
	DisabledButtons []domain.ButtonID
}

// New builds the initial tree. Every slice starts from its default value.
func New(opts Options) AppState {
	buttons := NewButtonViewDataState()
	for _, id := range opts.HiddenButtons {
		buttons = buttons.WithVisible(id, false)
	}
	for _, id := range opts.DisabledButtons {
		buttons = buttons.WithEnabled(id, false)
	}

	localUser := NewLocalUserState()
	localUser.DisplayName = opts.DisplayName

	return AppState{
		Calling:            NewCallingState(),
		LocalUser:          localUser,
		Permission:         NewPermissionState(),
		Navigation:         NewNavigationState(),
		RemoteParticipants: NewRemoteParticipantsState(),
		Error:              NewErrorState(),
		LifeCycle:          NewLifeCycleState(),
		AudioSession:       NewAudioSessionState(),
		Diagnostics:        DiagnosticsState{},
		Captions:           NewCaptionsState(),
		Toast:              ToastNotificationState{},
		Buttons:            buttons,
		Header:             CallScreenInfoHeaderState{Title: opts.Title, Subtitle: opts.Subtitle},
		Rtt:                RttState{},
		Visibility:         NewVisibilityState(),
	}
}
