package domain

type ParticipantStatus string

const (
	ParticipantStatusIdle         ParticipantStatus = "idle"
	ParticipantStatusEarlyMedia   ParticipantStatus = "early_media"
	ParticipantStatusConnecting   ParticipantStatus = "connecting"
	ParticipantStatusConnected    ParticipantStatus = "connected"
	ParticipantStatusHold         ParticipantStatus = "hold"
	ParticipantStatusInLobby      ParticipantStatus = "in_lobby"
	ParticipantStatusDisconnected ParticipantStatus = "disconnected"
	ParticipantStatusRinging      ParticipantStatus = "ringing"
)

// ParticipantRole is the meeting role of the local participant.
type ParticipantRole string

const (
	ParticipantRoleUnknown   ParticipantRole = "unknown"
	ParticipantRoleAttendee  ParticipantRole = "attendee"
	ParticipantRolePresenter ParticipantRole = "presenter"
	ParticipantRoleOrganizer ParticipantRole = "organizer"
	ParticipantRoleConsumer  ParticipantRole = "consumer"
)

type VideoStreamType string

const (
	VideoStreamCamera      VideoStreamType = "camera"
	VideoStreamScreenShare VideoStreamType = "screen_share"
)

type VideoStreamInfo struct {
	ID   VideoStreamID   `json:"id"`
	Type VideoStreamType `json:"type"`
}

// ParticipantInfo describes one remote participant as last reported by the service.
type ParticipantInfo struct {
	ID          ParticipantID     `json:"id"`
	DisplayName string            `json:"display_name"`
	IsSpeaking  bool              `json:"is_speaking"`
	IsMuted     bool              `json:"is_muted"`
	IsRemote    bool              `json:"is_remote"`
	Status      ParticipantStatus `json:"status"`
	Camera      *VideoStreamInfo  `json:"camera,omitempty"`
	ScreenShare *VideoStreamInfo  `json:"screen_share,omitempty"`
}
