package ws

// Client is one connected host view.
type Client interface {
	ID() string
	Send(msg Envelope) error
	Close() error
}

// Envelope types sent to clients.
const (
	TypeState              = "state"
	TypeCallStateChanged   = "call_state_changed"
	TypeError              = "error"
	TypeExited             = "exited"
	TypeParticipantsJoined = "participants_joined"
)

// Envelope is the frame written to every client.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
