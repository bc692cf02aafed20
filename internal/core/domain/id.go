package domain

import (
	"github.com/google/uuid"
)

// ParticipantID is the raw identifier the calling service assigns to a participant.
type ParticipantID string

type CallID string

type VideoStreamID string

func NewParticipantID() ParticipantID {
	return ParticipantID(uuid.New().String())
}

func NewCallID() CallID {
	return CallID(uuid.New().String())
}

func NewVideoStreamID() VideoStreamID {
	return VideoStreamID(uuid.New().String())
}

func (id ParticipantID) String() string {
	return string(id)
}

func (id CallID) String() string {
	return string(id)
}

func (id VideoStreamID) String() string {
	return string(id)
}
