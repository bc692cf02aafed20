package state

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

type LobbyError struct {
	Code domain.LobbyErrorCode `json:"code"`
	At   time.Time             `json:"at"`
}

type RemoteParticipantsState struct {
	Participants          []domain.ParticipantInfo `json:"participants"`
	DominantSpeakers      []domain.ParticipantID   `json:"dominant_speakers"`
	DominantSpeakersAt    time.Time                `json:"dominant_speakers_at"`
	LastUpdateTimeStamp   time.Time                `json:"last_update_time_stamp"`
	LobbyError            *LobbyError              `json:"lobby_error,omitempty"`
	TotalParticipantCount int                      `json:"total_participant_count"`
}

func NewRemoteParticipantsState() RemoteParticipantsState {
	return RemoteParticipantsState{}
}

// IDs returns participant ids in list order.
func (s RemoteParticipantsState) IDs() []domain.ParticipantID {
	ids := make([]domain.ParticipantID, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s RemoteParticipantsState) Find(id domain.ParticipantID) (domain.ParticipantInfo, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return domain.ParticipantInfo{}, false
}
