package manager

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
)

// RemoteParticipantsManager reports participants that joined since the last list
// update it saw.
type RemoteParticipantsManager struct {
	handler port.EventHandler
	stamp   time.Time
	known   map[domain.ParticipantID]struct{}
}

func NewRemoteParticipantsManager(h port.EventHandler) *RemoteParticipantsManager {
	return &RemoteParticipantsManager{
		handler: h,
		known:   make(map[domain.ParticipantID]struct{}),
	}
}

func (m *RemoteParticipantsManager) Observe(s state.AppState) {
	rp := s.RemoteParticipants
	if rp.LastUpdateTimeStamp.Equal(m.stamp) {
		return
	}
	m.stamp = rp.LastUpdateTimeStamp

	current := make(map[domain.ParticipantID]struct{}, len(rp.Participants))
	var joined []domain.ParticipantID
	for _, p := range rp.Participants {
		current[p.ID] = struct{}{}
		if _, ok := m.known[p.ID]; !ok {
			joined = append(joined, p.ID)
		}
	}
	m.known = current

	if len(joined) > 0 {
		m.handler.OnRemoteParticipantJoined(joined)
	}
}
