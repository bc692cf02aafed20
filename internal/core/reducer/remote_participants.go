package reducer

import (
	"slices"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/state"
)

// RemoteParticipants reduces the participant list. Lobby intents (admit, decline,
// remove) are side effects only and leave the slice untouched.
func RemoteParticipants(s state.RemoteParticipantsState, a action.Action) state.RemoteParticipantsState {
	switch a := a.(type) {
	case action.ParticipantListUpdated:
		s.Participants = dedupe(a.Participants)
		s.LastUpdateTimeStamp = a.At
	case action.DominantSpeakersUpdated:
		s.DominantSpeakers = slices.Clone(a.Speakers)
		s.DominantSpeakersAt = a.At
	case action.LobbyErrorOccurred:
		s.LobbyError = &state.LobbyError{Code: a.Code, At: a.At}
	case action.ClearLobbyError:
		s.LobbyError = nil
	case action.SetTotalParticipantCount:
		s.TotalParticipantCount = a.Count
	case action.StatusErrorAndCallReset:
		return state.NewRemoteParticipantsState()
	}
	return s
}

// dedupe copies list keeping the first entry of each participant id.
func dedupe(list []domain.ParticipantInfo) []domain.ParticipantInfo {
	seen := make(map[domain.ParticipantID]struct{}, len(list))
	out := make([]domain.ParticipantInfo, 0, len(list))
	for _, p := range list {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
