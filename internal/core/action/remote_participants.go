package action

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

// ParticipantListUpdated replaces the remote participant list. At stamps the mutation.
type ParticipantListUpdated struct {
	Participants []domain.ParticipantInfo
	At           time.Time
}

type DominantSpeakersUpdated struct {
	Speakers []domain.ParticipantID
	At       time.Time
}

type AdmitAllRequested struct{}

type DeclineAllRequested struct{}

type AdmitRequested struct {
	Participant domain.ParticipantID
}

type DeclineRequested struct {
	Participant domain.ParticipantID
}

type RemoveRequested struct {
	Participant domain.ParticipantID
}

type LobbyErrorOccurred struct {
	Code domain.LobbyErrorCode
	At   time.Time
}

type ClearLobbyError struct{}

type SetTotalParticipantCount struct {
	Count int
}

func (ParticipantListUpdated) Kind() Kind   { return "remoteParticipants.participantListUpdated" }
func (DominantSpeakersUpdated) Kind() Kind  { return "remoteParticipants.dominantSpeakersUpdated" }
func (AdmitAllRequested) Kind() Kind        { return "remoteParticipants.admitAll" }
func (DeclineAllRequested) Kind() Kind      { return "remoteParticipants.declineAll" }
func (AdmitRequested) Kind() Kind           { return "remoteParticipants.admit" }
func (DeclineRequested) Kind() Kind         { return "remoteParticipants.decline" }
func (RemoveRequested) Kind() Kind          { return "remoteParticipants.remove" }
func (LobbyErrorOccurred) Kind() Kind       { return "remoteParticipants.lobbyError" }
func (ClearLobbyError) Kind() Kind          { return "remoteParticipants.clearLobbyError" }
func (SetTotalParticipantCount) Kind() Kind { return "remoteParticipants.setTotalParticipantCount" }

func (ParticipantListUpdated) isAction()   {}
func (DominantSpeakersUpdated) isAction()  {}
func (AdmitAllRequested) isAction()        {}
func (DeclineAllRequested) isAction()      {}
func (AdmitRequested) isAction()           {}
func (DeclineRequested) isAction()         {}
func (RemoveRequested) isAction()          {}
func (LobbyErrorOccurred) isAction()       {}
func (ClearLobbyError) isAction()          {}
func (SetTotalParticipantCount) isAction() {}
