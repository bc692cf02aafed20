package port

import "github.com/Wyydra/callstate/internal/core/domain"

// EventHandler receives host callbacks. Managers call each method at most once per
// observed transition.
type EventHandler interface {
	OnCallStateChanged(change domain.CallStateChange)
	OnError(err *domain.CompositeError)
	OnExited(exit domain.CompositeExit)
	OnRemoteParticipantJoined(ids []domain.ParticipantID)
}
