package memory

import (
	"context"
	"slices"

	"github.com/Wyydra/callstate/internal/core/domain"
)

// Join adds or replaces a remote participant and publishes the new list.
func (e *CallEngine) Join(ctx context.Context, p domain.ParticipantInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexLocked(p.ID)
	if i < 0 {
		e.participants = append(e.participants, p)
	} else {
		e.participants[i] = p
	}
	e.publishParticipantsLocked(ctx)
}

// Leave removes a remote participant and publishes the new list.
func (e *CallEngine) Leave(ctx context.Context, id domain.ParticipantID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removeLocked(id) {
		e.publishParticipantsLocked(ctx)
	}
}

func (e *CallEngine) Participants() []domain.ParticipantInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.participants)
}

func (e *CallEngine) AdmitAll(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpAdmitAll); err != nil {
		return err
	}
	for i := range e.participants {
		if e.participants[i].Status == domain.ParticipantStatusInLobby {
			e.participants[i].Status = domain.ParticipantStatusConnected
		}
	}
	e.publishParticipantsLocked(ctx)
	return nil
}

func (e *CallEngine) DeclineAll(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpDeclineAll); err != nil {
		return err
	}
	e.participants = slices.DeleteFunc(e.participants, func(p domain.ParticipantInfo) bool {
		return p.Status == domain.ParticipantStatusInLobby
	})
	e.publishParticipantsLocked(ctx)
	return nil
}

func (e *CallEngine) Admit(ctx context.Context, id domain.ParticipantID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpAdmit); err != nil {
		return err
	}
	i := e.indexLocked(id)
	if i < 0 || e.participants[i].Status != domain.ParticipantStatusInLobby {
		return domain.LobbyErrorUnknown
	}
	e.participants[i].Status = domain.ParticipantStatusConnected
	e.publishParticipantsLocked(ctx)
	return nil
}

func (e *CallEngine) Decline(ctx context.Context, id domain.ParticipantID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpDecline); err != nil {
		return err
	}
	i := e.indexLocked(id)
	if i < 0 || e.participants[i].Status != domain.ParticipantStatusInLobby {
		return domain.LobbyErrorUnknown
	}
	e.removeLocked(id)
	e.publishParticipantsLocked(ctx)
	return nil
}

func (e *CallEngine) RemoveParticipant(ctx context.Context, id domain.ParticipantID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpRemove); err != nil {
		return err
	}
	if !e.removeLocked(id) {
		return domain.LobbyErrorRemoveParticipantFailed
	}
	e.publishParticipantsLocked(ctx)
	return nil
}

func (e *CallEngine) indexLocked(id domain.ParticipantID) int {
	return slices.IndexFunc(e.participants, func(p domain.ParticipantInfo) bool { return p.ID == id })
}

func (e *CallEngine) removeLocked(id domain.ParticipantID) bool {
	i := e.indexLocked(id)
	if i < 0 {
		return false
	}
	e.participants = slices.Delete(e.participants, i, i+1)
	return true
}

func (e *CallEngine) publishParticipantsLocked(ctx context.Context) {
	e.emitLocked(ctx, domain.ParticipantsUpdated{Participants: slices.Clone(e.participants)})
	e.emitLocked(ctx, domain.TotalParticipantCountChanged{Count: len(e.participants)})
}
