package manager

import (
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
)

// CallStateManager reports calling status changes.
type CallStateManager struct {
	handler port.EventHandler
	prev    domain.CallingStatus
}

func NewCallStateManager(h port.EventHandler) *CallStateManager {
	return &CallStateManager{handler: h, prev: domain.CallingStatusNone}
}

func (m *CallStateManager) Observe(s state.AppState) {
	if s.Calling.Status == m.prev {
		return
	}
	m.prev = s.Calling.Status
	m.handler.OnCallStateChanged(domain.CallStateChange{
		Status:    s.Calling.Status,
		CallID:    s.Calling.CallID,
		EndReason: s.Calling.CallEndReason,
	})
}
