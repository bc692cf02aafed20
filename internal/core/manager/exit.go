package manager

import (
	"sync/atomic"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
)

// ExitManager reports the composite exit once.
type ExitManager struct {
	handler port.EventHandler
	exited  atomic.Bool
}

func NewExitManager(h port.EventHandler) *ExitManager {
	return &ExitManager{handler: h}
}

func (m *ExitManager) Observe(s state.AppState) {
	if s.Navigation.Status != state.NavigationExit || !m.exited.CompareAndSwap(false, true) {
		return
	}

	exit := domain.CompositeExit{}
	if s.Error.Category == domain.ErrorCategoryFatal {
		exit.Code = s.Error.InternalError.Code()
		exit.Err = s.Error.Err
	}
	m.handler.OnExited(exit)
}

// Exited reports whether the exit callback has fired.
func (m *ExitManager) Exited() bool {
	return m.exited.Load()
}
