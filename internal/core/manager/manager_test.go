package manager

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/reducer"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/Wyydra/callstate/internal/core/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	mu      sync.Mutex
	changes []domain.CallStateChange
	errs    []*domain.CompositeError
	exits   []domain.CompositeExit
	joined  [][]domain.ParticipantID
}

func (h *fakeHandler) OnCallStateChanged(c domain.CallStateChange) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.changes = append(h.changes, c)
}

func (h *fakeHandler) OnError(err *domain.CompositeError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *fakeHandler) OnExited(e domain.CompositeExit) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exits = append(h.exits, e)
}

func (h *fakeHandler) OnRemoteParticipantJoined(ids []domain.ParticipantID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.joined = append(h.joined, ids)
}

func (h *fakeHandler) exitCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.exits)
}

var at = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCallStateManagerReportsOncePerTransition(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	m := NewCallStateManager(h)
	r := reducer.Default()

	s := state.New(state.Options{})
	m.Observe(s)
	assert.Empty(t, h.changes)

	s = r.Reduce(s, action.StateUpdated{Status: domain.CallingStatusConnecting})
	m.Observe(s)
	s = r.Reduce(s, action.RecordingStateUpdated{Active: true})
	m.Observe(s)
	s = r.Reduce(s, action.StateUpdated{Status: domain.CallingStatusConnected})
	m.Observe(s)
	m.Observe(s)

	require.Len(t, h.changes, 2)
	assert.Equal(t, domain.CallingStatusConnecting, h.changes[0].Status)
	assert.Equal(t, domain.CallingStatusConnected, h.changes[1].Status)
}

func TestErrorManagerReportsPublicErrors(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	m := NewErrorManager(h)
	r := reducer.Default()
	cause := errors.New("token expired")

	s := state.New(state.Options{})
	m.Observe(s)

	s = r.Reduce(s, action.OperationFailed{Tag: domain.InternalErrorCallHoldFailed})
	m.Observe(s)
	assert.Empty(t, h.errs, "hold failures have no public code")

	s = r.Reduce(s, action.FatalErrorUpdated{Tag: domain.InternalErrorCallTokenFailed, Err: cause})
	m.Observe(s)
	m.Observe(s)

	require.Len(t, h.errs, 1)
	assert.Equal(t, domain.ErrorCodeTokenExpired, h.errs[0].Code)
	assert.ErrorIs(t, h.errs[0], cause)
}

func TestErrorManagerReportsRepeatAfterClear(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	m := NewErrorManager(h)
	r := reducer.Default()
	denied := action.StatusErrorAndCallReset{Tag: domain.InternalErrorCallDenied}

	s := r.Reduce(state.New(state.Options{}), denied)
	m.Observe(s)
	s = r.Reduce(s, action.CallStartRequested{})
	m.Observe(s)
	s = r.Reduce(s, denied)
	m.Observe(s)

	require.Len(t, h.errs, 2)
	assert.Equal(t, domain.ErrorCodeCallDenied, h.errs[1].Code)
}

func TestExitManagerReportsOnce(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	m := NewExitManager(h)
	r := reducer.Default()

	s := r.Reduce(state.New(state.Options{}), action.FatalErrorUpdated{Tag: domain.InternalErrorCallJoinFailed})
	m.Observe(s)
	m.Observe(r.Reduce(s, action.CompositeExit{}))

	require.Len(t, h.exits, 1)
	assert.Equal(t, domain.ErrorCodeCallJoin, h.exits[0].Code)
	assert.True(t, m.Exited())
}

func TestExitManagerCleanExit(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	m := NewExitManager(h)

	m.Observe(reducer.Default().Reduce(state.New(state.Options{}), action.CompositeExit{}))

	require.Len(t, h.exits, 1)
	assert.Equal(t, domain.CompositeExit{}, h.exits[0])
}

func TestRemoteParticipantsManagerReportsJoined(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	m := NewRemoteParticipantsManager(h)
	r := reducer.Default()
	a := domain.ParticipantInfo{ID: "a"}
	b := domain.ParticipantInfo{ID: "b"}

	s := state.New(state.Options{})
	m.Observe(s)

	s = r.Reduce(s, action.ParticipantListUpdated{Participants: []domain.ParticipantInfo{a}, At: at})
	m.Observe(s)
	m.Observe(s)

	s = r.Reduce(s, action.ParticipantListUpdated{Participants: []domain.ParticipantInfo{a, b}, At: at.Add(time.Second)})
	m.Observe(s)

	s = r.Reduce(s, action.ParticipantListUpdated{Participants: []domain.ParticipantInfo{b}, At: at.Add(2 * time.Second)})
	m.Observe(s)

	assert.Equal(t, [][]domain.ParticipantID{{"a"}, {"b"}}, h.joined)
}

func TestManagersAttachedToStore(t *testing.T) {
	t.Parallel()

	h := &fakeHandler{}
	st := store.New(state.New(state.Options{}), reducer.Default())
	subs := Attach(st, NewExitManager(h))
	defer func() {
		for _, sub := range subs {
			sub.Cancel()
		}
	}()

	st.Dispatch(action.CompositeExit{})
	st.Dispatch(action.CompositeExit{})

	assert.Eventually(t, func() bool { return h.exitCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return h.exitCount() > 1 }, 100*time.Millisecond, 10*time.Millisecond)
}
