package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainRunsInDeclaredOrder(t *testing.T) {
	t.Parallel()

	var order []string
	stage := func(name string) Middleware {
		return func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch {
			return func(next Dispatch) Dispatch {
				return func(a action.Action) {
					order = append(order, name)
					next(a)
				}
			}
		}
	}

	final := func(action.Action) { order = append(order, "reducer") }
	chain := Chain(nil, nil, final, stage("first"), stage("second"), stage("third"))
	chain(action.HideDrawer{})

	assert.Equal(t, []string{"first", "second", "third", "reducer"}, order)
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestThrottlerWindow(t *testing.T) {
	t.Parallel()

	c := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	th := NewThrottler(500*time.Millisecond, DefaultKey).WithClock(c.Now)

	_, ok := th.Allow(action.ShowMoreOptions{})
	assert.True(t, ok)

	c.Advance(100 * time.Millisecond)
	key, ok := th.Allow(action.ShowMoreOptions{})
	assert.False(t, ok)
	assert.Equal(t, "navigation.showMoreOptions", key)

	_, ok = th.Allow(action.ShowSupportForm{})
	assert.True(t, ok, "different keys are independent")

	c.Advance(400 * time.Millisecond)
	_, ok = th.Allow(action.ShowMoreOptions{})
	assert.True(t, ok, "accepted once the window has elapsed")
}

func TestThrottlerSuppressedActionsDoNotExtendWindow(t *testing.T) {
	t.Parallel()

	c := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	th := NewThrottler(time.Second, DefaultKey).WithClock(c.Now)

	_, ok := th.Allow(action.CameraSwitchTriggered{})
	require.True(t, ok)
	c.Advance(900 * time.Millisecond)
	_, ok = th.Allow(action.CameraSwitchTriggered{})
	require.False(t, ok)
	c.Advance(200 * time.Millisecond)
	_, ok = th.Allow(action.CameraSwitchTriggered{})
	assert.True(t, ok)
}

func TestThrottlerNeverThrottlesUnkeyedActions(t *testing.T) {
	t.Parallel()

	th := NewThrottler(time.Hour, DefaultKey)
	for i := 0; i < 3; i++ {
		_, ok := th.Allow(action.CameraOnTriggered{})
		assert.True(t, ok)
	}
}

func TestThrottleMiddlewareSuppressesDuplicate(t *testing.T) {
	t.Parallel()

	m := &fakeMetrics{}
	rec := &recorder{}
	th := NewThrottler(time.Hour, DefaultKey)
	chain := Chain(nil, nil, rec.dispatch, Throttle(th, m))

	chain(action.CameraSwitchTriggered{})
	chain(action.CameraSwitchTriggered{})
	chain(action.CameraOnTriggered{})

	assert.Equal(t, []action.Action{action.CameraSwitchTriggered{}, action.CameraOnTriggered{}}, rec.Actions())
	assert.Equal(t, []string{"localUser.cameraSwitchTriggered"}, m.throttled)
}

func TestMetricsMiddlewareCountsActions(t *testing.T) {
	t.Parallel()

	m := &fakeMetrics{}
	rec := &recorder{}
	chain := Chain(nil, nil, rec.dispatch, Metrics(m))
	chain(action.CallEnded{})

	assert.Equal(t, []string{"calling.callEnded"}, m.kinds)
	assert.Len(t, rec.Actions(), 1)
}

type memJournal struct {
	entries []domain.JournalEntry
	err     error
}

func (j *memJournal) Save(ctx context.Context, e domain.JournalEntry) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, e)
	return nil
}

func (j *memJournal) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	return j.entries, nil
}

func TestJournalRecordsErrors(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	j := &memJournal{}
	rec := &recorder{}
	chain := Chain(nil, nil, rec.dispatch, Journal(j, func() time.Time { return at }))

	chain(action.CameraOnFailed{Err: errors.New("camera busy")})
	chain(action.CallEnded{})

	require.Len(t, j.entries, 2)
	assert.Equal(t, "localUser.cameraOnFailed", j.entries[0].Kind)
	assert.Equal(t, "camera busy", j.entries[0].Error)
	assert.Equal(t, at, j.entries[0].At)
	assert.NotEmpty(t, j.entries[0].ID)
	assert.Empty(t, j.entries[1].Error)
}

func TestJournalFailureDoesNotBlockAction(t *testing.T) {
	t.Parallel()

	j := &memJournal{err: errors.New("full")}
	rec := &recorder{}
	chain := Chain(nil, nil, rec.dispatch, Journal(j, nil))
	chain(action.CallEnded{})

	assert.Len(t, rec.Actions(), 1)
}

func TestCallingMiddlewarePassesActionAndSpawnsJob(t *testing.T) {
	t.Parallel()

	svc := newFakeCalling()
	h := NewCallingHandler(svc, nil)
	rec := &recorder{}
	follow := &recorder{}

	s := state.New(state.Options{})
	chain := Chain(follow.dispatch, func() state.AppState { return s }, rec.dispatch, Calling(h))

	chain(action.CallEndRequested{})
	h.Wait()

	assert.Equal(t, []action.Action{action.CallEndRequested{}}, rec.Actions())
	assert.Equal(t, []action.Action{action.CallEnded{}}, follow.Actions())
	assert.Equal(t, []string{"end_call"}, svc.Calls())
}
