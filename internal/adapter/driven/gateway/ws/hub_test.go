package ws

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ port.EventHandler = (*Hub)(nil)

type fakeClient struct {
	id      string
	sendErr error

	mu     sync.Mutex
	sent   []Envelope
	closed bool
}

func (c *fakeClient) ID() string { return c.id }

func (c *fakeClient) Send(msg Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeClient) messages() []Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Envelope(nil), c.sent...)
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	go h.Run()
	t.Cleanup(h.Stop)
	return h
}

func TestHubBroadcastsEvents(t *testing.T) {
	t.Parallel()
	h := startHub(t)
	c := &fakeClient{id: "a"}
	require.True(t, h.Register(c))

	h.OnCallStateChanged(domain.CallStateChange{Status: domain.CallingStatusConnected})
	h.OnError(&domain.CompositeError{Code: domain.ErrorCodeCallEvicted, Err: domain.InternalErrorCallEvicted})
	h.OnRemoteParticipantJoined([]domain.ParticipantID{"p1"})
	h.OnExited(domain.CompositeExit{})
	h.PublishState(state.New(state.Options{}))

	require.Eventually(t, func() bool { return len(c.messages()) == 5 }, time.Second, 5*time.Millisecond)
	got := c.messages()
	assert.Equal(t, TypeCallStateChanged, got[0].Type)
	assert.Equal(t, Envelope{Type: TypeError, Payload: errorDTO{Code: domain.ErrorCodeCallEvicted, Message: "call_evicted"}}, got[1])
	assert.Equal(t, []domain.ParticipantID{"p1"}, got[2].Payload)
	assert.Equal(t, Envelope{Type: TypeExited, Payload: exitDTO{}}, got[3])
	assert.Equal(t, TypeState, got[4].Type)
}

func TestHubDropsFailingClient(t *testing.T) {
	t.Parallel()
	h := startHub(t)
	bad := &fakeClient{id: "bad", sendErr: errors.New("broken pipe")}
	good := &fakeClient{id: "good"}
	require.True(t, h.Register(bad))
	require.True(t, h.Register(good))

	h.OnExited(domain.CompositeExit{})

	require.Eventually(t, bad.isClosed, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return h.Count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Len(t, good.messages(), 1)
}

func TestHubUnregister(t *testing.T) {
	t.Parallel()
	h := startHub(t)
	c := &fakeClient{id: "a"}
	require.True(t, h.Register(c))
	h.Unregister(c)

	require.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, h.Count())
}

func TestHubStopClosesClients(t *testing.T) {
	t.Parallel()
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	c := &fakeClient{id: "a"}
	require.True(t, h.Register(c))

	h.Stop()
	h.Stop()
	<-done

	assert.True(t, c.isClosed())
	assert.False(t, h.Register(&fakeClient{id: "late"}))
	h.OnExited(domain.CompositeExit{})
}
