package middleware

import (
	"sync"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/rs/zerolog/log"
)

// KeyFunc maps an action to its throttle key. Actions without a key are never throttled.
type KeyFunc func(action.Action) (key string, ok bool)

// Throttler suppresses a keyed action seen again within the window. Only accepted
// actions restart the window.
type Throttler struct {
	mu       sync.Mutex
	window   time.Duration
	key      KeyFunc
	now      func() time.Time
	accepted map[string]time.Time
}

func NewThrottler(window time.Duration, key KeyFunc) *Throttler {
	return &Throttler{
		window:   window,
		key:      key,
		now:      time.Now,
		accepted: make(map[string]time.Time),
	}
}

// WithClock replaces the time source.
func (t *Throttler) WithClock(now func() time.Time) *Throttler {
	t.now = now
	return t
}

// Allow reports whether a passes, and the key it was checked against.
func (t *Throttler) Allow(a action.Action) (string, bool) {
	key, ok := t.key(a)
	if !ok {
		return "", true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, seen := t.accepted[key]; seen && now.Sub(last) < t.window {
		return key, false
	}
	t.accepted[key] = now
	return key, true
}

// DefaultKey throttles drawer toggles and camera switches.
func DefaultKey(a action.Action) (string, bool) {
	switch a.(type) {
	case action.ShowSupportForm,
		action.ShowMoreOptions,
		action.ShowAudioSelection,
		action.ShowEndCallConfirmation,
		action.ShowSupportShare,
		action.HideDrawer,
		action.CameraSwitchTriggered:
		return a.Kind().String(), true
	default:
		return "", false
	}
}

// Throttle drops actions the throttler rejects. m may be nil.
func Throttle(t *Throttler, m port.Metrics) Middleware {
	return func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) {
				key, ok := t.Allow(a)
				if !ok {
					log.Debug().Str("key", key).Msg("Throttled duplicate action")
					if m != nil {
						m.ActionThrottled(key)
					}
					return
				}
				next(a)
			}
		}
	}
}
