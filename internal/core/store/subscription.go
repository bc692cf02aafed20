package store

import (
	"sync"

	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/rs/zerolog/log"
)

// Subscription delivers published states to one observer. Its mailbox is unbounded so
// publishing never blocks the dispatch loop.
type Subscription struct {
	store *Store
	fn    func(state.AppState)

	mu      sync.Mutex
	pending []state.AppState
	wake    chan struct{}

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newSubscription(s *Store, fn func(state.AppState)) *Subscription {
	return &Subscription{
		store: s,
		fn:    fn,
		wake:  make(chan struct{}, 1),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (sub *Subscription) push(s state.AppState) {
	sub.mu.Lock()
	sub.pending = append(sub.pending, s)
	sub.mu.Unlock()

	select {
	case sub.wake <- struct{}{}:
	default:
	}
}

func (sub *Subscription) run() {
	defer close(sub.done)
	for {
		select {
		case <-sub.quit:
			return
		case <-sub.wake:
		}

		sub.mu.Lock()
		batch := sub.pending
		sub.pending = nil
		sub.mu.Unlock()

		for _, s := range batch {
			select {
			case <-sub.quit:
				return
			default:
			}
			sub.deliver(s)
		}
	}
}

func (sub *Subscription) deliver(s state.AppState) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Subscriber panicked")
		}
	}()
	sub.fn(s)
}

func (sub *Subscription) stop() {
	sub.stopOnce.Do(func() {
		close(sub.quit)
	})
}

// Cancel stops delivery. It may be called from inside the callback.
func (sub *Subscription) Cancel() {
	sub.store.unsubscribe(sub)
	sub.stop()
}

// Done is closed once the delivery goroutine has exited.
func (sub *Subscription) Done() <-chan struct{} {
	return sub.done
}
