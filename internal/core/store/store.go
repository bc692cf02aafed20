// Package store holds the current state and runs every dispatched action through the
// middleware chain and the reducer, one at a time.
package store

import (
	"sync"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/middleware"
	"github.com/Wyydra/callstate/internal/core/reducer"
	"github.com/Wyydra/callstate/internal/core/state"
	"github.com/rs/zerolog/log"
)

type item struct {
	action action.Action
	done   chan struct{}
}

// Store serializes dispatches. Whichever goroutine finds the queue idle drains it;
// others enqueue and wait. Actions dispatched from middleware are queued behind the
// current one and never wait, so re-entrant dispatch cannot deadlock.
type Store struct {
	reducer *reducer.AppStateReducer
	chain   middleware.Dispatch

	stateMu sync.RWMutex
	state   state.AppState

	queueMu  sync.Mutex
	queue    []item
	draining bool

	subsMu sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

func New(initial state.AppState, r *reducer.AppStateReducer, mws ...middleware.Middleware) *Store {
	s := &Store{
		reducer: r,
		state:   initial,
		subs:    make(map[*Subscription]struct{}),
	}
	s.chain = middleware.Chain(s.post, s.State, s.reduce, mws...)
	return s
}

// State returns the last published state.
func (s *Store) State() state.AppState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Dispatch runs a through the pipeline and returns once the resulting state has been
// handed to every subscriber. Side effects started by middleware finish later.
func (s *Store) Dispatch(a action.Action) {
	done := make(chan struct{})
	s.enqueue(item{action: a, done: done})
	<-done
}

// post queues a without waiting. Middleware receive it as their dispatch function.
func (s *Store) post(a action.Action) {
	s.enqueue(item{action: a})
}

func (s *Store) enqueue(it item) {
	s.queueMu.Lock()
	s.queue = append(s.queue, it)
	if s.draining {
		s.queueMu.Unlock()
		return
	}
	s.draining = true
	s.queueMu.Unlock()

	s.drain()
}

func (s *Store) drain() {
	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.queueMu.Unlock()
			return
		}
		it := s.queue[0]
		s.queue[0] = item{}
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		s.process(it.action)
		if it.done != nil {
			close(it.done)
		}
	}
}

func (s *Store) process(a action.Action) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("kind", a.Kind().String()).Msg("Dispatch panicked")
		}
	}()
	s.chain(a)
}

// reduce is the last stage of the chain. Only the draining goroutine writes state, so
// the reducer runs outside the lock and a panic in it leaves the lock free.
func (s *Store) reduce(a action.Action) {
	next := s.reducer.Reduce(s.State(), a)

	s.stateMu.Lock()
	s.state = next
	s.stateMu.Unlock()

	s.subsMu.Lock()
	for sub := range s.subs {
		sub.push(next)
	}
	s.subsMu.Unlock()
}

// Subscribe calls fn with the current state and then with every published state, in
// order, on a goroutine owned by the subscription.
func (s *Store) Subscribe(fn func(state.AppState)) *Subscription {
	sub := newSubscription(s, fn)

	s.subsMu.Lock()
	if s.closed {
		s.subsMu.Unlock()
		sub.stop()
		go sub.run()
		return sub
	}
	// Holding subsMu while reading state orders the first delivery before any later
	// publication.
	sub.push(s.State())
	s.subs[sub] = struct{}{}
	s.subsMu.Unlock()

	go sub.run()
	return sub
}

func (s *Store) unsubscribe(sub *Subscription) {
	s.subsMu.Lock()
	delete(s.subs, sub)
	s.subsMu.Unlock()
}

// Close cancels every subscription. Dispatch keeps working but nothing is published.
func (s *Store) Close() {
	s.subsMu.Lock()
	s.closed = true
	subs := s.subs
	s.subs = make(map[*Subscription]struct{})
	s.subsMu.Unlock()

	for sub := range subs {
		sub.stop()
	}
}
