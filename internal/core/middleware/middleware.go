// Package middleware holds the stages an action passes through before it reaches the
// reducer.
package middleware

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/state"
)

// Dispatch sends an action into the pipeline.
type Dispatch func(action.Action)

// GetState returns the current state.
type GetState func() state.AppState

// Middleware wraps the next stage. dispatch re-enters the pipeline from the start;
// next passes the action on. Not calling next suppresses the action.
type Middleware func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch

// Chain composes middlewares around final. The first middleware sees the action first.
func Chain(dispatch Dispatch, getState GetState, final Dispatch, mws ...Middleware) Dispatch {
	next := final
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](dispatch, getState)(next)
	}
	return next
}
