package middleware

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/port"
)

// Metrics counts actions and measures how long the rest of the pipeline takes.
func Metrics(m port.Metrics) Middleware {
	return func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) {
				start := time.Now()
				next(a)
				m.ActionDispatched(string(a.Kind().Domain()), a.Kind().String(), time.Since(start))
			}
		}
	}
}
