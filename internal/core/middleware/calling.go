package middleware

import (
	"github.com/Wyydra/callstate/internal/core/action"
)

// Calling hands calling intents to h. The side effect runs on its own goroutine with
// the state as it was before the action was reduced; the action itself always moves on.
func Calling(h *CallingHandler) Middleware {
	return func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) {
				if job := h.Route(a, getState()); job != nil {
					h.Go(a.Kind().String(), func() { job(dispatch) })
				}
				next(a)
			}
		}
	}
}
