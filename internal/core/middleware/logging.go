package middleware

import (
	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/rs/zerolog/log"
)

// Logging logs every action. Error actions are logged at warn level with their cause.
func Logging() Middleware {
	return func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) {
				l := log.With().Str("kind", a.Kind().String()).Logger()

				switch a := a.(type) {
				case action.FatalErrorUpdated:
					l.Error().Err(a.Err).Str("error_tag", string(a.Tag)).Msg("Fatal error")
				case action.StatusErrorAndCallReset:
					l.Warn().Err(a.Err).Str("error_tag", string(a.Tag)).Msg("Call reset by error")
				case action.OperationFailed:
					l.Warn().Err(a.Err).Str("error_tag", string(a.Tag)).Msg("Operation failed")
				default:
					l.Debug().Msg("Dispatching action")
				}

				next(a)
			}
		}
	}
}
