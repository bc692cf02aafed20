package middleware

import (
	"context"
	"time"

	"github.com/Wyydra/callstate/internal/core/action"
	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/Wyydra/callstate/internal/core/port"
	"github.com/rs/zerolog/log"
)

// Journal records every action that reaches it. Journal failures are logged and never
// block the action.
func Journal(j port.ActionJournal, now func() time.Time) Middleware {
	if now == nil {
		now = time.Now
	}
	return func(dispatch Dispatch, getState GetState) func(next Dispatch) Dispatch {
		return func(next Dispatch) Dispatch {
			return func(a action.Action) {
				entry := domain.NewJournalEntry(a.Kind().String(), now(), errorOf(a))
				if err := j.Save(context.Background(), entry); err != nil {
					log.Error().Err(err).Str("kind", entry.Kind).Msg("Failed to journal action")
				}
				next(a)
			}
		}
	}
}

func errorOf(a action.Action) error {
	switch a := a.(type) {
	case action.FatalErrorUpdated:
		return a.Err
	case action.StatusErrorAndCallReset:
		return a.Err
	case action.OperationFailed:
		return a.Err
	case action.CameraOnFailed:
		return a.Err
	case action.CameraOffFailed:
		return a.Err
	case action.CameraPausedFailed:
		return a.Err
	case action.CameraSwitchFailed:
		return a.Err
	case action.MicrophoneOnFailed:
		return a.Err
	case action.MicrophoneOffFailed:
		return a.Err
	case action.AudioDeviceChangeFailed:
		return a.Err
	case action.RttSendFailed:
		return a.Err
	case action.LobbyErrorOccurred:
		return a.Code
	case action.CaptionsErrorChanged:
		if a.Code != domain.CaptionsErrorNone {
			return a.Code
		}
	}
	return nil
}
