package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Wyydra/callstate/internal/core/action"
)

var ErrUnknownIntent = errors.New("unknown intent")

// Intent is the wire form of a host request: an action kind and its fields.
type Intent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type decoder func(json.RawMessage) (action.Action, error)

func intent[A action.Action]() (string, decoder) {
	var zero A
	return zero.Kind().String(), func(raw json.RawMessage) (action.Action, error) {
		var a A
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &a); err != nil {
				return nil, err
			}
		}
		return a, nil
	}
}

// intents lists what a host may dispatch. Service notifications and side-effect
// outcomes are produced inside the composite and cannot be sent from outside.
var intents = func() map[string]decoder {
	m := make(map[string]decoder)
	add := func(kind string, d decoder) { m[kind] = d }

	add(intent[action.CallStartRequested]())
	add(intent[action.CallEndRequested]())
	add(intent[action.HoldRequested]())
	add(intent[action.ResumeRequested]())
	add(intent[action.CallBypassRequested]())
	add(intent[action.CallingViewLaunched]())
	add(intent[action.CompositeExit]())

	add(intent[action.CameraPreviewOnTriggered]())
	add(intent[action.CameraOnTriggered]())
	add(intent[action.CameraOffTriggered]())
	add(intent[action.CameraSwitchTriggered]())
	add(intent[action.MicrophoneOnTriggered]())
	add(intent[action.MicrophoneOffTriggered]())
	add(intent[action.MicrophonePreviewOn]())
	add(intent[action.MicrophonePreviewOff]())
	add(intent[action.AudioDeviceChangeRequested]())

	add(intent[action.AudioPermissionGranted]())
	add(intent[action.AudioPermissionDenied]())
	add(intent[action.CameraPermissionGranted]())
	add(intent[action.CameraPermissionDenied]())

	add(intent[action.ForegroundEntered]())
	add(intent[action.BackgroundEntered]())
	add(intent[action.WillTerminate]())
	add(intent[action.AudioInterrupted]())
	add(intent[action.AudioInterruptEnded]())
	add(intent[action.AudioEngaged]())

	add(intent[action.ShowSupportForm]())
	add(intent[action.ShowEndCallConfirmation]())
	add(intent[action.ShowAudioSelection]())
	add(intent[action.ShowMoreOptions]())
	add(intent[action.ShowSupportShare]())
	add(intent[action.ShowParticipants]())
	add(intent[action.ShowCaptionsList]())
	add(intent[action.ShowSpokenLanguageSelection]())
	add(intent[action.ShowCaptionsLanguageSelection]())
	add(intent[action.ShowParticipantActions]())
	add(intent[action.HideDrawer]())
	add(intent[action.DismissSetup]())

	add(intent[action.AdmitAllRequested]())
	add(intent[action.DeclineAllRequested]())
	add(intent[action.AdmitRequested]())
	add(intent[action.DeclineRequested]())
	add(intent[action.RemoveRequested]())
	add(intent[action.ClearLobbyError]())

	add(intent[action.DismissNetworkQualityDiagnostic]())
	add(intent[action.DismissNetworkDiagnostic]())
	add(intent[action.DismissMediaDiagnostic]())

	add(intent[action.TurnOnCaptionsRequested]())
	add(intent[action.TurnOffCaptionsRequested]())
	add(intent[action.SetSpokenLanguageRequested]())
	add(intent[action.SetCaptionLanguageRequested]())

	add(intent[action.TurnOnRtt]())
	add(intent[action.UpdateRttMaximized]())
	add(intent[action.SendRttMessage]())

	add(intent[action.DismissToast]())
	add(intent[action.ButtonEnabledUpdated]())
	add(intent[action.ButtonVisibleUpdated]())
	add(intent[action.CustomButtonUpdated]())
	add(intent[action.HeaderTitleUpdated]())
	add(intent[action.HeaderSubtitleUpdated]())

	add(intent[action.PipModeRequested]())
	add(intent[action.PipModeEntered]())
	add(intent[action.HideRequested]())
	add(intent[action.ShowNormalEntered]())
	return m
}()

// Decode turns an intent into an action.
func (i Intent) Decode() (action.Action, error) {
	d, ok := intents[i.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, i.Type)
	}
	a, err := d(i.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", i.Type, err)
	}
	return a, nil
}
