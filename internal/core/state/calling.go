package state

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

// OperationStatus tracks a calling operation the user requested that has not yet been
// confirmed by the service.
type OperationStatus string

const (
	OperationStatusNone               OperationStatus = "none"
	OperationStatusSkipSetupRequested OperationStatus = "skip_setup_requested"
	OperationStatusBypassRequested    OperationStatus = "bypass_requested"
	OperationStatusCallEndRequested   OperationStatus = "call_end_requested"
	OperationStatusCallEnded          OperationStatus = "call_ended"
)

type CallingState struct {
	Status                domain.CallingStatus `json:"status"`
	OperationStatus       OperationStatus      `json:"operation_status"`
	CallID                domain.CallID        `json:"call_id,omitempty"`
	IsRecordingActive     bool                 `json:"is_recording_active"`
	IsTranscriptionActive bool                 `json:"is_transcription_active"`
	CallEndReason         domain.CallEndReason `json:"call_end_reason"`
	CallStartTime         time.Time            `json:"call_start_time"`
}

func NewCallingState() CallingState {
	return CallingState{
		Status:          domain.CallingStatusNone,
		OperationStatus: OperationStatusNone,
	}
}
