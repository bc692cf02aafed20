package action

import (
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
)

type SetupCall struct{}

type CallStartRequested struct{}

type CallEndRequested struct{}

type CallEnded struct{}

// RequestFailed marks the pending calling operation as failed.
type RequestFailed struct{}

// StateUpdated carries a status change reported by the calling service.
type StateUpdated struct {
	Status    domain.CallingStatus
	EndReason domain.CallEndReason
}

type CallIDUpdated struct {
	CallID domain.CallID
}

type RecordingStateUpdated struct {
	Active bool
}

type TranscriptionStateUpdated struct {
	Active bool
}

type HoldRequested struct{}

type ResumeRequested struct{}

type CallStartTimeUpdated struct {
	At time.Time
}

// CallBypassRequested skips the setup screen and joins directly.
type CallBypassRequested struct{}

type SkipSetupRequested struct{}

func (SetupCall) Kind() Kind                 { return "calling.setupCall" }
func (CallStartRequested) Kind() Kind        { return "calling.callStartRequested" }
func (CallEndRequested) Kind() Kind          { return "calling.callEndRequested" }
func (CallEnded) Kind() Kind                 { return "calling.callEnded" }
func (RequestFailed) Kind() Kind             { return "calling.requestFailed" }
func (StateUpdated) Kind() Kind              { return "calling.stateUpdated" }
func (CallIDUpdated) Kind() Kind             { return "calling.callIdUpdated" }
func (RecordingStateUpdated) Kind() Kind     { return "calling.recordingStateUpdated" }
func (TranscriptionStateUpdated) Kind() Kind { return "calling.transcriptionStateUpdated" }
func (HoldRequested) Kind() Kind             { return "calling.holdRequested" }
func (ResumeRequested) Kind() Kind           { return "calling.resumeRequested" }
func (CallStartTimeUpdated) Kind() Kind      { return "calling.callStartTimeUpdated" }
func (CallBypassRequested) Kind() Kind       { return "calling.callBypassRequested" }
func (SkipSetupRequested) Kind() Kind        { return "calling.skipSetupRequested" }

func (SetupCall) isAction()                 {}
func (CallStartRequested) isAction()        {}
func (CallEndRequested) isAction()          {}
func (CallEnded) isAction()                 {}
func (RequestFailed) isAction()             {}
func (StateUpdated) isAction()              {}
func (CallIDUpdated) isAction()             {}
func (RecordingStateUpdated) isAction()     {}
func (TranscriptionStateUpdated) isAction() {}
func (HoldRequested) isAction()             {}
func (ResumeRequested) isAction()           {}
func (CallStartTimeUpdated) isAction()      {}
func (CallBypassRequested) isAction()       {}
func (SkipSetupRequested) isAction()        {}
