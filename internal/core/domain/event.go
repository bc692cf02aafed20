package domain

// CallEvent is a notification pushed by the calling service. The set of variants is
// closed; the event adapter turns each into one or more actions.
type CallEvent interface {
	callEvent()
}

type ParticipantsUpdated struct {
	Participants []ParticipantInfo
}

// CallInfoUpdated reports a status change, with the error that caused it if any.
type CallInfoUpdated struct {
	Status        CallingStatus
	InternalError InternalError
	EndReason     CallEndReason
}

type CallIDUpdated struct {
	CallID CallID
}

type RecordingChanged struct {
	Active bool
}

type TranscriptionChanged struct {
	Active bool
}

type LocalMuteChanged struct {
	Muted bool
}

type DominantSpeakersChanged struct {
	Speakers []ParticipantID
}

type TotalParticipantCountChanged struct {
	Count int
}

type LocalRoleChanged struct {
	Role ParticipantRole
}

type NetworkQualityDiagnosticChanged struct {
	Model NetworkQualityDiagnosticModel
}

type NetworkDiagnosticChanged struct {
	Model NetworkDiagnosticModel
}

type MediaDiagnosticChanged struct {
	Model MediaDiagnosticModel
}

type CaptionsActiveChanged struct {
	Active bool
}

func (ParticipantsUpdated) callEvent()             {}
func (CallInfoUpdated) callEvent()                 {}
func (CallIDUpdated) callEvent()                   {}
func (RecordingChanged) callEvent()                {}
func (TranscriptionChanged) callEvent()            {}
func (LocalMuteChanged) callEvent()                {}
func (DominantSpeakersChanged) callEvent()         {}
func (TotalParticipantCountChanged) callEvent()    {}
func (LocalRoleChanged) callEvent()                {}
func (NetworkQualityDiagnosticChanged) callEvent() {}
func (NetworkDiagnosticChanged) callEvent()        {}
func (MediaDiagnosticChanged) callEvent()          {}
func (CaptionsActiveChanged) callEvent()           {}

// CallStateChange is the payload of the host call state callback.
type CallStateChange struct {
	Status    CallingStatus `json:"status"`
	CallID    CallID        `json:"call_id,omitempty"`
	EndReason CallEndReason `json:"end_reason"`
}

// CompositeExit is the payload of the host exit callback. Code is empty on a clean exit.
type CompositeExit struct {
	Code CompositeErrorCode `json:"code,omitempty"`
	Err  error              `json:"-"`
}
