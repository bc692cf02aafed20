package domain

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies how far an internal error cascades through the state tree.
type ErrorCategory string

const (
	ErrorCategoryNone      ErrorCategory = "none"
	ErrorCategoryCallState ErrorCategory = "call_state"
	ErrorCategoryFatal     ErrorCategory = "fatal"
)

// InternalError is a tag for a failure raised inside the composite. It is also an error
// so calling services can return it directly.
type InternalError string

const (
	InternalErrorNone                      InternalError = ""
	InternalErrorDeviceManagerFailed       InternalError = "device_manager_failed"
	InternalErrorCallJoinConnectionFailed  InternalError = "call_join_connection_failed"
	InternalErrorCallTokenFailed           InternalError = "call_token_failed"
	InternalErrorCallJoinFailed            InternalError = "call_join_failed"
	InternalErrorCallEndFailed             InternalError = "call_end_failed"
	InternalErrorCallHoldFailed            InternalError = "call_hold_failed"
	InternalErrorCallResumeFailed          InternalError = "call_resume_failed"
	InternalErrorCallEvicted               InternalError = "call_evicted"
	InternalErrorCallDenied                InternalError = "call_denied"
	InternalErrorCallJoinFailedByMicPerm   InternalError = "call_join_failed_by_mic_permission"
	InternalErrorCameraSwitchFailed        InternalError = "camera_switch_failed"
	InternalErrorCameraOnFailed            InternalError = "camera_on_failed"
	InternalErrorNetworkConnectionNotAvail InternalError = "network_connection_not_available"
)

func (e InternalError) Error() string {
	return string(e)
}

// Category reports the cascade an error triggers when it surfaces in state.
func (e InternalError) Category() ErrorCategory {
	switch e {
	case InternalErrorDeviceManagerFailed,
		InternalErrorCallTokenFailed,
		InternalErrorCallJoinFailed,
		InternalErrorCallJoinFailedByMicPerm,
		InternalErrorNetworkConnectionNotAvail,
		InternalErrorCallEndFailed:
		return ErrorCategoryFatal
	case InternalErrorCallEvicted,
		InternalErrorCallDenied,
		InternalErrorCallJoinConnectionFailed:
		return ErrorCategoryCallState
	default:
		return ErrorCategoryNone
	}
}

func (e InternalError) IsFatal() bool {
	return e.Category() == ErrorCategoryFatal
}

// CompositeErrorCode is the public code reported to the host through OnError.
type CompositeErrorCode string

const (
	ErrorCodeNone                           CompositeErrorCode = ""
	ErrorCodeCallJoin                       CompositeErrorCode = "callJoin"
	ErrorCodeCallEnd                        CompositeErrorCode = "callEnd"
	ErrorCodeTokenExpired                   CompositeErrorCode = "tokenExpired"
	ErrorCodeCameraFailure                  CompositeErrorCode = "cameraFailure"
	ErrorCodeMicrophonePermissionNotGranted CompositeErrorCode = "microphonePermissionNotGranted"
	ErrorCodeNetworkConnectionNotAvailable  CompositeErrorCode = "networkConnectionNotAvailable"
	ErrorCodeCallEvicted                    CompositeErrorCode = "callEvicted"
	ErrorCodeCallDenied                     CompositeErrorCode = "callDenied"
)

// Code maps the tag to its public code. Errors the host does not need to see map to
// ErrorCodeNone.
func (e InternalError) Code() CompositeErrorCode {
	switch e {
	case InternalErrorDeviceManagerFailed, InternalErrorCameraOnFailed:
		return ErrorCodeCameraFailure
	case InternalErrorCallTokenFailed:
		return ErrorCodeTokenExpired
	case InternalErrorCallJoinFailed, InternalErrorCallJoinConnectionFailed:
		return ErrorCodeCallJoin
	case InternalErrorCallEndFailed:
		return ErrorCodeCallEnd
	case InternalErrorCallJoinFailedByMicPerm:
		return ErrorCodeMicrophonePermissionNotGranted
	case InternalErrorNetworkConnectionNotAvail:
		return ErrorCodeNetworkConnectionNotAvailable
	case InternalErrorCallEvicted:
		return ErrorCodeCallEvicted
	case InternalErrorCallDenied:
		return ErrorCodeCallDenied
	default:
		return ErrorCodeNone
	}
}

// CompositeError is the payload of the host OnError callback.
type CompositeError struct {
	Code CompositeErrorCode
	Err  error
}

func (e *CompositeError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CompositeError) Unwrap() error {
	return e.Err
}

// AsInternalError extracts the innermost InternalError tag wrapped by err.
func AsInternalError(err error) (InternalError, bool) {
	var tag InternalError
	if errors.As(err, &tag) && tag != InternalErrorNone {
		return tag, true
	}
	return InternalErrorNone, false
}

type LobbyErrorCode string

const (
	LobbyErrorDisabledByConfigurations     LobbyErrorCode = "lobby_disabled_by_configurations"
	LobbyErrorConversationTypeNotSupported LobbyErrorCode = "lobby_conversation_type_not_supported"
	LobbyErrorMeetingRoleNotAllowed        LobbyErrorCode = "lobby_meeting_role_not_allowed"
	LobbyErrorRemoveParticipantFailed      LobbyErrorCode = "remove_participant_operation_failure"
	LobbyErrorUnknown                      LobbyErrorCode = "unknown_error"
)

func (c LobbyErrorCode) Error() string {
	return string(c)
}

// AsLobbyErrorCode extracts a LobbyErrorCode from err, falling back to LobbyErrorUnknown.
func AsLobbyErrorCode(err error) LobbyErrorCode {
	var code LobbyErrorCode
	if errors.As(err, &code) && code != "" {
		return code
	}
	return LobbyErrorUnknown
}
