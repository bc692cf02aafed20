package domain

type CaptionsType string

const (
	CaptionsTypeNone          CaptionsType = "none"
	CaptionsTypeCommunication CaptionsType = "communication"
	CaptionsTypeTeams         CaptionsType = "teams"
)

type CaptionsErrorCode string

const (
	CaptionsErrorNone                             CaptionsErrorCode = ""
	CaptionsStartFailedCallNotConnected           CaptionsErrorCode = "captions_start_failed_call_not_connected"
	CaptionsStartFailedSpokenLanguageNotSupported CaptionsErrorCode = "captions_start_failed_spoken_language_not_supported"
	CaptionsNotActive                             CaptionsErrorCode = "captions_not_active"
	CaptionsPolicyDisabled                        CaptionsErrorCode = "captions_policy_disabled"
	CaptionsRequestFailed                         CaptionsErrorCode = "captions_request_failed"
)

func (c CaptionsErrorCode) Error() string {
	return string(c)
}
