package state

type PermissionStatus string

const (
	PermissionUnknown    PermissionStatus = "unknown"
	PermissionNotAsked   PermissionStatus = "not_asked"
	PermissionRequesting PermissionStatus = "requesting"
	PermissionGranted    PermissionStatus = "granted"
	PermissionDenied     PermissionStatus = "denied"
)

type PermissionState struct {
	Audio  PermissionStatus `json:"audio"`
	Camera PermissionStatus `json:"camera"`
}

func NewPermissionState() PermissionState {
	return PermissionState{Audio: PermissionUnknown, Camera: PermissionUnknown}
}
