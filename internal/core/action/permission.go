package action

type AudioPermissionRequested struct{}
type AudioPermissionGranted struct{}
type AudioPermissionDenied struct{}
type AudioPermissionNotAsked struct{}
type CameraPermissionRequested struct{}
type CameraPermissionGranted struct{}
type CameraPermissionDenied struct{}
type CameraPermissionNotAsked struct{}

func (AudioPermissionRequested) Kind() Kind  { return "permission.audioPermissionRequested" }
func (AudioPermissionGranted) Kind() Kind    { return "permission.audioPermissionGranted" }
func (AudioPermissionDenied) Kind() Kind     { return "permission.audioPermissionDenied" }
func (AudioPermissionNotAsked) Kind() Kind   { return "permission.audioPermissionNotAsked" }
func (CameraPermissionRequested) Kind() Kind { return "permission.cameraPermissionRequested" }
func (CameraPermissionGranted) Kind() Kind   { return "permission.cameraPermissionGranted" }
func (CameraPermissionDenied) Kind() Kind    { return "permission.cameraPermissionDenied" }
func (CameraPermissionNotAsked) Kind() Kind  { return "permission.cameraPermissionNotAsked" }

func (AudioPermissionRequested) isAction()  {}
func (AudioPermissionGranted) isAction()    {}
func (AudioPermissionDenied) isAction()     {}
func (AudioPermissionNotAsked) isAction()   {}
func (CameraPermissionRequested) isAction() {}
func (CameraPermissionGranted) isAction()   {}
func (CameraPermissionDenied) isAction()    {}
func (CameraPermissionNotAsked) isAction()  {}
