package camctl

import "errors"

var (
	ErrManagerClosed      = errors.New("camera manager is closed")
	ErrCameraClosed       = errors.New("camera is closed")
	ErrCameraNotFound     = errors.New("camera not found")
	ErrControlUnsupported = errors.New("control not supported by camera")
)
