package backend

import "errors"

var (
	errNoDevices        = errors.New("backend: at least one device is required")
	errActiveIndexRange = errors.New("backend: active index out of range")
)
