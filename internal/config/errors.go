package config

import "errors"

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid config")
	// ErrLoad wraps failures reading the file or environment.
	ErrLoad = errors.New("config load failed")
)
