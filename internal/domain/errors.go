package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText       = errors.New("task text cannot be empty")
	ErrInvalidFilter   = errors.New("invalid visibility filter")
	ErrUnknownAction   = errors.New("unknown action")
	ErrEmptyScript     = errors.New("script contains no actions")
	ErrInvalidScript   = errors.New("invalid action script")
	ErrConfigExists    = errors.New("config file already exists")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptySubmitKey  = errors.New("submit key cannot be empty")
	ErrLogDisabled     = errors.New("logging is disabled (set [log] file)")
	ErrNoLogFile       = errors.New("log file not found")
)
