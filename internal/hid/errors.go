package hid

import "errors"

// Error codes for domain errors.
const (
	ErrCodeInvalidBinding    = "invalid_binding"
	ErrCodeUnknownAction     = "unknown_action"
	ErrCodeBadRequest        = "bad_request"
	ErrCodeDeviceUnavailable = "device_unavailable"
)

var (
	ErrInvalidBinding = errors.New("invalid binding")
	ErrUnknownAction  = errors.New("unknown action")
	ErrBadRequest     = errors.New("bad request")
)

// DomainError wraps a code and human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func coreError(code, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

// NewError builds a DomainError with the given code and message.
func NewError(code, msg string) *DomainError {
	return coreError(code, msg)
}
