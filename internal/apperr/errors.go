package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalid            = errors.New("invalid input")
	ErrContentUnavailable = errors.New("content unavailable")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrServiceNotReady    = errors.New("service not ready")
	ErrSendFailed         = errors.New("send failed")
)
