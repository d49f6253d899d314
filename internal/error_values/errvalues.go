package errorvalues

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUserNotFound       = errors.New("user doesn't exists")
	ErrUnknownEventKind   = errors.New("unknown event kind")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotAllowed     = errors.New("user is not allowed")
	// Wake or sleep time unset, water reminders stay disarmed
	ErrNotConfigured = errors.New("reminders not configured")
)
