package notification

import (
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("NOTIFICATION")

// Error codes
var (
	CodeQueueFailed           = ErrRegistry.Register("QUEUE_FAILED", errx.TypeExternal, http.StatusServiceUnavailable, "Notification queue unavailable")
	CodeSendFailed            = ErrRegistry.Register("SEND_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to send notification email")
	CodeRecipientsUnavailable = ErrRegistry.Register("RECIPIENTS_UNAVAILABLE", errx.TypeInternal, http.StatusInternalServerError, "Could not resolve notification recipients")
	CodeInvalidMessage        = ErrRegistry.Register("INVALID_MESSAGE", errx.TypeValidation, http.StatusBadRequest, "Notification message is incomplete")
)

func ErrQueueFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeQueueFailed, cause)
}

func ErrSendFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeSendFailed, cause)
}

func ErrRecipientsUnavailable(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeRecipientsUnavailable, cause)
}

func ErrInvalidMessage() *errx.Error {
	return ErrRegistry.New(CodeInvalidMessage)
}
