package application

import (
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeValidationFailed    = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Required fields are missing or invalid")
	CodeInvalidAttachment   = ErrRegistry.Register("INVALID_ATTACHMENT", errx.TypeValidation, http.StatusBadRequest, "Resume must be a PDF, DOC or DOCX file of at most 5 MB")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid application status")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeResumeNotFound      = ErrRegistry.Register("RESUME_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeNotificationFailed  = ErrRegistry.Register("NOTIFICATION_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to queue notification")
	CodeStorage             = ErrRegistry.Register("STORAGE", errx.TypeInternal, http.StatusInternalServerError, "Application storage operation failed")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

// ErrValidationFailed lists the offending fields under missing_fields
func ErrValidationFailed(missing []string) *errx.Error {
	return ErrRegistry.New(CodeValidationFailed).WithDetail("missing_fields", missing)
}

// ErrInvalidFields reports fields that are present but malformed
func ErrInvalidFields(invalid []string) *errx.Error {
	return ErrRegistry.New(CodeValidationFailed).WithDetail("invalid_fields", invalid)
}

func ErrInvalidAttachment() *errx.Error {
	return ErrRegistry.New(CodeInvalidAttachment)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrNotificationFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeNotificationFailed, cause)
}

func ErrStorage(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStorage, cause)
}
