package job

import (
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeJobAlreadyClosed = ErrRegistry.Register("ALREADY_CLOSED", errx.TypeBusiness, http.StatusConflict, "Job is already closed")
	CodeJobAlreadyActive = ErrRegistry.Register("ALREADY_ACTIVE", errx.TypeBusiness, http.StatusConflict, "Job is already active")
	CodeInvalidJob       = ErrRegistry.Register("INVALID_JOB", errx.TypeValidation, http.StatusBadRequest, "Job is missing required fields")
	CodeInvalidStatus    = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid job status")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeStorage          = ErrRegistry.Register("STORAGE", errx.TypeInternal, http.StatusInternalServerError, "Job storage operation failed")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobAlreadyClosed() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyClosed)
}

func ErrJobAlreadyActive() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyActive)
}

func ErrInvalidJob() *errx.Error {
	return ErrRegistry.New(CodeInvalidJob)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrStorage(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStorage, cause)
}
