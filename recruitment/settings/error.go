package settings

import (
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SETTINGS")

// Error codes
var (
	CodeRecipientNotFound = ErrRegistry.Register("RECIPIENT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Email recipient not found")
	CodeAgencyNotFound    = ErrRegistry.Register("AGENCY_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Agency not found")
	CodeOptionNotFound    = ErrRegistry.Register("OPTION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Option not found")
	CodeUnknownOptionKind = ErrRegistry.Register("UNKNOWN_OPTION_KIND", errx.TypeNotFound, http.StatusNotFound, "Unknown option list")
	CodeDuplicate         = ErrRegistry.Register("DUPLICATE", errx.TypeConflict, http.StatusConflict, "An entry with this value already exists")
	CodeInvalidRecipient  = ErrRegistry.Register("INVALID_RECIPIENT", errx.TypeValidation, http.StatusBadRequest, "Recipient needs a valid email address")
	CodeInvalidAgency     = ErrRegistry.Register("INVALID_AGENCY", errx.TypeValidation, http.StatusBadRequest, "Invalid agency data")
	CodeInvalidOption     = ErrRegistry.Register("INVALID_OPTION", errx.TypeValidation, http.StatusBadRequest, "Option needs a name")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeStorage           = ErrRegistry.Register("STORAGE", errx.TypeInternal, http.StatusInternalServerError, "Settings storage operation failed")
)

func ErrRecipientNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecipientNotFound)
}

func ErrAgencyNotFound() *errx.Error {
	return ErrRegistry.New(CodeAgencyNotFound)
}

func ErrOptionNotFound() *errx.Error {
	return ErrRegistry.New(CodeOptionNotFound)
}

func ErrUnknownOptionKind() *errx.Error {
	return ErrRegistry.New(CodeUnknownOptionKind)
}

func ErrDuplicate() *errx.Error {
	return ErrRegistry.New(CodeDuplicate)
}

func ErrInvalidRecipient() *errx.Error {
	return ErrRegistry.New(CodeInvalidRecipient)
}

func ErrInvalidAgency() *errx.Error {
	return ErrRegistry.New(CodeInvalidAgency)
}

func ErrInvalidOption() *errx.Error {
	return ErrRegistry.New(CodeInvalidOption)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrStorage(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStorage, cause)
}
