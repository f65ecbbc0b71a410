package admin

import (
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ADMIN")

// Error codes
var (
	CodeAdminNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Admin not found")
	CodeUsernameTaken       = ErrRegistry.Register("USERNAME_TAKEN", errx.TypeConflict, http.StatusConflict, "Username is already taken")
	CodeAlreadyApproved     = ErrRegistry.Register("ALREADY_APPROVED", errx.TypeBusiness, http.StatusConflict, "Admin is already approved")
	CodeNotPending          = ErrRegistry.Register("NOT_PENDING", errx.TypeBusiness, http.StatusConflict, "Only pending accounts can be rejected")
	CodeInvalidRole         = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Invalid role")
	CodeCannotDeleteSelf    = ErrRegistry.Register("CANNOT_DELETE_SELF", errx.TypeBusiness, http.StatusForbidden, "You cannot delete your own account")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeWeakPassword        = ErrRegistry.Register("WEAK_PASSWORD", errx.TypeValidation, http.StatusBadRequest, "Password must be at least 8 characters")
	CodeInvalidUsername     = ErrRegistry.Register("INVALID_USERNAME", errx.TypeValidation, http.StatusBadRequest, "Username must be 3 to 64 characters")
	CodeStorage             = ErrRegistry.Register("STORAGE", errx.TypeInternal, http.StatusInternalServerError, "Admin storage operation failed")
	CodePasswordHashFailure = ErrRegistry.Register("PASSWORD_HASH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to hash password")
)

// Helper functions
func ErrAdminNotFound() *errx.Error {
	return ErrRegistry.New(CodeAdminNotFound)
}

func ErrUsernameTaken() *errx.Error {
	return ErrRegistry.New(CodeUsernameTaken)
}

func ErrAlreadyApproved() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApproved)
}

func ErrNotPending() *errx.Error {
	return ErrRegistry.New(CodeNotPending)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}

func ErrCannotDeleteSelf() *errx.Error {
	return ErrRegistry.New(CodeCannotDeleteSelf)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrWeakPassword() *errx.Error {
	return ErrRegistry.New(CodeWeakPassword)
}

func ErrInvalidUsername() *errx.Error {
	return ErrRegistry.New(CodeInvalidUsername)
}

func ErrStorage(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStorage, cause)
}

func ErrPasswordHashFailure(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodePasswordHashFailure, cause)
}
