package session

import (
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SESSION")

var (
	CodeSessionNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeAuthentication, http.StatusUnauthorized, "Session not found or expired")
	CodeStorage         = ErrRegistry.Register("STORAGE_UNAVAILABLE", errx.TypeExternal, http.StatusServiceUnavailable, "Session storage is unavailable in this context")
	CodeCorrupt         = ErrRegistry.Register("CORRUPT", errx.TypeInternal, http.StatusInternalServerError, "Stored session could not be decoded")
)

func ErrSessionNotFound() *errx.Error {
	return ErrRegistry.New(CodeSessionNotFound)
}

// ErrSessionStorage reports that no backend accepted and returned the session
func ErrSessionStorage() *errx.Error {
	return ErrRegistry.New(CodeStorage)
}

func ErrCorrupt(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeCorrupt, cause)
}
