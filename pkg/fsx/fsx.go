package fsx

import (
	"context"
	"io"
	"net/http"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
)

// FileReader is the read side of a FileSystem
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSystem abstracts blob storage. Paths are slash separated and relative
// to the implementation's root or prefix.
type FileSystem interface {
	FileReader

	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileStream(ctx context.Context, path string, r io.Reader) error
	DeleteFile(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// Join builds a storage path from elements
	Join(elem ...string) string

	// URL returns the durable public address of path
	URL(path string) string
}

var ErrRegistry = errx.NewRegistry("FSX")

var (
	CodeFileNotFound = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "File not found")
	CodeInvalidPath  = ErrRegistry.Register("INVALID_PATH", errx.TypeValidation, http.StatusBadRequest, "Invalid file path")
	CodeStorage      = ErrRegistry.Register("STORAGE", errx.TypeExternal, http.StatusBadGateway, "Blob storage operation failed")
)

func ErrFileNotFound() *errx.Error {
	return ErrRegistry.New(CodeFileNotFound)
}

func ErrInvalidPath() *errx.Error {
	return ErrRegistry.New(CodeInvalidPath)
}

func ErrStorage(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStorage, cause)
}
