package fsxlocal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Abraxas-365/crewdesk/pkg/fsx"
)

// LocalFileSystem stores files under a directory on disk. Used in
// development when no bucket is available.
type LocalFileSystem struct {
	root    string
	baseURL string
}

// NewLocalFileSystem creates root if needed. baseURL is the address the
// directory is served from.
func NewLocalFileSystem(root, baseURL string) (*LocalFileSystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fsx.ErrStorage(err).WithDetail("root", root)
	}
	return &LocalFileSystem{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

var _ fsx.FileSystem = (*LocalFileSystem)(nil)

// Root is the directory files are written to
func (l *LocalFileSystem) Root() string {
	return l.root
}

func (l *LocalFileSystem) resolve(p string) (string, error) {
	clean := strings.TrimLeft(path.Clean("/"+p), "/")
	if clean == "" {
		return "", fsx.ErrInvalidPath().WithDetail("path", p)
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, l.mapErr(err, p)
	}
	return data, nil
}

func (l *LocalFileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, l.mapErr(err, p)
	}
	return f, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	return l.WriteFileStream(ctx, p, bytes.NewReader(data))
}

func (l *LocalFileSystem) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fsx.ErrStorage(err).WithDetail("path", p)
	}

	f, err := os.Create(full)
	if err != nil {
		return fsx.ErrStorage(err).WithDetail("path", p)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fsx.ErrStorage(err).WithDetail("path", p)
	}
	if err := f.Close(); err != nil {
		return fsx.ErrStorage(err).WithDetail("path", p)
	}
	return nil
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, p string) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return l.mapErr(err, p)
	}
	return nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, p string) (bool, error) {
	full, err := l.resolve(p)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fsx.ErrStorage(err).WithDetail("path", p)
}

func (l *LocalFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (l *LocalFileSystem) URL(p string) string {
	return l.baseURL + "/" + strings.TrimLeft(path.Clean("/"+p), "/")
}

func (l *LocalFileSystem) mapErr(err error, p string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fsx.ErrFileNotFound().WithDetail("path", p)
	}
	return fsx.ErrStorage(err).WithDetail("path", p)
}
