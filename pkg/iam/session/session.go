package session

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

const keyPrefix = "admin_session:"

// Key is the storage key of a session id on every backend
func Key(id kernel.SessionID) string {
	return keyPrefix + id.String()
}

// AdminSession is the cached identity of a logged in admin. Permission
// checks read it as loaded at login.
type AdminSession struct {
	SessionID kernel.SessionID `json:"session_id"`
	admin.AdminResponse
	IssuedAt time.Time `json:"issued_at"`
}

// NewAdminSession snapshots user into a session
func NewAdminSession(id kernel.SessionID, user *admin.AdminUser) *AdminSession {
	return &AdminSession{
		SessionID:     id,
		AdminResponse: user.ToResponse(),
		IssuedAt:      time.Now().UTC(),
	}
}

// Can reports whether the session grants capability on category
func (s *AdminSession) Can(category admin.Category, capability admin.Capability) bool {
	if s == nil {
		return false
	}
	return s.Permissions.Allows(category, capability)
}

// ErrKeyNotFound is returned by a Backend for absent or expired keys
var ErrKeyNotFound = errors.New("session: key not found")

// Backend is one storage tier of the session chain
type Backend interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error

	// Check reports whether the backend is usable right now
	Check(ctx context.Context) error
}

// Volatile is implemented by backends whose data does not survive a restart
type Volatile interface {
	Volatile() bool
}

func isVolatile(b Backend) bool {
	v, ok := b.(Volatile)
	return ok && v.Volatile()
}
