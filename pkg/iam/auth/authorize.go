package auth

import (
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
)

// Authorize is the permission gate: true only if the session explicitly
// grants capability on category
func Authorize(sess *session.AdminSession, category admin.Category, capability admin.Capability) bool {
	return sess.Can(category, capability)
}

// Require returns ErrPermissionDenied unless Authorize passes. Services call
// it before touching any repository.
func Require(sess *session.AdminSession, category admin.Category, capability admin.Capability) error {
	if Authorize(sess, category, capability) {
		return nil
	}
	return ErrPermissionDenied().
		WithDetail("required_scope", Scope(category, capability))
}
