package admin

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

type Role string

const (
	RoleViewer     Role = "viewer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

type AdminUser struct {
	ID           kernel.AdminID `db:"id" json:"id"`
	Username     string         `db:"username" json:"username"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Role         Role           `db:"role" json:"role"`
	IsApproved   bool           `db:"is_approved" json:"is_approved"`
	Permissions  Permissions    `db:"permissions" json:"permissions"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// NewPendingAdmin builds a self-registered account awaiting approval
func NewPendingAdmin(id kernel.AdminID, username, passwordHash string) *AdminUser {
	now := time.Now()
	return &AdminUser{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleViewer,
		IsApproved:   false,
		Permissions:  TemplateFor(RoleViewer),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (a *AdminUser) IsPending() bool {
	return !a.IsApproved
}

// Approve lets the account log in
func (a *AdminUser) Approve() error {
	if a.IsApproved {
		return ErrAlreadyApproved().WithDetail("admin_id", a.ID.String())
	}
	a.IsApproved = true
	a.UpdatedAt = time.Now()
	return nil
}

// ChangeRole sets role and resets the grants to its template unless
// explicit permissions are given
func (a *AdminUser) ChangeRole(role Role, permissions *Permissions) error {
	if !role.IsValid() {
		return ErrInvalidRole().WithDetail("role", role)
	}
	a.Role = role
	if permissions != nil {
		a.Permissions = *permissions
	} else {
		a.Permissions = TemplateFor(role)
	}
	a.UpdatedAt = time.Now()
	return nil
}

func (a *AdminUser) SetPermissions(permissions Permissions) {
	a.Permissions = permissions
	a.UpdatedAt = time.Now()
}

func (a *AdminUser) SetPasswordHash(hash string) {
	a.PasswordHash = hash
	a.UpdatedAt = time.Now()
}

// ToResponse strips the password hash
func (a *AdminUser) ToResponse() AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Username:    a.Username,
		Role:        a.Role,
		IsApproved:  a.IsApproved,
		Permissions: a.Permissions,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
