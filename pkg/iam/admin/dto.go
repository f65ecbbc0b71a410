package admin

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// AdminResponse - AdminUser without credentials
type AdminResponse struct {
	ID          kernel.AdminID `json:"id"`
	Username    string         `json:"username"`
	Role        Role           `json:"role"`
	IsApproved  bool           `json:"is_approved"`
	Permissions Permissions    `json:"permissions"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// RegisterRequest - public self registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateRoleRequest - Permissions, when present, replace the role template
type UpdateRoleRequest struct {
	Role        Role         `json:"role"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type UpdatePermissionsRequest struct {
	Permissions Permissions `json:"permissions"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

// ListAdminsResponse splits accounts the way the management screen shows them
type ListAdminsResponse struct {
	Approved []AdminResponse `json:"approved"`
	Pending  []AdminResponse `json:"pending"`
}
