package adminsrv

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/google/uuid"
)

const minPasswordLength = 8

// AdminService manages admin accounts
type AdminService struct {
	repo      admin.Repository
	passwords admin.PasswordService
}

func NewAdminService(repo admin.Repository, passwords admin.PasswordService) *AdminService {
	return &AdminService{
		repo:      repo,
		passwords: passwords,
	}
}

// Register creates an unapproved viewer account. Public.
func (s *AdminService) Register(ctx context.Context, req admin.RegisterRequest) (*admin.AdminResponse, error) {
	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < 3 || n > 64 {
		return nil, admin.ErrInvalidUsername()
	}
	if len(req.Password) < minPasswordLength {
		return nil, admin.ErrWeakPassword()
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check username", errx.TypeInternal)
	}
	if exists {
		return nil, admin.ErrUsernameTaken().WithDetail("username", username)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, admin.ErrPasswordHashFailure(err)
	}

	user := admin.NewPendingAdmin(kernel.NewAdminID(uuid.NewString()), username, hash)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logx.Infof("admin account %s registered, awaiting approval", username)
	resp := user.ToResponse()
	return &resp, nil
}

// EnsureBootstrapAdmin creates an approved super admin if username is unused
func (s *AdminService) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, errx.Wrap(err, "failed to check bootstrap admin", errx.TypeInternal)
	}
	if exists {
		return false, nil
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return false, admin.ErrPasswordHashFailure(err)
	}

	user := admin.NewPendingAdmin(kernel.NewAdminID(uuid.NewString()), username, hash)
	_ = user.ChangeRole(admin.RoleSuperAdmin, nil)
	user.IsApproved = true

	if err := s.repo.Create(ctx, user); err != nil {
		return false, err
	}
	logx.Infof("bootstrap super admin %s created", username)
	return true, nil
}

// List splits every account into approved and pending
func (s *AdminService) List(ctx context.Context, sess *session.AdminSession) (*admin.ListAdminsResponse, error) {
	if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityView); err != nil {
		return nil, err
	}

	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &admin.ListAdminsResponse{
		Approved: []admin.AdminResponse{},
		Pending:  []admin.AdminResponse{},
	}
	for i := range admins {
		if admins[i].IsApproved {
			resp.Approved = append(resp.Approved, admins[i].ToResponse())
		} else {
			resp.Pending = append(resp.Pending, admins[i].ToResponse())
		}
	}
	return resp, nil
}

func (s *AdminService) Approve(ctx context.Context, sess *session.AdminSession, id kernel.AdminID) (*admin.AdminResponse, error) {
	if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityEdit); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := user.Approve(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	logx.Infof("admin %s approved by %s", user.Username, sess.Username)
	resp := user.ToResponse()
	return &resp, nil
}

// Reject deletes a pending registration
func (s *AdminService) Reject(ctx context.Context, sess *session.AdminSession, id kernel.AdminID) error {
	if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityEdit); err != nil {
		return err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsPending() {
		return admin.ErrNotPending().WithDetail("admin_id", id.String())
	}

	return s.repo.Delete(ctx, id)
}

func (s *AdminService) UpdateRole(ctx context.Context, sess *session.AdminSession, id kernel.AdminID, req admin.UpdateRoleRequest) (*admin.AdminResponse, error) {
	if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityEdit); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := user.ChangeRole(req.Role, req.Permissions); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// UpdatePermissions replaces the grant matrix. The target sees it after
// logging in again.
func (s *AdminService) UpdatePermissions(ctx context.Context, sess *session.AdminSession, id kernel.AdminID, perms admin.Permissions) (*admin.AdminResponse, error) {
	if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityEdit); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.SetPermissions(perms)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// UpdatePassword is allowed on one's own account or with admins.edit
func (s *AdminService) UpdatePassword(ctx context.Context, sess *session.AdminSession, id kernel.AdminID, password string) error {
	if sess == nil || sess.ID != id {
		if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityEdit); err != nil {
			return err
		}
	}
	if len(password) < minPasswordLength {
		return admin.ErrWeakPassword()
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return admin.ErrPasswordHashFailure(err)
	}
	user.SetPasswordHash(hash)

	return s.repo.Update(ctx, user)
}

// Delete removes an account other than the caller's own
func (s *AdminService) Delete(ctx context.Context, sess *session.AdminSession, id kernel.AdminID) error {
	if err := auth.Require(sess, admin.CategoryAdmins, admin.CapabilityDelete); err != nil {
		return err
	}
	if sess.ID == id {
		return admin.ErrCannotDeleteSelf()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logx.Infof("admin %s deleted by %s", id, sess.Username)
	return nil
}
