package adminsrv

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

type fakeRepo struct {
	mu     sync.Mutex
	admins map[kernel.AdminID]*admin.AdminUser
}

func newFakeRepo(users ...*admin.AdminUser) *fakeRepo {
	r := &fakeRepo{admins: make(map[kernel.AdminID]*admin.AdminUser)}
	for _, u := range users {
		r.admins[u.ID] = u
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, a *admin.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Username == a.Username {
			return admin.ErrUsernameTaken()
		}
	}
	r.admins[a.ID] = a
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, a *admin.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[a.ID]; !ok {
		return admin.ErrAdminNotFound()
	}
	r.admins[a.ID] = a
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id kernel.AdminID) (*admin.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.admins[id]; ok {
		return a, nil
	}
	return nil, admin.ErrAdminNotFound()
}

func (r *fakeRepo) GetApprovedByUsername(ctx context.Context, username string) (*admin.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username && a.IsApproved {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound()
}

func (r *fakeRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]admin.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]admin.AdminUser, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id kernel.AdminID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[id]; !ok {
		return admin.ErrAdminNotFound()
	}
	delete(r.admins, id)
	return nil
}

type plainPasswords struct{}

func (plainPasswords) HashPassword(password string) (string, error) { return "h:" + password, nil }
func (plainPasswords) VerifyPassword(hash, password string) bool    { return hash == "h:"+password }

func approved(id, username string, role admin.Role) *admin.AdminUser {
	u := admin.NewPendingAdmin(kernel.AdminID(id), username, "h:secret123")
	_ = u.ChangeRole(role, nil)
	u.IsApproved = true
	return u
}

func sessionFor(u *admin.AdminUser) *session.AdminSession {
	return session.NewAdminSession(kernel.SessionID("sess-"+u.ID.String()), u)
}

func TestRegister(t *testing.T) {
	repo := newFakeRepo(approved("a1", "taken", admin.RoleViewer))
	svc := NewAdminService(repo, plainPasswords{})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     admin.RegisterRequest
		wantErr errx.Code
	}{
		{"valid", admin.RegisterRequest{Username: "newbie", Password: "longenough"}, ""},
		{"short username", admin.RegisterRequest{Username: "ab", Password: "longenough"}, admin.CodeInvalidUsername},
		{"weak password", admin.RegisterRequest{Username: "another", Password: "short"}, admin.CodeWeakPassword},
		{"duplicate", admin.RegisterRequest{Username: "taken", Password: "longenough"}, admin.CodeUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Register(ctx, tt.req)
			if tt.wantErr != "" {
				if !errx.IsCode(err, tt.wantErr) {
					t.Fatalf("expected %s, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.IsApproved || resp.Role != admin.RoleViewer {
				t.Errorf("expected unapproved viewer, got %+v", resp)
			}
		})
	}
}

func TestRegister_CannotLoginUntilApproved(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	repo := newFakeRepo(super)
	svc := NewAdminService(repo, plainPasswords{})
	ctx := context.Background()

	resp, err := svc.Register(ctx, admin.RegisterRequest{Username: "crewing", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := repo.GetApprovedByUsername(ctx, "crewing"); err == nil {
		t.Fatal("pending account must not be loginable")
	}

	if _, err := svc.Approve(ctx, sessionFor(super), resp.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := repo.GetApprovedByUsername(ctx, "crewing"); err != nil {
		t.Fatalf("approved account should be loginable: %v", err)
	}

	if _, err := svc.Approve(ctx, sessionFor(super), resp.ID); !errx.IsCode(err, admin.CodeAlreadyApproved) {
		t.Errorf("expected ALREADY_APPROVED, got %v", err)
	}
}

func TestList_SplitsApprovedAndPending(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	pending := admin.NewPendingAdmin("p1", "pending", "h:x")
	svc := NewAdminService(newFakeRepo(super, pending), plainPasswords{})

	resp, err := svc.List(context.Background(), sessionFor(super))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Approved) != 1 || len(resp.Pending) != 1 {
		t.Fatalf("expected 1/1, got %d/%d", len(resp.Approved), len(resp.Pending))
	}
	if resp.Pending[0].Username != "pending" {
		t.Errorf("unexpected pending entry %+v", resp.Pending[0])
	}
}

func TestPermissionGates(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	plain := approved("a1", "plain", admin.RoleAdmin)
	target := admin.NewPendingAdmin("p1", "target", "h:x")
	svc := NewAdminService(newFakeRepo(super, plain, target), plainPasswords{})
	ctx := context.Background()
	sess := sessionFor(plain)

	if _, err := svc.List(ctx, sess); !errx.IsCode(err, auth.CodePermissionDenied) {
		t.Errorf("list: expected permission denied, got %v", err)
	}
	if _, err := svc.Approve(ctx, sess, target.ID); !errx.IsCode(err, auth.CodePermissionDenied) {
		t.Errorf("approve: expected permission denied, got %v", err)
	}
	if err := svc.Delete(ctx, sess, target.ID); !errx.IsCode(err, auth.CodePermissionDenied) {
		t.Errorf("delete: expected permission denied, got %v", err)
	}
	if _, err := svc.List(ctx, nil); !errx.IsCode(err, auth.CodePermissionDenied) {
		t.Errorf("nil session: expected permission denied, got %v", err)
	}
	if target.IsApproved {
		t.Error("denied approve must not change the account")
	}
}

func TestReject_OnlyPending(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	active := approved("a1", "active", admin.RoleViewer)
	pending := admin.NewPendingAdmin("p1", "pending", "h:x")
	repo := newFakeRepo(super, active, pending)
	svc := NewAdminService(repo, plainPasswords{})
	ctx := context.Background()

	if err := svc.Reject(ctx, sessionFor(super), active.ID); !errx.IsCode(err, admin.CodeNotPending) {
		t.Errorf("expected NOT_PENDING, got %v", err)
	}
	if err := svc.Reject(ctx, sessionFor(super), pending.ID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, pending.ID); !errx.IsCode(err, admin.CodeAdminNotFound) {
		t.Errorf("rejected account should be gone, got %v", err)
	}
}

func TestDelete_NeverSelf(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	svc := NewAdminService(newFakeRepo(super), plainPasswords{})

	err := svc.Delete(context.Background(), sessionFor(super), super.ID)
	if !errx.IsCode(err, admin.CodeCannotDeleteSelf) {
		t.Errorf("expected CANNOT_DELETE_SELF, got %v", err)
	}
}

func TestUpdateRole(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	viewer := approved("v1", "viewer", admin.RoleViewer)
	svc := NewAdminService(newFakeRepo(super, viewer), plainPasswords{})
	ctx := context.Background()

	resp, err := svc.UpdateRole(ctx, sessionFor(super), viewer.ID, admin.UpdateRoleRequest{Role: admin.RoleAdmin})
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if !resp.Permissions.Allows(admin.CategoryJobs, admin.CapabilityDelete) {
		t.Error("admin template should allow jobs.delete")
	}

	_, err = svc.UpdateRole(ctx, sessionFor(super), viewer.ID, admin.UpdateRoleRequest{Role: "captain"})
	if !errx.IsCode(err, admin.CodeInvalidRole) {
		t.Errorf("expected INVALID_ROLE, got %v", err)
	}
}

func TestUpdatePermissions_VisibleToNextSession(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	viewer := approved("v1", "viewer", admin.RoleViewer)
	repo := newFakeRepo(super, viewer)
	svc := NewAdminService(repo, plainPasswords{})
	ctx := context.Background()

	before := sessionFor(viewer)

	perms := admin.Permissions{Settings: admin.CapabilitySet{View: true, Edit: true}}
	if _, err := svc.UpdatePermissions(ctx, sessionFor(super), viewer.ID, perms); err != nil {
		t.Fatalf("update permissions failed: %v", err)
	}

	if before.Can(admin.CategorySettings, admin.CapabilityEdit) {
		t.Error("existing session must keep its cached permissions")
	}

	reloaded, _ := repo.GetByID(ctx, viewer.ID)
	if !sessionFor(reloaded).Can(admin.CategorySettings, admin.CapabilityEdit) {
		t.Error("new session should see settings.edit")
	}
	if sessionFor(reloaded).Can(admin.CategoryApplications, admin.CapabilityView) {
		t.Error("replaced matrix should drop applications.view")
	}
}

func TestUpdatePassword(t *testing.T) {
	super := approved("root", "root", admin.RoleSuperAdmin)
	viewer := approved("v1", "viewer", admin.RoleViewer)
	other := approved("v2", "other", admin.RoleViewer)
	repo := newFakeRepo(super, viewer, other)
	svc := NewAdminService(repo, plainPasswords{})
	ctx := context.Background()

	if err := svc.UpdatePassword(ctx, sessionFor(viewer), viewer.ID, "newpassword"); err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if viewer.PasswordHash != "h:newpassword" {
		t.Errorf("hash not updated: %s", viewer.PasswordHash)
	}

	if err := svc.UpdatePassword(ctx, sessionFor(viewer), other.ID, "newpassword"); !errx.IsCode(err, auth.CodePermissionDenied) {
		t.Errorf("expected permission denied for another account, got %v", err)
	}
	if err := svc.UpdatePassword(ctx, sessionFor(super), other.ID, "tiny"); !errx.IsCode(err, admin.CodeWeakPassword) {
		t.Errorf("expected WEAK_PASSWORD, got %v", err)
	}
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewAdminService(repo, plainPasswords{})
	ctx := context.Background()

	created, err := svc.EnsureBootstrapAdmin(ctx, "root", "rootpassword")
	if err != nil || !created {
		t.Fatalf("expected creation, got %v %v", created, err)
	}

	u, err := repo.GetApprovedByUsername(ctx, "root")
	if err != nil {
		t.Fatalf("bootstrap admin not loginable: %v", err)
	}
	if u.Role != admin.RoleSuperAdmin {
		t.Errorf("expected super_admin, got %s", u.Role)
	}

	created, err = svc.EnsureBootstrapAdmin(ctx, "root", "rootpassword")
	if err != nil || created {
		t.Errorf("second call should be a no-op, got %v %v", created, err)
	}
}

func TestRegister_StorageFailure(t *testing.T) {
	svc := NewAdminService(failingRepo{newFakeRepo()}, plainPasswords{})
	_, err := svc.Register(context.Background(), admin.RegisterRequest{Username: "someone", Password: "longenough"})
	if err == nil || !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
}

var errBoom = errors.New("boom")

type failingRepo struct{ *fakeRepo }

func (failingRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, admin.ErrStorage(errBoom)
}
