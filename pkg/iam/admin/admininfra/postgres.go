package admininfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresAdminRepository implements admin.Repository using PostgreSQL
type PostgresAdminRepository struct {
	db *sqlx.DB
}

func NewPostgresAdminRepository(db *sqlx.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

var _ admin.Repository = (*PostgresAdminRepository)(nil)

// ============================================================================
// Database Models
// ============================================================================

type adminModel struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsApproved   bool      `db:"is_approved"`
	Permissions  []byte    `db:"permissions"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const adminColumns = `id, username, password_hash, role, is_approved, permissions, created_at, updated_at`

func (m *adminModel) toEntity() (*admin.AdminUser, error) {
	var perms admin.Permissions
	if len(m.Permissions) > 0 {
		if err := json.Unmarshal(m.Permissions, &perms); err != nil {
			return nil, admin.ErrStorage(err).WithDetail("admin_id", m.ID)
		}
	}

	return &admin.AdminUser{
		ID:           kernel.AdminID(m.ID),
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         admin.Role(m.Role),
		IsApproved:   m.IsApproved,
		Permissions:  perms,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func fromEntity(a *admin.AdminUser) (*adminModel, error) {
	perms, err := json.Marshal(a.Permissions)
	if err != nil {
		return nil, admin.ErrStorage(err)
	}

	return &adminModel{
		ID:           a.ID.String(),
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		IsApproved:   a.IsApproved,
		Permissions:  perms,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *PostgresAdminRepository) Create(ctx context.Context, a *admin.AdminUser) error {
	model, err := fromEntity(a)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO admin_users (` + adminColumns + `)
		VALUES (:id, :username, :password_hash, :role, :is_approved, :permissions, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return admin.ErrUsernameTaken().WithDetail("username", a.Username)
		}
		return admin.ErrStorage(err).WithDetail("op", "create")
	}
	return nil
}

func (r *PostgresAdminRepository) Update(ctx context.Context, a *admin.AdminUser) error {
	model, err := fromEntity(a)
	if err != nil {
		return err
	}

	query := `
		UPDATE admin_users SET
			password_hash = :password_hash,
			role = :role,
			is_approved = :is_approved,
			permissions = :permissions,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return admin.ErrStorage(err).WithDetail("op", "update")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return admin.ErrStorage(err).WithDetail("op", "update")
	}
	if rows == 0 {
		return admin.ErrAdminNotFound().WithDetail("admin_id", a.ID.String())
	}
	return nil
}

func (r *PostgresAdminRepository) GetByID(ctx context.Context, id kernel.AdminID) (*admin.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`

	var model adminModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrAdminNotFound().WithDetail("admin_id", id.String())
		}
		return nil, admin.ErrStorage(err).WithDetail("op", "get")
	}
	return model.toEntity()
}

func (r *PostgresAdminRepository) GetApprovedByUsername(ctx context.Context, username string) (*admin.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE username = $1 AND is_approved = TRUE`

	var model adminModel
	if err := r.db.GetContext(ctx, &model, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, admin.ErrAdminNotFound()
		}
		return nil, admin.ErrStorage(err).WithDetail("op", "get_by_username")
	}
	return model.toEntity()
}

func (r *PostgresAdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)`
	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, admin.ErrStorage(err).WithDetail("op", "exists")
	}
	return exists, nil
}

func (r *PostgresAdminRepository) List(ctx context.Context) ([]admin.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users ORDER BY created_at ASC`

	var models []adminModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, admin.ErrStorage(err).WithDetail("op", "list")
	}

	admins := make([]admin.AdminUser, 0, len(models))
	for _, m := range models {
		a, err := m.toEntity()
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, nil
}

func (r *PostgresAdminRepository) Delete(ctx context.Context, id kernel.AdminID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admin_users WHERE id = $1`, id.String())
	if err != nil {
		return admin.ErrStorage(err).WithDetail("op", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return admin.ErrStorage(err).WithDetail("op", "delete")
	}
	if rows == 0 {
		return admin.ErrAdminNotFound().WithDetail("admin_id", id.String())
	}
	return nil
}
