package admin

import (
	"context"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

type Repository interface {
	// Create inserts a new admin; a duplicate username yields ErrUsernameTaken
	Create(ctx context.Context, admin *AdminUser) error

	// Update persists role, approval, permissions and password hash
	Update(ctx context.Context, admin *AdminUser) error

	GetByID(ctx context.Context, id kernel.AdminID) (*AdminUser, error)

	// GetApprovedByUsername only returns accounts allowed to log in
	GetApprovedByUsername(ctx context.Context, username string) (*AdminUser, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// List returns every account ordered by creation time
	List(ctx context.Context) ([]AdminUser, error)

	Delete(ctx context.Context, id kernel.AdminID) error
}

// PasswordService hashes and verifies admin passwords
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) bool
}
