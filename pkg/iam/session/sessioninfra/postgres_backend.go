package sessioninfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/jmoiron/sqlx"
)

// PostgresBackend keeps sessions in the admin_sessions table. Used when
// Redis is unreachable.
type PostgresBackend struct {
	db *sqlx.DB
}

func NewPostgresBackend(db *sqlx.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

var _ session.Backend = (*PostgresBackend)(nil)

func (p *PostgresBackend) Name() string { return "postgres" }

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM admin_sessions
		WHERE key = $1 AND expires_at > NOW()
	`

	var value string
	if err := p.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return []byte(value), nil
}

func (p *PostgresBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	query := `
		INSERT INTO admin_sessions (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at
	`

	if _, err := p.db.ExecContext(ctx, query, key, string(value), time.Now().Add(ttl)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Remove(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Check(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// PurgeExpired drops sessions past their expiry and returns how many were removed
func (p *PostgresBackend) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := p.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return result.RowsAffected()
}
