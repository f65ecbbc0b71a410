package settingsinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
	"github.com/jmoiron/sqlx"
)

// PostgresOptionRepository implements settings.OptionRepository. Each kind
// lives in its own table named after the kind.
type PostgresOptionRepository struct {
	db *sqlx.DB
}

func NewPostgresOptionRepository(db *sqlx.DB) *PostgresOptionRepository {
	return &PostgresOptionRepository{db: db}
}

var _ settings.OptionRepository = (*PostgresOptionRepository)(nil)

// table resolves kind to a table name. Only known kinds pass, so the name
// is safe to interpolate.
func table(kind settings.OptionKind) (string, error) {
	if !kind.IsValid() {
		return "", settings.ErrUnknownOptionKind().WithDetail("kind", kind)
	}
	return string(kind), nil
}

func (r *PostgresOptionRepository) Create(ctx context.Context, o *settings.Option) error {
	t, err := table(o.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, name, created_at) VALUES (:id, :name, :created_at)`, t)
	if _, err := r.db.NamedExecContext(ctx, query, o); err != nil {
		return writeErr(err, "create_option").WithDetail("kind", o.Kind)
	}
	return nil
}

func (r *PostgresOptionRepository) Rename(ctx context.Context, kind settings.OptionKind, id kernel.OptionID, name string) error {
	t, err := table(kind)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`UPDATE %s SET name = $1 WHERE id = $2`, t), name, id.String())
	if err != nil {
		return writeErr(err, "rename_option").WithDetail("kind", kind)
	}
	ok, err := affected(result, "rename_option")
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrOptionNotFound().WithDetail("kind", kind).WithDetail("option_id", id.String())
	}
	return nil
}

func (r *PostgresOptionRepository) GetByID(ctx context.Context, kind settings.OptionKind, id kernel.OptionID) (*settings.Option, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}

	var o settings.Option
	if err := r.db.GetContext(ctx, &o, fmt.Sprintf(`SELECT id, name, created_at FROM %s WHERE id = $1`, t), id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrOptionNotFound().WithDetail("kind", kind).WithDetail("option_id", id.String())
		}
		return nil, settings.ErrStorage(err).WithDetail("operation", "get_option")
	}
	o.Kind = kind
	return &o, nil
}

func (r *PostgresOptionRepository) Delete(ctx context.Context, kind settings.OptionKind, id kernel.OptionID) error {
	t, err := table(kind)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t), id.String())
	if err != nil {
		return settings.ErrStorage(err).WithDetail("operation", "delete_option")
	}
	ok, err := affected(result, "delete_option")
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrOptionNotFound().WithDetail("kind", kind).WithDetail("option_id", id.String())
	}
	return nil
}

func (r *PostgresOptionRepository) List(ctx context.Context, kind settings.OptionKind) ([]settings.Option, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}

	options := []settings.Option{}
	if err := r.db.SelectContext(ctx, &options, fmt.Sprintf(`SELECT id, name, created_at FROM %s ORDER BY name ASC`, t)); err != nil {
		return nil, settings.ErrStorage(err).WithDetail("operation", "list_options").WithDetail("kind", kind)
	}
	for i := range options {
		options[i].Kind = kind
	}
	return options, nil
}
