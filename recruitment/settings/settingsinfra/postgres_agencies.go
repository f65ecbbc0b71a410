package settingsinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
	"github.com/jmoiron/sqlx"
)

// PostgresAgencyRepository implements settings.AgencyRepository. The
// entity's db tags match the agencies table, so no separate model is needed.
type PostgresAgencyRepository struct {
	db *sqlx.DB
}

func NewPostgresAgencyRepository(db *sqlx.DB) *PostgresAgencyRepository {
	return &PostgresAgencyRepository{db: db}
}

var _ settings.AgencyRepository = (*PostgresAgencyRepository)(nil)

const agencyColumns = `id, name, contact_person, email, phone, address, is_active, created_at`

func (r *PostgresAgencyRepository) Create(ctx context.Context, agency *settings.Agency) error {
	query := `
		INSERT INTO agencies (` + agencyColumns + `)
		VALUES (:id, :name, :contact_person, :email, :phone, :address, :is_active, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, agency); err != nil {
		return writeErr(err, "create_agency")
	}
	return nil
}

func (r *PostgresAgencyRepository) Update(ctx context.Context, agency *settings.Agency) error {
	query := `
		UPDATE agencies SET
			name = :name,
			contact_person = :contact_person,
			email = :email,
			phone = :phone,
			address = :address,
			is_active = :is_active
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, agency)
	if err != nil {
		return writeErr(err, "update_agency")
	}
	ok, err := affected(result, "update_agency")
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrAgencyNotFound().WithDetail("agency_id", agency.ID.String())
	}
	return nil
}

func (r *PostgresAgencyRepository) GetByID(ctx context.Context, id kernel.AgencyID) (*settings.Agency, error) {
	var agency settings.Agency
	if err := r.db.GetContext(ctx, &agency, `SELECT `+agencyColumns+` FROM agencies WHERE id = $1`, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrAgencyNotFound().WithDetail("agency_id", id.String())
		}
		return nil, settings.ErrStorage(err).WithDetail("operation", "get_agency")
	}
	return &agency, nil
}

// Delete removes the agency. Applications referencing it keep a dangling id.
func (r *PostgresAgencyRepository) Delete(ctx context.Context, id kernel.AgencyID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM agencies WHERE id = $1`, id.String())
	if err != nil {
		return settings.ErrStorage(err).WithDetail("operation", "delete_agency")
	}
	ok, err := affected(result, "delete_agency")
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrAgencyNotFound().WithDetail("agency_id", id.String())
	}
	return nil
}

func (r *PostgresAgencyRepository) List(ctx context.Context) ([]settings.Agency, error) {
	return r.selectAgencies(ctx, `SELECT `+agencyColumns+` FROM agencies ORDER BY name ASC`)
}

func (r *PostgresAgencyRepository) ListActive(ctx context.Context) ([]settings.Agency, error) {
	return r.selectAgencies(ctx, `SELECT `+agencyColumns+` FROM agencies WHERE is_active = TRUE ORDER BY name ASC`)
}

func (r *PostgresAgencyRepository) selectAgencies(ctx context.Context, query string) ([]settings.Agency, error) {
	agencies := []settings.Agency{}
	if err := r.db.SelectContext(ctx, &agencies, query); err != nil {
		return nil, settings.ErrStorage(err).WithDetail("operation", "list_agencies")
	}
	return agencies, nil
}
