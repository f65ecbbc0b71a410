package settingsinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
	"github.com/jmoiron/sqlx"
)

// PostgresRecipientRepository implements settings.RecipientRepository
type PostgresRecipientRepository struct {
	db *sqlx.DB
}

func NewPostgresRecipientRepository(db *sqlx.DB) *PostgresRecipientRepository {
	return &PostgresRecipientRepository{db: db}
}

var _ settings.RecipientRepository = (*PostgresRecipientRepository)(nil)

// ============================================================================
// Database Model
// ============================================================================

type recipientModel struct {
	ID          string         `db:"id"`
	Email       string         `db:"email"`
	Name        string         `db:"name"`
	Nationality sql.NullString `db:"nationality"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
}

const recipientColumns = `id, email, name, nationality, is_active, created_at`

func (m *recipientModel) toEntity() settings.EmailRecipient {
	r := settings.EmailRecipient{
		ID:        kernel.RecipientID(m.ID),
		Email:     kernel.Email(m.Email),
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
	if m.Nationality.Valid {
		n := kernel.Nationality(m.Nationality.String)
		r.Nationality = &n
	}
	return r
}

func recipientFromEntity(r *settings.EmailRecipient) *recipientModel {
	m := &recipientModel{
		ID:        r.ID.String(),
		Email:     r.Email.String(),
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
	if r.Nationality != nil {
		m.Nationality = sql.NullString{String: r.Nationality.String(), Valid: true}
	}
	return m
}

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *PostgresRecipientRepository) Create(ctx context.Context, recipient *settings.EmailRecipient) error {
	query := `
		INSERT INTO email_recipients (` + recipientColumns + `)
		VALUES (:id, :email, :name, :nationality, :is_active, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, recipientFromEntity(recipient)); err != nil {
		return writeErr(err, "create_recipient")
	}
	return nil
}

func (r *PostgresRecipientRepository) Update(ctx context.Context, recipient *settings.EmailRecipient) error {
	query := `
		UPDATE email_recipients SET
			email = :email,
			name = :name,
			nationality = :nationality,
			is_active = :is_active
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, recipientFromEntity(recipient))
	if err != nil {
		return writeErr(err, "update_recipient")
	}
	ok, err := affected(result, "update_recipient")
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrRecipientNotFound().WithDetail("recipient_id", recipient.ID.String())
	}
	return nil
}

func (r *PostgresRecipientRepository) GetByID(ctx context.Context, id kernel.RecipientID) (*settings.EmailRecipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM email_recipients WHERE id = $1`

	var model recipientModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrRecipientNotFound().WithDetail("recipient_id", id.String())
		}
		return nil, settings.ErrStorage(err).WithDetail("operation", "get_recipient")
	}

	entity := model.toEntity()
	return &entity, nil
}

func (r *PostgresRecipientRepository) Delete(ctx context.Context, id kernel.RecipientID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM email_recipients WHERE id = $1`, id.String())
	if err != nil {
		return settings.ErrStorage(err).WithDetail("operation", "delete_recipient")
	}
	ok, err := affected(result, "delete_recipient")
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrRecipientNotFound().WithDetail("recipient_id", id.String())
	}
	return nil
}

func (r *PostgresRecipientRepository) List(ctx context.Context) ([]settings.EmailRecipient, error) {
	return r.selectRecipients(ctx, `SELECT `+recipientColumns+` FROM email_recipients ORDER BY name ASC, email ASC`)
}

func (r *PostgresRecipientRepository) ListActive(ctx context.Context) ([]settings.EmailRecipient, error) {
	return r.selectRecipients(ctx, `SELECT `+recipientColumns+` FROM email_recipients WHERE is_active = TRUE ORDER BY name ASC, email ASC`)
}

func (r *PostgresRecipientRepository) selectRecipients(ctx context.Context, query string) ([]settings.EmailRecipient, error) {
	var models []recipientModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, settings.ErrStorage(err).WithDetail("operation", "list_recipients")
	}

	recipients := make([]settings.EmailRecipient, 0, len(models))
	for i := range models {
		recipients = append(recipients, models[i].toEntity())
	}
	return recipients, nil
}
