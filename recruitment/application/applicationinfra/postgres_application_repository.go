package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

var _ application.Repository = (*PostgresApplicationRepository)(nil)

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID              string         `db:"id"`
	FullName        string         `db:"full_name"`
	Email           string         `db:"email"`
	Phone           string         `db:"phone"`
	DateOfBirth     time.Time      `db:"date_of_birth"`
	Nationality     string         `db:"nationality"`
	Position        string         `db:"position"`
	YearsExperience int            `db:"years_experience"`
	ExpectedSalary  float64        `db:"expected_salary"`
	SalaryCurrency  string         `db:"salary_currency"`
	Certificates    string         `db:"certificates"`
	VesselHistory   string         `db:"vessel_history"`
	CoverLetter     string         `db:"cover_letter"`
	JobID           sql.NullString `db:"job_id"`
	JobTitle        string         `db:"job_title"`
	AgencyID        sql.NullString `db:"agency_id"`
	ResumeFilename  string         `db:"resume_filename"`
	ResumePath      string         `db:"resume_path"`
	ResumeURL       string         `db:"resume_url"`
	ResumeAttached  bool           `db:"resume_attached"`
	Status          string         `db:"status"`
	EmailSent       bool           `db:"email_sent"`
	EmailSentAt     *time.Time     `db:"email_sent_at"`
	EmailRecipients pq.StringArray `db:"email_recipients"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

const applicationColumns = `
	id, full_name, email, phone, date_of_birth, nationality, position,
	years_experience, expected_salary, salary_currency, certificates,
	vessel_history, cover_letter, job_id, job_title, agency_id,
	resume_filename, resume_path, resume_url, resume_attached, status,
	email_sent, email_sent_at, email_recipients, created_at, updated_at
`

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	var jobID *kernel.JobID
	if m.JobID.Valid {
		id := kernel.JobID(m.JobID.String)
		jobID = &id
	}

	var agencyID *kernel.AgencyID
	if m.AgencyID.Valid {
		id := kernel.AgencyID(m.AgencyID.String)
		agencyID = &id
	}

	recipients := []string(m.EmailRecipients)
	if recipients == nil {
		recipients = []string{}
	}

	return &application.Application{
		ID:              kernel.ApplicationID(m.ID),
		FullName:        m.FullName,
		Email:           kernel.Email(m.Email),
		Phone:           kernel.Phone(m.Phone),
		DateOfBirth:     m.DateOfBirth,
		Nationality:     kernel.Nationality(m.Nationality),
		Position:        m.Position,
		YearsExperience: m.YearsExperience,
		ExpectedSalary:  m.ExpectedSalary,
		SalaryCurrency:  m.SalaryCurrency,
		Certificates:    m.Certificates,
		VesselHistory:   m.VesselHistory,
		CoverLetter:     m.CoverLetter,
		JobID:           jobID,
		JobTitle:        kernel.JobTitle(m.JobTitle),
		AgencyID:        agencyID,
		ResumeFilename:  m.ResumeFilename,
		ResumePath:      m.ResumePath,
		ResumeURL:       kernel.BucketURL(m.ResumeURL),
		ResumeAttached:  m.ResumeAttached,
		Status:          application.ApplicationStatus(m.Status),
		EmailSent:       m.EmailSent,
		EmailSentAt:     m.EmailSentAt,
		EmailRecipients: recipients,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(app *application.Application) *applicationModel {
	var jobID sql.NullString
	if app.JobID != nil {
		jobID = sql.NullString{String: app.JobID.String(), Valid: true}
	}

	var agencyID sql.NullString
	if app.AgencyID != nil {
		agencyID = sql.NullString{String: app.AgencyID.String(), Valid: true}
	}

	recipients := pq.StringArray(app.EmailRecipients)
	if recipients == nil {
		recipients = pq.StringArray{}
	}

	return &applicationModel{
		ID:              app.ID.String(),
		FullName:        app.FullName,
		Email:           app.Email.String(),
		Phone:           app.Phone.String(),
		DateOfBirth:     app.DateOfBirth,
		Nationality:     app.Nationality.String(),
		Position:        app.Position,
		YearsExperience: app.YearsExperience,
		ExpectedSalary:  app.ExpectedSalary,
		SalaryCurrency:  app.SalaryCurrency,
		Certificates:    app.Certificates,
		VesselHistory:   app.VesselHistory,
		CoverLetter:     app.CoverLetter,
		JobID:           jobID,
		JobTitle:        string(app.JobTitle),
		AgencyID:        agencyID,
		ResumeFilename:  app.ResumeFilename,
		ResumePath:      app.ResumePath,
		ResumeURL:       string(app.ResumeURL),
		ResumeAttached:  app.ResumeAttached,
		Status:          string(app.Status),
		EmailSent:       app.EmailSent,
		EmailSentAt:     app.EmailSentAt,
		EmailRecipients: recipients,
		CreatedAt:       app.CreatedAt,
		UpdatedAt:       app.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (
			id, full_name, email, phone, date_of_birth, nationality, position,
			years_experience, expected_salary, salary_currency, certificates,
			vessel_history, cover_letter, job_id, job_title, agency_id,
			resume_filename, resume_path, resume_url, resume_attached, status,
			email_sent, email_sent_at, email_recipients, created_at, updated_at
		) VALUES (
			:id, :full_name, :email, :phone, :date_of_birth, :nationality, :position,
			:years_experience, :expected_salary, :salary_currency, :certificates,
			:vessel_history, :cover_letter, :job_id, :job_title, :agency_id,
			:resume_filename, :resume_path, :resume_url, :resume_attached, :status,
			:email_sent, :email_sent_at, :email_recipients, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(app)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return application.ErrValidationFailed([]string{"job_id", "agency_id"}).
				WithDetail("constraint", pqErr.Constraint)
		}
		return application.ErrStorage(err).WithDetail("operation", "create")
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, application.ErrStorage(err).WithDetail("operation", "get")
	}

	return model.toEntity(), nil
}

// List retrieves all applications, newest first
func (r *PostgresApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY created_at DESC`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, application.ErrStorage(err).WithDetail("operation", "list")
	}

	// Convert to entities
	apps := make([]application.Application, 0, len(models))
	for i := range models {
		apps = append(apps, *models[i].toEntity())
	}
	return apps, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`
	return r.execOne(ctx, "update_status", id, query, string(status), id.String())
}

func (r *PostgresApplicationRepository) UpdateResume(ctx context.Context, id kernel.ApplicationID, path, filename string, url kernel.BucketURL) error {
	query := `
		UPDATE applications
		SET resume_path = $1, resume_filename = $2, resume_url = $3, updated_at = NOW()
		WHERE id = $4
	`
	return r.execOne(ctx, "update_resume", id, query, path, filename, string(url), id.String())
}

func (r *PostgresApplicationRepository) UpdateNotification(ctx context.Context, id kernel.ApplicationID, audit application.NotificationAudit) error {
	recipients := pq.StringArray(audit.EmailRecipients)
	if recipients == nil {
		recipients = pq.StringArray{}
	}

	query := `
		UPDATE applications
		SET email_sent = $1, email_sent_at = $2, email_recipients = $3,
			resume_attached = $4, updated_at = NOW()
		WHERE id = $5
	`
	return r.execOne(ctx, "update_notification", id, query,
		audit.EmailSent, audit.EmailSentAt, recipients, audit.ResumeAttached, id.String())
}

// Delete deletes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	return r.execOne(ctx, "delete", id, `DELETE FROM applications WHERE id = $1`, id.String())
}

// DeleteMany runs one statement for the whole batch
func (r *PostgresApplicationRepository) DeleteMany(ctx context.Context, ids []kernel.ApplicationID) ([]kernel.ApplicationID, error) {
	if len(ids) == 0 {
		return []kernel.ApplicationID{}, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	var deleted []string
	query := `DELETE FROM applications WHERE id = ANY($1) RETURNING id`
	if err := r.db.SelectContext(ctx, &deleted, query, pq.Array(raw)); err != nil {
		return nil, application.ErrStorage(err).WithDetail("operation", "delete_many")
	}

	out := make([]kernel.ApplicationID, len(deleted))
	for i, id := range deleted {
		out[i] = kernel.ApplicationID(id)
	}
	return out, nil
}

// execOne runs a statement that must touch exactly the row id
func (r *PostgresApplicationRepository) execOne(ctx context.Context, op string, id kernel.ApplicationID, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return application.ErrStorage(err).WithDetail("operation", op)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return application.ErrStorage(err).WithDetail("operation", op)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	return nil
}
