package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

var _ job.Repository = (*PostgresJobRepository)(nil)

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID               string          `db:"id"`
	Title            string          `db:"title"`
	Positions        pq.StringArray  `db:"positions"`
	VesselType       string          `db:"vessel_type"`
	Location         string          `db:"location"`
	SalaryRange      string          `db:"salary_range"`
	Requirements     json.RawMessage `db:"requirements"`
	Responsibilities json.RawMessage `db:"responsibilities"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

const jobColumns = `
	id, title, positions, vessel_type, location, salary_range,
	requirements, responsibilities, status, created_at, updated_at
`

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var requirements []string
	if len(m.Requirements) > 0 {
		if err := json.Unmarshal(m.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}

	var responsibilities []string
	if len(m.Responsibilities) > 0 {
		if err := json.Unmarshal(m.Responsibilities, &responsibilities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal responsibilities: %w", err)
		}
	}

	return &job.Job{
		ID:               kernel.JobID(m.ID),
		Title:            kernel.JobTitle(m.Title),
		Positions:        []string(m.Positions),
		VesselType:       m.VesselType,
		Location:         m.Location,
		SalaryRange:      m.SalaryRange,
		Requirements:     requirements,
		Responsibilities: responsibilities,
		Status:           job.JobStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	requirements, err := json.Marshal(nonNil(j.Requirements))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	responsibilities, err := json.Marshal(nonNil(j.Responsibilities))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal responsibilities: %w", err)
	}

	return &jobModel{
		ID:               j.ID.String(),
		Title:            string(j.Title),
		Positions:        pq.StringArray(j.Positions),
		VesselType:       j.VesselType,
		Location:         j.Location,
		SalaryRange:      j.SalaryRange,
		Requirements:     requirements,
		Responsibilities: responsibilities,
		Status:           string(j.Status),
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return job.ErrStorage(err)
	}

	query := `
		INSERT INTO job_postings (
			id, title, positions, vessel_type, location, salary_range,
			requirements, responsibilities, status, created_at, updated_at
		) VALUES (
			:id, :title, :positions, :vessel_type, :location, :salary_range,
			:requirements, :responsibilities, :status, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return job.ErrStorage(err).WithDetail("operation", "create")
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return job.ErrStorage(err)
	}

	query := `
		UPDATE job_postings SET
			title = :title,
			positions = :positions,
			vessel_type = :vessel_type,
			location = :location,
			salary_range = :salary_range,
			requirements = :requirements,
			responsibilities = :responsibilities,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return job.ErrStorage(err).WithDetail("operation", "update")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return job.ErrStorage(err).WithDetail("operation", "update")
	}

	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", jobEntity.ID.String())
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`

	var model jobModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return nil, job.ErrStorage(err).WithDetail("operation", "get")
	}

	entity, err := model.toEntity()
	if err != nil {
		return nil, job.ErrStorage(err).WithDetail("job_id", id.String())
	}
	return entity, nil
}

// Delete detaches historical applications and removes the job
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return job.ErrStorage(err).WithDetail("operation", "begin_transaction")
	}
	defer tx.Rollback()

	// applications keep job_title, only the reference goes
	if _, err := tx.ExecContext(ctx, `UPDATE applications SET job_id = NULL WHERE job_id = $1`, id.String()); err != nil {
		return job.ErrStorage(err).WithDetail("operation", "detach_applications")
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id.String())
	if err != nil {
		return job.ErrStorage(err).WithDetail("operation", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return job.ErrStorage(err).WithDetail("operation", "delete")
	}
	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	if err := tx.Commit(); err != nil {
		return job.ErrStorage(err).WithDetail("operation", "commit")
	}
	return nil
}

// List retrieves all jobs
func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings ORDER BY created_at DESC`
	return r.selectJobs(ctx, query)
}

// ListActive retrieves jobs accepting applications
func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE status = $1 ORDER BY created_at DESC`
	return r.selectJobs(ctx, query, string(job.JobStatusActive))
}

// CountApplications counts applications still linked to the job
func (r *PostgresJobRepository) CountApplications(ctx context.Context, id kernel.JobID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &count, query, id.String()); err != nil {
		return 0, job.ErrStorage(err).WithDetail("operation", "count_applications")
	}
	return count, nil
}

func (r *PostgresJobRepository) selectJobs(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, job.ErrStorage(err).WithDetail("operation", "list")
	}

	// Convert to entities
	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, job.ErrStorage(err).WithDetail("job_id", model.ID)
		}
		entities = append(entities, *entity)
	}

	return entities, nil
}
