package job

import (
	"strings"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// JobStatus represents the status of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "active" // Listed on the careers page
	JobStatusClosed JobStatus = "closed" // Kept for history, not accepting applications
)

func (s JobStatus) IsValid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

type Job struct {
	ID               kernel.JobID    `db:"id" json:"id"`
	Title            kernel.JobTitle `db:"title" json:"title"`
	Positions        []string        `db:"positions" json:"positions"`
	VesselType       string          `db:"vessel_type" json:"vessel_type"`
	Location         string          `db:"location" json:"location"`
	SalaryRange      string          `db:"salary_range" json:"salary_range"`
	Requirements     []string        `db:"requirements" json:"requirements"`
	Responsibilities []string        `db:"responsibilities" json:"responsibilities"`
	Status           JobStatus       `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the job accepts applications
func (j *Job) IsActive() bool {
	return j.Status == JobStatusActive
}

// Close stops the job from accepting applications
func (j *Job) Close() error {
	if j.Status == JobStatusClosed {
		return ErrJobAlreadyClosed()
	}
	j.Status = JobStatusClosed
	j.UpdatedAt = time.Now()
	return nil
}

// Reopen lists a closed job again
func (j *Job) Reopen() error {
	if j.Status == JobStatusActive {
		return ErrJobAlreadyActive()
	}
	j.Status = JobStatusActive
	j.UpdatedAt = time.Now()
	return nil
}

// Validate checks the fields every posting needs
func (j *Job) Validate() error {
	var missing []string
	if strings.TrimSpace(string(j.Title)) == "" {
		missing = append(missing, "title")
	}
	if len(cleanList(j.Positions)) == 0 {
		missing = append(missing, "positions")
	}
	if len(missing) > 0 {
		return ErrInvalidJob().WithDetail("missing_fields", missing)
	}
	if !j.Status.IsValid() {
		return ErrInvalidStatus().WithDetail("status", j.Status)
	}
	return nil
}

// ApplyUpdate copies the non-nil fields of req onto the job
func (j *Job) ApplyUpdate(req UpdateJobRequest) {
	if req.Title != nil {
		j.Title = kernel.JobTitle(strings.TrimSpace(string(*req.Title)))
	}
	if req.Positions != nil {
		j.Positions = cleanList(*req.Positions)
	}
	if req.VesselType != nil {
		j.VesselType = *req.VesselType
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.SalaryRange != nil {
		j.SalaryRange = *req.SalaryRange
	}
	if req.Requirements != nil {
		j.Requirements = cleanList(*req.Requirements)
	}
	if req.Responsibilities != nil {
		j.Responsibilities = cleanList(*req.Responsibilities)
	}
	j.UpdatedAt = time.Now()
}

// NewJob builds an active posting from a create request
func NewJob(id kernel.JobID, req CreateJobRequest) *Job {
	now := time.Now()
	return &Job{
		ID:               id,
		Title:            kernel.JobTitle(strings.TrimSpace(string(req.Title))),
		Positions:        cleanList(req.Positions),
		VesselType:       req.VesselType,
		Location:         req.Location,
		SalaryRange:      req.SalaryRange,
		Requirements:     cleanList(req.Requirements),
		Responsibilities: cleanList(req.Responsibilities),
		Status:           JobStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// cleanList drops blank entries and keeps order
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
