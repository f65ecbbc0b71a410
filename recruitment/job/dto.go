package job

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title            kernel.JobTitle `json:"title"`
	Positions        []string        `json:"positions"`
	VesselType       string          `json:"vessel_type,omitempty"`
	Location         string          `json:"location,omitempty"`
	SalaryRange      string          `json:"salary_range,omitempty"`
	Requirements     []string        `json:"requirements,omitempty"`
	Responsibilities []string        `json:"responsibilities,omitempty"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title            *kernel.JobTitle `json:"title,omitempty"`
	Positions        *[]string        `json:"positions,omitempty"`
	VesselType       *string          `json:"vessel_type,omitempty"`
	Location         *string          `json:"location,omitempty"`
	SalaryRange      *string          `json:"salary_range,omitempty"`
	Requirements     *[]string        `json:"requirements,omitempty"`
	Responsibilities *[]string        `json:"responsibilities,omitempty"`
}

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID               kernel.JobID    `json:"id"`
	Title            kernel.JobTitle `json:"title"`
	Positions        []string        `json:"positions"`
	VesselType       string          `json:"vessel_type"`
	Location         string          `json:"location"`
	SalaryRange      string          `json:"salary_range"`
	Requirements     []string        `json:"requirements"`
	Responsibilities []string        `json:"responsibilities"`
	Status           JobStatus       `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// JobStatsResponse - Statistics for a job
type JobStatsResponse struct {
	JobID             kernel.JobID    `json:"job_id"`
	Title             kernel.JobTitle `json:"title"`
	Status            JobStatus       `json:"status"`
	TotalApplications int64           `json:"total_applications"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (j *Job) ToResponse() JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Positions:        nonNil(j.Positions),
		VesselType:       j.VesselType,
		Location:         j.Location,
		SalaryRange:      j.SalaryRange,
		Requirements:     nonNil(j.Requirements),
		Responsibilities: nonNil(j.Responsibilities),
		Status:           j.Status,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
