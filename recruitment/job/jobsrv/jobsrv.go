package jobsrv

import (
	"context"

	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
	"github.com/google/uuid"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// ============================================================================
// Public
// ============================================================================

// ListActiveJobs returns the careers page listing
func (s *JobService) ListActiveJobs(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(jobs), nil
}

// GetActiveJob returns a job for the apply page. Closed jobs are not found.
func (s *JobService) GetActiveJob(ctx context.Context, id kernel.JobID) (*job.JobResponse, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !j.IsActive() {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	resp := j.ToResponse()
	return &resp, nil
}

// ============================================================================
// Admin
// ============================================================================

// ListJobs returns every job regardless of status
func (s *JobService) ListJobs(ctx context.Context, sess *session.AdminSession) ([]job.Job, error) {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityView); err != nil {
		return nil, err
	}
	return s.jobRepo.List(ctx)
}

func (s *JobService) GetJob(ctx context.Context, sess *session.AdminSession, id kernel.JobID) (*job.JobResponse, error) {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityView); err != nil {
		return nil, err
	}

	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := j.ToResponse()
	return &resp, nil
}

// CreateJob creates a new active job posting
func (s *JobService) CreateJob(ctx context.Context, sess *session.AdminSession, req job.CreateJobRequest) (*job.JobResponse, error) {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityEdit); err != nil {
		return nil, err
	}

	newJob := job.NewJob(kernel.NewJobID(uuid.NewString()), req)
	if err := newJob.Validate(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, err
	}

	logx.Infof("job %s created by %s", newJob.ID, sess.Username)
	resp := newJob.ToResponse()
	return &resp, nil
}

// UpdateJob applies a partial update. Existing applications keep the old title.
func (s *JobService) UpdateJob(ctx context.Context, sess *session.AdminSession, id kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityEdit); err != nil {
		return nil, err
	}

	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	j.ApplyUpdate(req)
	if err := j.Validate(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	resp := j.ToResponse()
	return &resp, nil
}

func (s *JobService) CloseJob(ctx context.Context, sess *session.AdminSession, id kernel.JobID) (*job.JobResponse, error) {
	return s.transition(ctx, sess, id, (*job.Job).Close)
}

func (s *JobService) ReopenJob(ctx context.Context, sess *session.AdminSession, id kernel.JobID) (*job.JobResponse, error) {
	return s.transition(ctx, sess, id, (*job.Job).Reopen)
}

func (s *JobService) transition(ctx context.Context, sess *session.AdminSession, id kernel.JobID, apply func(*job.Job) error) (*job.JobResponse, error) {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityEdit); err != nil {
		return nil, err
	}

	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(j); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	resp := j.ToResponse()
	return &resp, nil
}

// DeleteJob removes the posting without touching its applications
func (s *JobService) DeleteJob(ctx context.Context, sess *session.AdminSession, id kernel.JobID) error {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityDelete); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}

	logx.Infof("job %s deleted by %s", id, sess.Username)
	return nil
}

// GetJobStats reports how many applications still reference the job
func (s *JobService) GetJobStats(ctx context.Context, sess *session.AdminSession, id kernel.JobID) (*job.JobStatsResponse, error) {
	if err := auth.Require(sess, admin.CategoryJobs, admin.CapabilityView); err != nil {
		return nil, err
	}

	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.jobRepo.CountApplications(ctx, id)
	if err != nil {
		return nil, err
	}

	return &job.JobStatsResponse{
		JobID:             j.ID,
		Title:             j.Title,
		Status:            j.Status,
		TotalApplications: count,
		CreatedAt:         j.CreatedAt,
	}, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func toResponses(jobs []job.Job) []job.JobResponse {
	responses := make([]job.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, jobs[i].ToResponse())
	}
	return responses
}
