package jobsrv

import (
	"context"
	"sync"
	"testing"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
)

type fakeRepo struct {
	mu      sync.Mutex
	jobs    map[kernel.JobID]*job.Job
	counts  map[kernel.JobID]int64
	updates int
}

func newFakeRepo(jobs ...job.Job) *fakeRepo {
	r := &fakeRepo{
		jobs:   make(map[kernel.JobID]*job.Job),
		counts: make(map[kernel.JobID]int64),
	}
	for i := range jobs {
		j := jobs[i]
		r.jobs[j.ID] = &j
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[j.ID]; !ok {
		return job.ErrJobNotFound()
	}
	cp := *j
	r.jobs[j.ID] = &cp
	r.updates++
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, job.ErrJobNotFound()
}

func (r *fakeRepo) Delete(ctx context.Context, id kernel.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeRepo) List(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeRepo) ListActive(ctx context.Context) ([]job.Job, error) {
	all, _ := r.List(ctx)
	out := make([]job.Job, 0, len(all))
	for _, j := range all {
		if j.IsActive() {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountApplications(ctx context.Context, id kernel.JobID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[id], nil
}

func sessionWith(role admin.Role) *session.AdminSession {
	u := admin.NewPendingAdmin(kernel.AdminID(string(role)+"-id"), string(role), "x")
	_ = u.ChangeRole(role, nil)
	u.IsApproved = true
	return session.NewAdminSession("sess", u)
}

func seeded() *fakeRepo {
	return newFakeRepo(
		job.Job{ID: "open", Title: "Bosun", Positions: []string{"Bosun"}, Status: job.JobStatusActive},
		job.Job{ID: "shut", Title: "Oiler", Positions: []string{"Oiler"}, Status: job.JobStatusClosed},
	)
}

func TestPublicListingHidesClosedJobs(t *testing.T) {
	svc := NewJobService(seeded())
	ctx := context.Background()

	jobs, err := svc.ListActiveJobs(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "open" {
		t.Errorf("expected only the open job, got %+v", jobs)
	}

	if _, err := svc.GetActiveJob(ctx, "shut"); !errx.IsCode(err, job.CodeJobNotFound) {
		t.Errorf("closed job should be not found publicly, got %v", err)
	}
	if _, err := svc.GetActiveJob(ctx, "open"); err != nil {
		t.Errorf("open job should be visible: %v", err)
	}
}

func TestCreateJob(t *testing.T) {
	tests := []struct {
		name    string
		req     job.CreateJobRequest
		wantErr errx.Code
	}{
		{
			name: "valid",
			req: job.CreateJobRequest{
				Title:        " Chief Officer ",
				Positions:    []string{"Chief Officer", " "},
				Requirements: []string{"STCW II/2"},
			},
		},
		{
			name:    "missing title",
			req:     job.CreateJobRequest{Positions: []string{"Cook"}},
			wantErr: job.CodeInvalidJob,
		},
		{
			name:    "blank positions",
			req:     job.CreateJobRequest{Title: "Cook", Positions: []string{"", "  "}},
			wantErr: job.CodeInvalidJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewJobService(repo)

			resp, err := svc.CreateJob(context.Background(), sessionWith(admin.RoleAdmin), tt.req)
			if tt.wantErr != "" {
				if !errx.IsCode(err, tt.wantErr) {
					t.Fatalf("expected %s, got %v", tt.wantErr, err)
				}
				if len(repo.jobs) != 0 {
					t.Errorf("invalid job must not be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if resp.Status != job.JobStatusActive || resp.Title != "Chief Officer" {
				t.Errorf("unexpected job %+v", resp)
			}
			if len(resp.Positions) != 1 || len(resp.Responsibilities) != 0 || resp.Responsibilities == nil {
				t.Errorf("lists should be cleaned and non-nil: %+v", resp)
			}
		})
	}
}

func TestCloseAndReopen(t *testing.T) {
	repo := seeded()
	svc := NewJobService(repo)
	ctx := context.Background()
	sess := sessionWith(admin.RoleAdmin)

	closed, err := svc.CloseJob(ctx, sess, "open")
	if err != nil || closed.Status != job.JobStatusClosed {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := svc.CloseJob(ctx, sess, "open"); !errx.IsCode(err, job.CodeJobAlreadyClosed) {
		t.Errorf("expected already closed, got %v", err)
	}

	reopened, err := svc.ReopenJob(ctx, sess, "open")
	if err != nil || reopened.Status != job.JobStatusActive {
		t.Fatalf("reopen failed: %v", err)
	}
	if _, err := svc.ReopenJob(ctx, sess, "open"); !errx.IsCode(err, job.CodeJobAlreadyActive) {
		t.Errorf("expected already active, got %v", err)
	}
	if repo.updates != 2 {
		t.Errorf("expected two writes, got %d", repo.updates)
	}
}

func TestUpdateJob_PartialFields(t *testing.T) {
	repo := seeded()
	svc := NewJobService(repo)

	location := "Manila"
	resp, err := svc.UpdateJob(context.Background(), sessionWith(admin.RoleAdmin), "open", job.UpdateJobRequest{Location: &location})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if resp.Location != "Manila" || resp.Title != "Bosun" {
		t.Errorf("only location should change: %+v", resp)
	}

	empty := []string{}
	_, err = svc.UpdateJob(context.Background(), sessionWith(admin.RoleAdmin), "open", job.UpdateJobRequest{Positions: &empty})
	if !errx.IsCode(err, job.CodeInvalidJob) {
		t.Errorf("clearing positions should fail validation, got %v", err)
	}
}

func TestJobStats(t *testing.T) {
	repo := seeded()
	repo.counts["shut"] = 7
	svc := NewJobService(repo)

	stats, err := svc.GetJobStats(context.Background(), sessionWith(admin.RoleViewer), "shut")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalApplications != 7 || stats.Status != job.JobStatusClosed {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestJobPermissionGates(t *testing.T) {
	repo := seeded()
	svc := NewJobService(repo)
	ctx := context.Background()
	viewer := sessionWith(admin.RoleViewer)

	if _, err := svc.ListJobs(ctx, viewer); err != nil {
		t.Errorf("viewer can list jobs: %v", err)
	}

	denied := map[string]func() error{
		"create": func() error {
			_, err := svc.CreateJob(ctx, viewer, job.CreateJobRequest{Title: "Cook", Positions: []string{"Cook"}})
			return err
		},
		"close": func() error {
			_, err := svc.CloseJob(ctx, viewer, "open")
			return err
		},
		"delete": func() error { return svc.DeleteJob(ctx, viewer, "open") },
		"list without session": func() error {
			_, err := svc.ListJobs(ctx, nil)
			return err
		},
	}

	for name, call := range denied {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errx.IsCode(err, auth.CodePermissionDenied) {
				t.Errorf("expected permission denied, got %v", err)
			}
		})
	}

	if len(repo.jobs) != 2 || repo.updates != 0 {
		t.Errorf("denied calls must not touch storage")
	}
}

func TestDeleteJob(t *testing.T) {
	repo := seeded()
	svc := NewJobService(repo)
	ctx := context.Background()
	sess := sessionWith(admin.RoleAdmin)

	if err := svc.DeleteJob(ctx, sess, "shut"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteJob(ctx, sess, "shut"); !errx.IsCode(err, job.CodeJobNotFound) {
		t.Errorf("second delete should be not found, got %v", err)
	}
}
