package applicationsrv

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
	"github.com/google/uuid"
)

const (
	dateOfBirthLayout     = "2006-01-02"
	defaultSalaryCurrency = "USD"

	// expected_salary is NUMERIC(12,2)
	maxExpectedSalary  = 1e10
	maxYearsExperience = 80
)

// Submit validates and stores a candidate application. Resume upload and
// notification are best effort once the record exists.
func (s *ApplicationService) Submit(ctx context.Context, req application.SubmitApplicationRequest, resume *application.ResumeUpload) (*application.Application, error) {
	app, err := parseSubmission(req)
	if err != nil {
		return nil, err
	}

	var ext string
	if resume != nil {
		if ext, err = validateResume(resume); err != nil {
			return nil, err
		}
	}

	if app.JobID != nil {
		j, err := s.jobs.GetByID(ctx, *app.JobID)
		if err != nil {
			if errx.IsCode(err, job.CodeJobNotFound) {
				return nil, application.ErrInvalidFields([]string{"job_id"})
			}
			return nil, err
		}
		if !j.IsActive() {
			return nil, application.ErrInvalidFields([]string{"job_id"}).WithDetail("job_status", string(j.Status))
		}
		app.JobTitle = j.Title
	}

	now := s.now()
	app.ID = kernel.NewApplicationID(uuid.NewString())
	app.Status = application.ApplicationStatusPending
	app.EmailRecipients = []string{}
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	logx.Infof("application %s submitted for %q", app.ID, app.DisplayJobTitle())

	if resume != nil {
		s.storeResume(ctx, app, resume, ext, now)
	}

	if err := s.trigger.Trigger(ctx, app.ID); err != nil {
		logx.Warnf("notification trigger failed for application %s: %v", app.ID, err)
	}

	return app, nil
}

// storeResume uploads the file and back-fills the record. Failures leave the
// application without a resume.
func (s *ApplicationService) storeResume(ctx context.Context, app *application.Application, resume *application.ResumeUpload, ext string, now time.Time) {
	path := s.fileSystem.Join("resumes", fmt.Sprintf("%s_%d%s", app.ID, now.UnixMilli(), ext))

	if err := s.fileSystem.WriteFile(ctx, path, resume.Data); err != nil {
		logx.Warnf("resume upload failed for application %s: %v", app.ID, err)
		return
	}

	url := kernel.BucketURL(s.fileSystem.URL(path))
	if err := s.applicationRepo.UpdateResume(ctx, app.ID, path, resume.Filename, url); err != nil {
		logx.Warnf("resume back-fill failed for application %s: %v", app.ID, err)
		if delErr := s.fileSystem.DeleteFile(context.Background(), path); delErr != nil {
			logx.Warnf("cleanup of %s failed: %v", path, delErr)
		}
		return
	}

	app.AttachResume(path, resume.Filename, url)
}

// parseSubmission collects every missing field before failing
func parseSubmission(req application.SubmitApplicationRequest) (*application.Application, error) {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", req.FullName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"nationality", req.Nationality},
		{"position", req.Position},
		{"date_of_birth", req.DateOfBirth},
		{"expected_salary", req.ExpectedSalary},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, application.ErrValidationFailed(missing)
	}

	var invalid []string

	email := kernel.Email(req.Email).Normalized()
	if !email.IsValid() {
		invalid = append(invalid, "email")
	}

	dob, err := time.Parse(dateOfBirthLayout, strings.TrimSpace(req.DateOfBirth))
	if err != nil {
		invalid = append(invalid, "date_of_birth")
	}

	salary, err := strconv.ParseFloat(strings.TrimSpace(req.ExpectedSalary), 64)
	if err != nil || math.IsNaN(salary) || salary <= 0 || salary >= maxExpectedSalary {
		invalid = append(invalid, "expected_salary")
	}

	years := 0
	if v := strings.TrimSpace(req.YearsExperience); v != "" {
		years, err = strconv.Atoi(v)
		if err != nil || years < 0 || years > maxYearsExperience {
			invalid = append(invalid, "years_experience")
		}
	}

	if len(invalid) > 0 {
		return nil, application.ErrInvalidFields(invalid)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.SalaryCurrency))
	if currency == "" {
		currency = defaultSalaryCurrency
	}

	app := &application.Application{
		FullName:        strings.TrimSpace(req.FullName),
		Email:           email,
		Phone:           kernel.Phone(strings.TrimSpace(req.Phone)),
		DateOfBirth:     dob,
		Nationality:     kernel.Nationality(strings.TrimSpace(req.Nationality)),
		Position:        strings.TrimSpace(req.Position),
		YearsExperience: years,
		ExpectedSalary:  salary,
		SalaryCurrency:  currency,
		Certificates:    strings.TrimSpace(req.Certificates),
		VesselHistory:   strings.TrimSpace(req.VesselHistory),
		CoverLetter:     strings.TrimSpace(req.CoverLetter),
	}

	if v := strings.TrimSpace(req.JobID); v != "" {
		id := kernel.NewJobID(v)
		app.JobID = &id
	}
	if v := strings.TrimSpace(req.AgencyID); v != "" {
		id := kernel.NewAgencyID(v)
		app.AgencyID = &id
	}

	return app, nil
}
