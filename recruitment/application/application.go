package application

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// ApplicationStatus represents the review status of an application
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"     // Initial state
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"    // Seen by an admin
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted" // Passed initial review
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Statuses lists every status in display order
var Statuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

// ResumeState is derived from the resume url and the attached flag
type ResumeState string

const (
	ResumeStateNone     ResumeState = "none"
	ResumeStateStored   ResumeState = "stored"
	ResumeStateAttached ResumeState = "attached"
)

type Application struct {
	ID              kernel.ApplicationID `db:"id" json:"id"`
	FullName        string               `db:"full_name" json:"full_name"`
	Email           kernel.Email         `db:"email" json:"email"`
	Phone           kernel.Phone         `db:"phone" json:"phone"`
	DateOfBirth     time.Time            `db:"date_of_birth" json:"date_of_birth"`
	Nationality     kernel.Nationality   `db:"nationality" json:"nationality"`
	Position        string               `db:"position" json:"position"`
	YearsExperience int                  `db:"years_experience" json:"years_experience"`
	ExpectedSalary  float64              `db:"expected_salary" json:"expected_salary"`
	SalaryCurrency  string               `db:"salary_currency" json:"salary_currency"`
	Certificates    string               `db:"certificates" json:"certificates"`
	VesselHistory   string               `db:"vessel_history" json:"vessel_history"`
	CoverLetter     string               `db:"cover_letter" json:"cover_letter"`
	JobID           *kernel.JobID        `db:"job_id" json:"job_id,omitempty"`
	JobTitle        kernel.JobTitle      `db:"job_title" json:"job_title"`
	AgencyID        *kernel.AgencyID     `db:"agency_id" json:"agency_id,omitempty"`
	ResumeFilename  string               `db:"resume_filename" json:"resume_filename,omitempty"`
	ResumePath      string               `db:"resume_path" json:"-"`
	ResumeURL       kernel.BucketURL     `db:"resume_url" json:"resume_url,omitempty"`
	ResumeAttached  bool                 `db:"resume_attached" json:"resume_attached"`
	Status          ApplicationStatus    `db:"status" json:"status"`
	EmailSent       bool                 `db:"email_sent" json:"email_sent"`
	EmailSentAt     *time.Time           `db:"email_sent_at" json:"email_sent_at,omitempty"`
	EmailRecipients []string             `db:"email_recipients" json:"email_recipients"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at" json:"updated_at"`
}

// NotificationAudit is what a dispatch run records on the application
type NotificationAudit struct {
	EmailSent       bool
	EmailSentAt     time.Time
	EmailRecipients []string
	ResumeAttached  bool
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasResume checks if a resume was stored for the application
func (a *Application) HasResume() bool {
	return a.ResumePath != "" && a.ResumeURL != ""
}

func (a *Application) ResumeState() ResumeState {
	switch {
	case !a.HasResume():
		return ResumeStateNone
	case a.ResumeAttached:
		return ResumeStateAttached
	default:
		return ResumeStateStored
	}
}

// SetStatus moves the application to any status. It reports false when the
// status is unchanged.
func (a *Application) SetStatus(status ApplicationStatus) (bool, error) {
	if !status.IsValid() {
		return false, ErrInvalidStatus().WithDetail("status", status)
	}
	if a.Status == status {
		return false, nil
	}

	a.Status = status
	a.UpdatedAt = time.Now()
	return true, nil
}

// AttachResume records where the uploaded resume lives
func (a *Application) AttachResume(path, filename string, url kernel.BucketURL) {
	a.ResumePath = path
	a.ResumeFilename = filename
	a.ResumeURL = url
	a.UpdatedAt = time.Now()
}

// RecordNotification stores the outcome of a dispatch run
func (a *Application) RecordNotification(audit NotificationAudit) {
	sentAt := audit.EmailSentAt
	a.EmailSent = audit.EmailSent
	a.EmailSentAt = &sentAt
	a.EmailRecipients = audit.EmailRecipients
	if a.EmailRecipients == nil {
		a.EmailRecipients = []string{}
	}
	a.ResumeAttached = audit.ResumeAttached
	a.UpdatedAt = time.Now()
}

// DisplayJobTitle is the title snapshot, or the general bucket for open applications
func (a *Application) DisplayJobTitle() string {
	if a.JobTitle == "" {
		return GeneralApplicationTitle
	}
	return string(a.JobTitle)
}

// GeneralApplicationTitle labels applications not tied to a job
const GeneralApplicationTitle = "General Application"
