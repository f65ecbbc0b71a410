package application

import (
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// SubmitApplicationRequest - the public careers form. Numeric and date
// fields arrive as strings from multipart forms.
type SubmitApplicationRequest struct {
	FullName        string `json:"full_name" form:"full_name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	DateOfBirth     string `json:"date_of_birth" form:"date_of_birth"` // YYYY-MM-DD
	Nationality     string `json:"nationality" form:"nationality"`
	Position        string `json:"position" form:"position"`
	YearsExperience string `json:"years_experience" form:"years_experience"`
	ExpectedSalary  string `json:"expected_salary" form:"expected_salary"`
	SalaryCurrency  string `json:"salary_currency" form:"salary_currency"`
	Certificates    string `json:"certificates" form:"certificates"`
	VesselHistory   string `json:"vessel_history" form:"vessel_history"`
	CoverLetter     string `json:"cover_letter" form:"cover_letter"`
	JobID           string `json:"job_id" form:"job_id"`
	AgencyID        string `json:"agency_id" form:"agency_id"`
}

// ResumeUpload is the optional file sent with a submission
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (r *ResumeUpload) Size() int64 {
	return int64(len(r.Data))
}

// ApplicationResponse - application plus derived resume state
type ApplicationResponse struct {
	Application
	ResumeState ResumeState `json:"resume_state"`
}

func (a *Application) ToResponse() ApplicationResponse {
	resp := ApplicationResponse{
		Application: *a,
		ResumeState: a.ResumeState(),
	}
	if resp.EmailRecipients == nil {
		resp.EmailRecipients = []string{}
	}
	return resp
}

// UpdateStatusRequest - Request to update application status
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

// BulkUpdateStatusRequest - Request to update status for multiple applications
type BulkUpdateStatusRequest struct {
	ApplicationIDs []kernel.ApplicationID `json:"application_ids"`
	Status         ApplicationStatus      `json:"status"`
}

// BulkDeleteRequest - Request to delete multiple applications
type BulkDeleteRequest struct {
	ApplicationIDs []kernel.ApplicationID `json:"application_ids"`
}

// BulkApplicationOperationResponse - Result of bulk operations
type BulkApplicationOperationResponse struct {
	Successful []kernel.ApplicationID          `json:"successful"`
	Failed     map[kernel.ApplicationID]string `json:"failed"`
	Total      int                             `json:"total"`
}

// BulkDeleteResponse - ids confirmed removed; the rest did not exist
type BulkDeleteResponse struct {
	Deleted []kernel.ApplicationID `json:"deleted"`
	Missing []kernel.ApplicationID `json:"missing"`
	Total   int                    `json:"total"`
}
