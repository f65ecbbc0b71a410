package settings

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// CreateRecipientRequest - DTO for adding a notification recipient
type CreateRecipientRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateRecipientRequest - partial update. An empty nationality clears the filter.
type UpdateRecipientRequest struct {
	Email       *string `json:"email,omitempty"`
	Name        *string `json:"name,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CreateAgencyRequest - DTO for adding an agency
type CreateAgencyRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

// UpdateAgencyRequest - partial update of an agency
type UpdateAgencyRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// OptionRequest - create or rename an option list value
type OptionRequest struct {
	Name string `json:"name"`
}

// PublicAgency is what the application form shows
type PublicAgency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a *Agency) ToPublic() PublicAgency {
	return PublicAgency{ID: a.ID.String(), Name: a.Name}
}

// ApplyUpdate copies the non-nil fields of req onto the recipient
func (r *EmailRecipient) ApplyUpdate(req UpdateRecipientRequest) {
	if req.Email != nil {
		r.Email = kernel.Email(*req.Email)
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Nationality != nil {
		r.Nationality = nationalityOf(*req.Nationality)
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
}

// ApplyUpdate copies the non-nil fields of req onto the agency
func (a *Agency) ApplyUpdate(req UpdateAgencyRequest) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.ContactPerson != nil {
		a.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Address != nil {
		a.Address = *req.Address
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
}

// NewRecipient builds a recipient, active unless the request says otherwise
func NewRecipient(id kernel.RecipientID, req CreateRecipientRequest) *EmailRecipient {
	return &EmailRecipient{
		ID:          id,
		Email:       kernel.Email(req.Email),
		Name:        req.Name,
		Nationality: nationalityOf(req.Nationality),
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   time.Now(),
	}
}

// NewAgency builds an agency, active unless the request says otherwise
func NewAgency(id kernel.AgencyID, req CreateAgencyRequest) *Agency {
	return &Agency{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		IsActive:      req.IsActive == nil || *req.IsActive,
		CreatedAt:     time.Now(),
	}
}
