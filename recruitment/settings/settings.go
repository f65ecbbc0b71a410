package settings

import (
	"strings"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// EmailRecipient receives application notifications. A nil nationality
// receives every application.
type EmailRecipient struct {
	ID          kernel.RecipientID  `db:"id" json:"id"`
	Email       kernel.Email        `db:"email" json:"email"`
	Name        string              `db:"name" json:"name"`
	Nationality *kernel.Nationality `db:"nationality" json:"nationality"`
	IsActive    bool                `db:"is_active" json:"is_active"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
}

// Agency is a recruiting intermediary a candidate can declare
type Agency struct {
	ID            kernel.AgencyID `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	ContactPerson string          `db:"contact_person" json:"contact_person"`
	Email         string          `db:"email" json:"email"`
	Phone         string          `db:"phone" json:"phone"`
	Address       string          `db:"address" json:"address"`
	IsActive      bool            `db:"is_active" json:"is_active"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// OptionKind names one of the form selector lists
type OptionKind string

const (
	OptionPositions     OptionKind = "positions"
	OptionVesselTypes   OptionKind = "vessel_types"
	OptionLocations     OptionKind = "locations"
	OptionSalaryRanges  OptionKind = "salary_ranges"
	OptionNationalities OptionKind = "nationalities"
)

// OptionKinds lists every selector in form order
var OptionKinds = []OptionKind{
	OptionPositions,
	OptionVesselTypes,
	OptionLocations,
	OptionSalaryRanges,
	OptionNationalities,
}

func (k OptionKind) IsValid() bool {
	for _, kind := range OptionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Option is one named value of a selector list
type Option struct {
	ID        kernel.OptionID `db:"id" json:"id"`
	Kind      OptionKind      `db:"-" json:"kind"`
	Name      string          `db:"name" json:"name"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// FormOptions is every selector list, each ordered by name
type FormOptions struct {
	Positions     []Option `json:"positions"`
	VesselTypes   []Option `json:"vessel_types"`
	Locations     []Option `json:"locations"`
	SalaryRanges  []Option `json:"salary_ranges"`
	Nationalities []Option `json:"nationalities"`
}

// Set stores the list of kind
func (f *FormOptions) Set(kind OptionKind, options []Option) {
	if options == nil {
		options = []Option{}
	}
	switch kind {
	case OptionPositions:
		f.Positions = options
	case OptionVesselTypes:
		f.VesselTypes = options
	case OptionLocations:
		f.Locations = options
	case OptionSalaryRanges:
		f.SalaryRanges = options
	case OptionNationalities:
		f.Nationalities = options
	}
}

// ============================================================================
// Domain Methods
// ============================================================================

// Receives reports whether the recipient is notified about an applicant
// of nationality
func (r *EmailRecipient) Receives(nationality kernel.Nationality) bool {
	if !r.IsActive {
		return false
	}
	if r.Nationality == nil || strings.TrimSpace(r.Nationality.String()) == "" {
		return true
	}
	return r.Nationality.Equal(nationality)
}

func (r *EmailRecipient) Validate() error {
	email := r.Email.Normalized()
	if !email.IsValid() {
		return ErrInvalidRecipient().WithDetail("email", r.Email)
	}
	r.Email = email
	r.Name = strings.TrimSpace(r.Name)
	return nil
}

func (a *Agency) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrInvalidAgency().WithDetail("missing_fields", []string{"name"})
	}
	if a.Email != "" && !kernel.Email(a.Email).IsValid() {
		return ErrInvalidAgency().WithDetail("invalid_fields", []string{"email"})
	}
	return nil
}

func (o *Option) Validate() error {
	if !o.Kind.IsValid() {
		return ErrUnknownOptionKind().WithDetail("kind", o.Kind)
	}
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return ErrInvalidOption().WithDetail("missing_fields", []string{"name"})
	}
	return nil
}

// nationalityOf turns a form value into the nullable filter. Blank means all.
func nationalityOf(value string) *kernel.Nationality {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n := kernel.Nationality(value)
	return &n
}
