package settings

import (
	"context"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

type RecipientRepository interface {
	Create(ctx context.Context, r *EmailRecipient) error
	Update(ctx context.Context, r *EmailRecipient) error
	GetByID(ctx context.Context, id kernel.RecipientID) (*EmailRecipient, error)
	Delete(ctx context.Context, id kernel.RecipientID) error

	// List returns every recipient ordered by name
	List(ctx context.Context) ([]EmailRecipient, error)

	// ListActive returns recipients that currently receive notifications
	ListActive(ctx context.Context) ([]EmailRecipient, error)
}

type AgencyRepository interface {
	Create(ctx context.Context, a *Agency) error
	Update(ctx context.Context, a *Agency) error
	GetByID(ctx context.Context, id kernel.AgencyID) (*Agency, error)
	Delete(ctx context.Context, id kernel.AgencyID) error
	List(ctx context.Context) ([]Agency, error)
	ListActive(ctx context.Context) ([]Agency, error)
}

// OptionRepository stores the five selector lists, one table per kind
type OptionRepository interface {
	Create(ctx context.Context, o *Option) error
	Rename(ctx context.Context, kind OptionKind, id kernel.OptionID, name string) error
	GetByID(ctx context.Context, kind OptionKind, id kernel.OptionID) (*Option, error)
	Delete(ctx context.Context, kind OptionKind, id kernel.OptionID) error

	// List returns the values of kind ordered by name
	List(ctx context.Context, kind OptionKind) ([]Option, error)
}
