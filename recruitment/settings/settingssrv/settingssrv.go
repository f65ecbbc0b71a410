package settingssrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
	"github.com/google/uuid"
)

// SettingsService manages recipients, agencies and the form option lists
type SettingsService struct {
	recipients settings.RecipientRepository
	agencies   settings.AgencyRepository
	options    settings.OptionRepository
}

func NewSettingsService(
	recipients settings.RecipientRepository,
	agencies settings.AgencyRepository,
	options settings.OptionRepository,
) *SettingsService {
	return &SettingsService{
		recipients: recipients,
		agencies:   agencies,
		options:    options,
	}
}

func requireView(sess *session.AdminSession) error {
	return auth.Require(sess, admin.CategorySettings, admin.CapabilityView)
}

func requireEdit(sess *session.AdminSession) error {
	return auth.Require(sess, admin.CategorySettings, admin.CapabilityEdit)
}

func requireDelete(sess *session.AdminSession) error {
	return auth.Require(sess, admin.CategorySettings, admin.CapabilityDelete)
}

// ============================================================================
// Public
// ============================================================================

// FormOptions returns every selector list for the application form
func (s *SettingsService) FormOptions(ctx context.Context) (*settings.FormOptions, error) {
	var form settings.FormOptions
	for _, kind := range settings.OptionKinds {
		options, err := s.options.List(ctx, kind)
		if err != nil {
			return nil, err
		}
		form.Set(kind, options)
	}
	return &form, nil
}

// ActiveAgencies returns the agencies a candidate may pick
func (s *SettingsService) ActiveAgencies(ctx context.Context) ([]settings.PublicAgency, error) {
	agencies, err := s.agencies.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]settings.PublicAgency, 0, len(agencies))
	for i := range agencies {
		out = append(out, agencies[i].ToPublic())
	}
	return out, nil
}

// ============================================================================
// Email recipients
// ============================================================================

func (s *SettingsService) ListRecipients(ctx context.Context, sess *session.AdminSession) ([]settings.EmailRecipient, error) {
	if err := requireView(sess); err != nil {
		return nil, err
	}
	return s.recipients.List(ctx)
}

func (s *SettingsService) CreateRecipient(ctx context.Context, sess *session.AdminSession, req settings.CreateRecipientRequest) (*settings.EmailRecipient, error) {
	if err := requireEdit(sess); err != nil {
		return nil, err
	}

	recipient := settings.NewRecipient(kernel.NewRecipientID(uuid.NewString()), req)
	if err := recipient.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipients.Create(ctx, recipient); err != nil {
		return nil, err
	}

	logx.Infof("email recipient %s added by %s", recipient.Email, sess.Username)
	return recipient, nil
}

func (s *SettingsService) UpdateRecipient(ctx context.Context, sess *session.AdminSession, id kernel.RecipientID, req settings.UpdateRecipientRequest) (*settings.EmailRecipient, error) {
	if err := requireEdit(sess); err != nil {
		return nil, err
	}

	recipient, err := s.recipients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipient.ApplyUpdate(req)
	if err := recipient.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipients.Update(ctx, recipient); err != nil {
		return nil, err
	}
	return recipient, nil
}

func (s *SettingsService) DeleteRecipient(ctx context.Context, sess *session.AdminSession, id kernel.RecipientID) error {
	if err := requireDelete(sess); err != nil {
		return err
	}
	return s.recipients.Delete(ctx, id)
}

// ============================================================================
// Agencies
// ============================================================================

func (s *SettingsService) ListAgencies(ctx context.Context, sess *session.AdminSession) ([]settings.Agency, error) {
	if err := requireView(sess); err != nil {
		return nil, err
	}
	return s.agencies.List(ctx)
}

func (s *SettingsService) CreateAgency(ctx context.Context, sess *session.AdminSession, req settings.CreateAgencyRequest) (*settings.Agency, error) {
	if err := requireEdit(sess); err != nil {
		return nil, err
	}

	agency := settings.NewAgency(kernel.NewAgencyID(uuid.NewString()), req)
	if err := agency.Validate(); err != nil {
		return nil, err
	}

	if err := s.agencies.Create(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

func (s *SettingsService) UpdateAgency(ctx context.Context, sess *session.AdminSession, id kernel.AgencyID, req settings.UpdateAgencyRequest) (*settings.Agency, error) {
	if err := requireEdit(sess); err != nil {
		return nil, err
	}

	agency, err := s.agencies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	agency.ApplyUpdate(req)
	if err := agency.Validate(); err != nil {
		return nil, err
	}

	if err := s.agencies.Update(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

func (s *SettingsService) DeleteAgency(ctx context.Context, sess *session.AdminSession, id kernel.AgencyID) error {
	if err := requireDelete(sess); err != nil {
		return err
	}
	return s.agencies.Delete(ctx, id)
}

// ============================================================================
// Option lists
// ============================================================================

func (s *SettingsService) ListOptions(ctx context.Context, sess *session.AdminSession, kind settings.OptionKind) ([]settings.Option, error) {
	if err := requireView(sess); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, settings.ErrUnknownOptionKind().WithDetail("kind", kind)
	}
	return s.options.List(ctx, kind)
}

func (s *SettingsService) CreateOption(ctx context.Context, sess *session.AdminSession, kind settings.OptionKind, req settings.OptionRequest) (*settings.Option, error) {
	if err := requireEdit(sess); err != nil {
		return nil, err
	}

	option := &settings.Option{
		ID:        kernel.NewOptionID(uuid.NewString()),
		Kind:      kind,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := option.Validate(); err != nil {
		return nil, err
	}

	if err := s.options.Create(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *SettingsService) RenameOption(ctx context.Context, sess *session.AdminSession, kind settings.OptionKind, id kernel.OptionID, req settings.OptionRequest) (*settings.Option, error) {
	if err := requireEdit(sess); err != nil {
		return nil, err
	}

	option, err := s.options.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	option.Name = req.Name
	if err := option.Validate(); err != nil {
		return nil, err
	}

	if err := s.options.Rename(ctx, kind, id, option.Name); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *SettingsService) DeleteOption(ctx context.Context, sess *session.AdminSession, kind settings.OptionKind, id kernel.OptionID) error {
	if err := requireDelete(sess); err != nil {
		return err
	}
	if !kind.IsValid() {
		return settings.ErrUnknownOptionKind().WithDetail("kind", kind)
	}
	return s.options.Delete(ctx, kind, id)
}
