package applicationsrv

import (
	"context"
	"io"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/fsx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	jobs            application.JobLookup
	fileSystem      fsx.FileSystem
	trigger         application.NotificationTrigger
	now             func() time.Time
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobs application.JobLookup,
	fileSystem fsx.FileSystem,
	trigger application.NotificationTrigger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobs:            jobs,
		fileSystem:      fileSystem,
		trigger:         trigger,
		now:             time.Now,
	}
}

// GetApplication retrieves an application by ID
func (s *ApplicationService) GetApplication(ctx context.Context, sess *session.AdminSession, id kernel.ApplicationID) (*application.Application, error) {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityView); err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByID(ctx, id)
}

// ListApplications returns every application, most recent first
func (s *ApplicationService) ListApplications(ctx context.Context, sess *session.AdminSession) ([]application.Application, error) {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityView); err != nil {
		return nil, err
	}
	return s.applicationRepo.List(ctx)
}

// SetStatus moves an application to any status. Setting the current status
// succeeds without a write.
func (s *ApplicationService) SetStatus(ctx context.Context, sess *session.AdminSession, id kernel.ApplicationID, status application.ApplicationStatus) (*application.Application, error) {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityEdit); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", status)
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := app.SetStatus(status)
	if err != nil {
		return nil, err
	}
	if !changed {
		return app, nil
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	logx.Infof("application %s set to %s by %s", id, status, sess.Username)
	return app, nil
}

// BulkSetStatus applies SetStatus to each id and reports per-id results
func (s *ApplicationService) BulkSetStatus(ctx context.Context, sess *session.AdminSession, req application.BulkUpdateStatusRequest) (*application.BulkApplicationOperationResponse, error) {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityEdit); err != nil {
		return nil, err
	}
	if len(req.ApplicationIDs) == 0 {
		return nil, application.ErrInvalidRequest().WithDetail("application_ids", "at least one id is required")
	}
	if !req.Status.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", req.Status)
	}

	result := &application.BulkApplicationOperationResponse{
		Successful: []kernel.ApplicationID{},
		Failed:     make(map[kernel.ApplicationID]string),
		Total:      len(req.ApplicationIDs),
	}

	for _, id := range req.ApplicationIDs {
		if _, err := s.SetStatus(ctx, sess, id, req.Status); err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Successful = append(result.Successful, id)
	}

	return result, nil
}

// DeleteApplication removes one application
func (s *ApplicationService) DeleteApplication(ctx context.Context, sess *session.AdminSession, id kernel.ApplicationID) error {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityDelete); err != nil {
		return err
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return err
	}

	logx.Infof("application %s deleted by %s", id, sess.Username)
	return nil
}

// DeleteApplications removes a batch in one statement. Ids that did not exist
// are reported as missing.
func (s *ApplicationService) DeleteApplications(ctx context.Context, sess *session.AdminSession, ids []kernel.ApplicationID) (*application.BulkDeleteResponse, error) {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityDelete); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, application.ErrInvalidRequest().WithDetail("application_ids", "at least one id is required")
	}

	deleted, err := s.applicationRepo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	if deleted == nil {
		deleted = []kernel.ApplicationID{}
	}

	confirmed := make(map[kernel.ApplicationID]bool, len(deleted))
	for _, id := range deleted {
		confirmed[id] = true
	}

	missing := []kernel.ApplicationID{}
	for _, id := range ids {
		if !confirmed[id] {
			missing = append(missing, id)
		}
	}

	logx.Infof("%d of %d applications deleted by %s", len(deleted), len(ids), sess.Username)
	return &application.BulkDeleteResponse{
		Deleted: deleted,
		Missing: missing,
		Total:   len(ids),
	}, nil
}

// DownloadResume opens the stored resume for streaming. The caller closes it.
func (s *ApplicationService) DownloadResume(ctx context.Context, sess *session.AdminSession, id kernel.ApplicationID) (io.ReadCloser, *application.Application, error) {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityView); err != nil {
		return nil, nil, err
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !app.HasResume() {
		return nil, nil, application.ErrResumeNotFound().WithDetail("application_id", id.String())
	}

	stream, err := s.fileSystem.ReadFileStream(ctx, app.ResumePath)
	if err != nil {
		if errx.IsCode(err, fsx.CodeFileNotFound) {
			return nil, nil, application.ErrResumeNotFound().WithDetail("application_id", id.String())
		}
		return nil, nil, err
	}

	return stream, app, nil
}

// ResendNotification queues dispatch again for an existing application
func (s *ApplicationService) ResendNotification(ctx context.Context, sess *session.AdminSession, id kernel.ApplicationID) error {
	if err := auth.Require(sess, admin.CategoryApplications, admin.CapabilityEdit); err != nil {
		return err
	}

	if _, err := s.applicationRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.trigger.Trigger(ctx, id); err != nil {
		return application.ErrNotificationFailed(err).WithDetail("application_id", id.String())
	}

	logx.Infof("notification re-queued for application %s by %s", id, sess.Username)
	return nil
}
