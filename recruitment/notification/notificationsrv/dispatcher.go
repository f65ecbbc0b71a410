package notificationsrv

import (
	"context"
	"path"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/fsx"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
)

// Dispatcher fans a new application out to every eligible recipient and
// records the outcome on the application
type Dispatcher struct {
	applications notification.ApplicationStore
	recipients   notification.RecipientSource
	files        fsx.FileReader
	mailer       notification.Mailer
	baseURL      string
	now          func() time.Time
}

func NewDispatcher(
	applications notification.ApplicationStore,
	recipients notification.RecipientSource,
	files fsx.FileReader,
	mailer notification.Mailer,
	baseURL string,
) *Dispatcher {
	return &Dispatcher{
		applications: applications,
		recipients:   recipients,
		files:        files,
		mailer:       mailer,
		baseURL:      baseURL,
		now:          time.Now,
	}
}

// Dispatch notifies recipients about one application. Having no eligible
// recipient is recorded as not sent and is not an error. Individual send
// failures are collected and never stop the remaining sends.
func (d *Dispatcher) Dispatch(ctx context.Context, id kernel.ApplicationID) (*notification.DispatchResult, error) {
	app, err := d.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	active, err := d.recipients.ListActive(ctx)
	if err != nil {
		return nil, notification.ErrRecipientsUnavailable(err).WithDetail("application_id", id.String())
	}
	eligible := eligibleRecipients(active, app.Nationality)

	result := &notification.DispatchResult{
		ApplicationID: id,
		Eligible:      len(eligible),
		Delivered:     []string{},
		Failed:        make(map[string]string),
	}

	var attachment *notification.Attachment
	if len(eligible) > 0 {
		attachment = d.fetchResume(ctx, app)
	}

	subject := notification.Subject(app)
	body := notification.Body(app, d.baseURL, attachment != nil)

	for _, r := range eligible {
		msg := notification.Message{
			To:         r.Email,
			ToName:     r.Name,
			ReplyTo:    app.Email,
			Subject:    subject,
			Body:       body,
			Attachment: attachment,
		}
		if err := d.mailer.Send(ctx, msg); err != nil {
			logx.Warnf("notification to %s for application %s failed: %v", r.Email, id, err)
			result.Failed[r.Email.String()] = err.Error()
			continue
		}
		result.Delivered = append(result.Delivered, r.Email.String())
	}

	result.SentAt = d.now()
	result.ResumeAttached = attachment != nil && result.EmailSent()

	audit := application.NotificationAudit{
		EmailSent:       result.EmailSent(),
		EmailSentAt:     result.SentAt,
		EmailRecipients: result.Delivered,
		ResumeAttached:  result.ResumeAttached,
	}
	if err := d.applications.UpdateNotification(ctx, id, audit); err != nil {
		return result, err
	}

	logx.Infof("application %s notified %d of %d recipients", id, len(result.Delivered), result.Eligible)
	return result, nil
}

// fetchResume loads the stored resume. Failure means no attachment.
func (d *Dispatcher) fetchResume(ctx context.Context, app *application.Application) *notification.Attachment {
	if !app.HasResume() {
		return nil
	}

	data, err := d.files.ReadFile(ctx, app.ResumePath)
	if err != nil {
		logx.Warnf("resume for application %s unavailable, sending without attachment: %v", app.ID, err)
		return nil
	}

	filename := app.ResumeFilename
	if filename == "" {
		filename = path.Base(app.ResumePath)
	}

	return &notification.Attachment{
		Filename:    filename,
		ContentType: applicationsrv.ResumeContentType(filename),
		Data:        data,
	}
}

func eligibleRecipients(recipients []settings.EmailRecipient, nationality kernel.Nationality) []settings.EmailRecipient {
	out := make([]settings.EmailRecipient, 0, len(recipients))
	for i := range recipients {
		if recipients[i].Receives(nationality) {
			out = append(out, recipients[i])
		}
	}
	return out
}
